package application

import "testing"

func TestOrganizerHandles(t *testing.T) {
	tests := []struct {
		name         string
		hostURL      string
		hostName     string
		wantSearch   string
		wantFallback string
	}{
		{
			name:         "vanity url",
			hostURL:      "https://www.facebook.com/salsaclub.berlin",
			hostName:     "Salsa Club Berlin",
			wantSearch:   "salsaclub.berlin",
			wantFallback: "salsaclub.berlin",
		},
		{
			// Only the FIRST hyphen of the people/ segment is removed.
			name:         "people url keeps later hyphens",
			hostURL:      "https://www.facebook.com/people/Dance-Woche-Berlin/100089112233",
			hostName:     "Dance Woche Berlin",
			wantSearch:   "people/Dance-Woche-Berlin/100089112233",
			wantFallback: "DanceWoche-Berlin",
		},
		{
			name:         "people url single hyphen",
			hostURL:      "https://www.facebook.com/people/Ana-Gomez/100012345",
			hostName:     "Ana Gomez",
			wantSearch:   "people/Ana-Gomez/100012345",
			wantFallback: "AnaGomez",
		},
		{
			name:         "empty url falls back to name slug",
			hostURL:      "https://www.facebook.com/",
			hostName:     "Tanzstudio Müller",
			wantSearch:   "",
			wantFallback: "tanzstudio-muller",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			search, fallback := organizerHandles(tt.hostURL, tt.hostName)
			if search != tt.wantSearch {
				t.Errorf("searchHandle = %q, want %q", search, tt.wantSearch)
			}
			if fallback != tt.wantFallback {
				t.Errorf("fallbackUsername = %q, want %q", fallback, tt.wantFallback)
			}
		})
	}
}
