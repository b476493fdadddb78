package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Salsa Club Berlin", "salsa-club-berlin"},
		{"Tanzstudio Müller", "tanzstudio-muller"},
		{"  ¡Báilalo!  ", "bailalo"},
		{"DJ---Night", "dj-night"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Make(tt.in); got != tt.want {
			t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
