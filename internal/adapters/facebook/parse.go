package facebook

import (
	"bytes"
	"encoding/json"
	"errors"

	"dancehub/internal/domain/entities"
)

// pageEvent is the relevant slice of the JSON payload embedded in a public
// event page. Field names follow the page's GraphQL cache entries.
type pageEvent struct {
	Name        string `json:"name"`
	Description struct {
		Text string `json:"text"`
	} `json:"event_description"`
	StartTimestamp int64  `json:"start_timestamp"`
	EndTimestamp   int64  `json:"end_timestamp"`
	URL            string `json:"url"`
	TicketURL      string `json:"event_buy_ticket_url"`
	CoverMedia     struct {
		CoverPhoto struct {
			Photo struct {
				FullImage struct {
					URI string `json:"uri"`
				} `json:"full_image"`
				Image struct {
					URI string `json:"uri"`
				} `json:"image"`
			} `json:"photo"`
		} `json:"cover_photo"`
	} `json:"cover_media_renderer"`
	Hosts []struct {
		Name           string `json:"name"`
		URL            string `json:"url"`
		ProfilePicture struct {
			URI string `json:"uri"`
		} `json:"profile_picture"`
	} `json:"event_hosts_that_can_view_guestlist"`
	Place *struct {
		Name    string `json:"name"`
		Address struct {
			Street string `json:"street"`
		} `json:"address"`
		City struct {
			ContextualName string `json:"contextual_name"`
		} `json:"city"`
		CountryCode string `json:"country_code"`
	} `json:"event_place"`
}

var errNoEventPayload = errors.New("no event payload in page")

// parseEventPage locates the embedded `"event":{...}` JSON blob and maps it.
// Pages embed several objects under that key; the first one that carries a
// name is the event itself.
func parseEventPage(body []byte) (*entities.ScrapedEvent, error) {
	for _, raw := range jsonObjectsAfterKey(body, "event") {
		var pe pageEvent
		if err := json.Unmarshal(raw, &pe); err != nil {
			continue
		}
		if pe.Name == "" {
			continue
		}
		return mapPageEvent(&pe), nil
	}
	return nil, errNoEventPayload
}

func mapPageEvent(pe *pageEvent) *entities.ScrapedEvent {
	ev := &entities.ScrapedEvent{
		Name:           pe.Name,
		Description:    pe.Description.Text,
		StartTimestamp: pe.StartTimestamp,
		EndTimestamp:   pe.EndTimestamp,
		TicketURL:      pe.TicketURL,
		URL:            pe.URL,
	}
	if uri := pe.CoverMedia.CoverPhoto.Photo.FullImage.URI; uri != "" {
		ev.PhotoURI = uri
	} else {
		ev.PhotoURI = pe.CoverMedia.CoverPhoto.Photo.Image.URI
	}
	for _, h := range pe.Hosts {
		ev.Hosts = append(ev.Hosts, entities.Host{
			Name:     h.Name,
			URL:      h.URL,
			PhotoURI: h.ProfilePicture.URI,
		})
	}
	if pe.Place != nil {
		ev.Location = &entities.EventLocation{
			Name:        pe.Place.Name,
			Address:     pe.Place.Address.Street,
			CountryCode: pe.Place.CountryCode,
		}
	}
	return ev
}

// jsonObjectsAfterKey returns every balanced JSON object that directly
// follows `"key":` in data. String literals and escapes are honored so
// braces inside text do not end the scan early.
func jsonObjectsAfterKey(data []byte, key string) [][]byte {
	needle := []byte(`"` + key + `":`)
	var out [][]byte
	for off := 0; ; {
		idx := bytes.Index(data[off:], needle)
		if idx < 0 {
			return out
		}
		start := off + idx + len(needle)
		off = start
		if start >= len(data) || data[start] != '{' {
			continue
		}
		if obj := balancedObject(data[start:]); obj != nil {
			out = append(out, obj)
			off = start + len(obj)
		}
	}
}

func balancedObject(data []byte) []byte {
	depth := 0
	inString := false
	escaped := false
	for i, c := range data {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return data[:i+1]
			}
		}
	}
	return nil
}
