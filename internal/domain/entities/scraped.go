package entities

// ScrapedEvent is the raw record returned by the scrape adapter for a single
// source page. It mirrors the source's shape; it is never persisted directly.
type ScrapedEvent struct {
	Name           string
	Description    string
	PhotoURI       string
	StartTimestamp int64 // epoch seconds, 0 = not set
	EndTimestamp   int64 // epoch seconds, 0 = not set
	TicketURL      string
	URL            string // canonical source URL
	Hosts          []Host
	Location       *EventLocation
}

// Host is one hosting entity of a scraped event. Only the first host is used
// as the organizing entity; later hosts are ignored (source limitation).
type Host struct {
	Name     string
	URL      string
	PhotoURI string
}

// EventLocation is the free-text location block of a scraped event.
type EventLocation struct {
	Name        string
	Address     string
	CountryCode string
}
