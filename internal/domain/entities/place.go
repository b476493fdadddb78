package entities

// VenuePlace is a geocoded venue, normalized from a geocoding result.
// Read-only once computed; it is persisted only as part of an event record.
type VenuePlace struct {
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"formatted_address,omitempty"`
	Locality  string  `json:"locality,omitempty"`
	Country   string  `json:"country,omitempty"`
	PlaceID   string  `json:"place_id"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}
