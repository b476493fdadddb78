// Package googlemaps resolves free-text venue queries through the Google
// Maps geocoding API and maps venues to the platform's canonical cities.
package googlemaps

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"dancehub/internal/domain"
	"dancehub/internal/domain/entities"
	"dancehub/internal/ports/output"
)

var _ output.Geocoder = (*Geocoder)(nil)

type Geocoder struct {
	client *maps.Client
	logger *logrus.Logger
}

func NewGeocoder(apiKey string, logger *logrus.Logger) (*Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("maps client: %w", err)
	}
	return &Geocoder{client: client, logger: logger}, nil
}

// Locate geocodes query and returns the first result as a VenuePlace.
// A blank query or an empty result set yields domain.ErrPlaceNotFound.
func (g *Geocoder) Locate(ctx context.Context, query string) (*entities.VenuePlace, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrPlaceNotFound
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, fmt.Errorf("geocode: %w: %v", domain.ErrServiceFailure, err)
	}
	if len(results) == 0 {
		return nil, domain.ErrPlaceNotFound
	}

	place := fromGeocodingResult(results[0])
	g.logger.WithFields(logrus.Fields{
		"query":    query,
		"place_id": place.PlaceID,
	}).Debug("geocoded")
	return place, nil
}

func fromGeocodingResult(r maps.GeocodingResult) *entities.VenuePlace {
	place := &entities.VenuePlace{
		Address:   r.FormattedAddress,
		PlaceID:   r.PlaceID,
		Latitude:  r.Geometry.Location.Lat,
		Longitude: r.Geometry.Location.Lng,
	}
	for _, c := range r.AddressComponents {
		for _, t := range c.Types {
			switch t {
			case "locality", "postal_town":
				if place.Locality == "" {
					place.Locality = c.LongName
				}
			case "country":
				place.Country = c.ShortName
			case "establishment", "premise", "point_of_interest":
				if place.Name == "" {
					place.Name = c.LongName
				}
			}
		}
	}
	return place
}
