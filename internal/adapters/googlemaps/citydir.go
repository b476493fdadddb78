package googlemaps

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"dancehub/internal/domain"
	"dancehub/internal/domain/entities"
	"dancehub/internal/ports/output"
)

var _ output.CityDirectory = (*CityDirectory)(nil)

// CityStore looks up city profiles registered on the platform.
type CityStore interface {
	FindCityByPlaceID(ctx context.Context, placeID string) (*entities.CityProfile, error)
}

// CityDirectory maps a geocoded venue to the platform's city key: the place
// id of the venue's locality. A registered city profile for that locality is
// preferred; otherwise the locality's own place id is used so the event still
// groups with others in the same city.
type CityDirectory struct {
	locator output.Geocoder
	cities  CityStore
	logger  *logrus.Logger
}

func NewCityDirectory(locator output.Geocoder, cities CityStore, logger *logrus.Logger) *CityDirectory {
	return &CityDirectory{locator: locator, cities: cities, logger: logger}
}

// CityID returns the canonical city identifier for venue, or "" when the
// venue carries no resolvable locality.
func (d *CityDirectory) CityID(ctx context.Context, venue *entities.VenuePlace) (string, error) {
	if venue == nil || venue.Locality == "" {
		return "", nil
	}

	locality, err := d.locator.Locate(ctx, fmt.Sprintf("%s, %s", venue.Locality, venue.Country))
	if err != nil {
		if errors.Is(err, domain.ErrPlaceNotFound) {
			return "", nil
		}
		return "", err
	}

	if d.cities != nil {
		city, err := d.cities.FindCityByPlaceID(ctx, locality.PlaceID)
		if err == nil {
			return city.PlaceID, nil
		}
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return "", fmt.Errorf("city lookup: %w", err)
		}
		d.logger.WithField("place_id", locality.PlaceID).Debug("locality has no city profile yet")
	}
	return locality.PlaceID, nil
}
