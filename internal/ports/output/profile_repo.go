package output

import (
	"context"

	"dancehub/internal/domain/entities"
)

// ProfileRepository persists organizer profiles and resolves city profiles.
type ProfileRepository interface {
	// CreatePending writes a new pending-import profile and returns the
	// generated identifier.
	CreatePending(ctx context.Context, profile *entities.OrganizerProfile) (string, error)
	// FindCityByPlaceID returns the city profile registered for a place id,
	// or domain.ErrProfileNotFound.
	FindCityByPlaceID(ctx context.Context, placeID string) (*entities.CityProfile, error)
}
