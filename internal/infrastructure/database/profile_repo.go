package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dancehub/internal/domain"
	"dancehub/internal/domain/entities"
	"dancehub/internal/ports/output"
)

var _ output.ProfileRepository = (*ProfileRepository)(nil)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// CreatePending inserts a pending-import organizer profile and returns the
// generated identifier.
func (r *ProfileRepository) CreatePending(ctx context.Context, profile *entities.OrganizerProfile) (string, error) {
	id := uuid.NewString()

	owned := false
	if profile.Owned != nil {
		owned = *profile.Owned
	}
	owner := ""
	if profile.Owner != nil {
		owner = *profile.Owner
	}

	const q = `
INSERT INTO profiles (id, username, name, photo, bio, type, owned, owner_id,
                      import_status, visibility, place, facebook, instagram, tiktok, youtube)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
`
	_, err := r.pool.Exec(ctx, q,
		id,
		profile.Username,
		profile.Name,
		profile.Photo,
		profile.Bio,
		profile.Type,
		owned,
		owner,
		profile.Import,
		profile.Visibility,
		profile.Place,
		profile.Facebook,
		profile.Instagram,
		profile.TikTok,
		profile.YouTube,
	)
	if err != nil {
		return "", fmt.Errorf("create pending profile: %w", err)
	}
	return id, nil
}

// FindCityByPlaceID returns the city profile registered for placeID.
func (r *ProfileRepository) FindCityByPlaceID(ctx context.Context, placeID string) (*entities.CityProfile, error) {
	const q = `
SELECT id, username, name, place, created_at
FROM profiles
WHERE type = $1 AND place = $2
LIMIT 1;
`
	var c entities.CityProfile
	err := r.pool.QueryRow(ctx, q, entities.ProfileTypeCity, placeID).Scan(
		&c.ID,
		&c.Username,
		&c.Name,
		&c.PlaceID,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find city by place id: %w", err)
	}
	return &c, nil
}
