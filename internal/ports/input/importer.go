package input

import (
	"context"

	"dancehub/internal/domain/entities"
)

// EventImporter drives the import pipeline for a single source URL.
type EventImporter interface {
	ImportFacebookEvent(ctx context.Context, url string) (*entities.EventDraft, error)
}
