package output

import (
	"context"

	"dancehub/internal/domain/entities"
)

// EventScraper fetches a public event page and returns its structured record.
type EventScraper interface {
	Scrape(ctx context.Context, url string) (*entities.ScrapedEvent, error)
}
