// Package facebook fetches public event pages and extracts the embedded
// event payload into the platform's scraped-event shape.
package facebook

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"dancehub/internal/config"
	"dancehub/internal/domain"
	"dancehub/internal/domain/entities"
	"dancehub/internal/ports/output"
)

const maxPageBytes = 8 << 20

var _ output.EventScraper = (*Scraper)(nil)

// Scraper fetches event pages over plain HTTP with browser-like headers.
type Scraper struct {
	client    *http.Client
	userAgent string
	logger    *logrus.Logger
}

// NewScraper builds a Scraper from config (timeout, optional proxy).
func NewScraper(cfg *config.ScraperConfig, logger *logrus.Logger) *Scraper {
	transport := &http.Transport{
		MaxIdleConns:        16,
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			logger.WithError(err).WithField("proxy", cfg.Proxy).Warn("invalid proxy, scraping without it")
		} else {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}
	return &Scraper{
		client: &http.Client{
			Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
			Transport: transport,
		},
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Scrape fetches the event page at pageURL and returns its structured record.
// Any fetch or parse failure maps to domain.ErrSourceUnavailable.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) (*entities.ScrapedEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: bad url %q: %v", domain.ErrSourceUnavailable, pageURL, err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Sec-Fetch-Mode", "navigate")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %q: %v", domain.ErrSourceUnavailable, pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetch %q: status %d", domain.ErrSourceUnavailable, pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %v", domain.ErrSourceUnavailable, pageURL, err)
	}

	event, err := parseEventPage(body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %q: %v", domain.ErrSourceUnavailable, pageURL, err)
	}
	if event.URL == "" {
		event.URL = pageURL
	}
	s.logger.WithFields(logrus.Fields{
		"url":   pageURL,
		"event": event.Name,
		"hosts": len(event.Hosts),
	}).Debug("event page scraped")
	return event, nil
}
