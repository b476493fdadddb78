// Package search queries the platform's hosted search index (Algolia REST
// protocol) for profiles.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"dancehub/internal/config"
	"dancehub/internal/domain"
	"dancehub/internal/ports/output"
)

var _ output.ProfileIndex = (*Client)(nil)

type Client struct {
	httpClient *http.Client
	host       string
	appID      string
	apiKey     string
	index      string
	logger     *logrus.Logger
}

func NewClient(cfg *config.SearchConfig, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		host:       cfg.Host,
		appID:      cfg.AppID,
		apiKey:     cfg.APIKey,
		index:      cfg.Index,
		logger:     logger,
	}
}

type queryRequest struct {
	Params string `json:"params"`
}

type queryResponse struct {
	Hits   []output.ProfileHit `json:"hits"`
	NbHits int                 `json:"nbHits"`
}

// SearchProfiles runs a full-text query against the profile index and
// returns the ranked hits. Transport and non-2xx failures surface as errors;
// an empty hit list is a normal result.
func (c *Client) SearchProfiles(ctx context.Context, query string) ([]output.ProfileHit, error) {
	body, err := json.Marshal(queryRequest{Params: "query=" + url.QueryEscape(query)})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	endpoint := fmt.Sprintf("%s/1/indexes/%s/query", c.host, url.PathEscape(c.index))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build query request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Algolia-Application-Id", c.appID)
	req.Header.Set("X-Algolia-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query index %q: %w: %v", c.index, domain.ErrServiceFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("query index %q: %w: status %d: %s", c.index, domain.ErrServiceFailure, resp.StatusCode, snippet)
	}

	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode index response: %w: %v", domain.ErrServiceFailure, err)
	}
	c.logger.WithFields(logrus.Fields{
		"query": query,
		"hits":  out.NbHits,
	}).Debug("profile index queried")
	return out.Hits, nil
}
