package search

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"dancehub/internal/config"
	"dancehub/internal/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewClient(&config.SearchConfig{
		Host:   srv.URL,
		AppID:  "APP123",
		APIKey: "secret",
		Index:  "profiles",
	}, logger), srv
}

func TestSearchProfiles(t *testing.T) {
	var gotPath, gotAppID string
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAppID = r.Header.Get("X-Algolia-Application-Id")
		io.WriteString(w, `{"hits":[{"id":"p1","username":"salsaclub","name":"Salsa Club","photo":"x"},{"id":"p2","username":"other"}],"nbHits":2}`)
	})

	hits, err := client.SearchProfiles(context.Background(), "salsaclub")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if gotPath != "/1/indexes/profiles/query" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAppID != "APP123" {
		t.Errorf("app id header = %q", gotAppID)
	}
	if len(hits) != 2 || hits[0].ID != "p1" || hits[0].Username != "salsaclub" {
		t.Errorf("hits = %+v", hits)
	}
}

func TestSearchProfilesEmptyResult(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"hits":[],"nbHits":0}`)
	})

	hits, err := client.SearchProfiles(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("empty result is not an error: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("hits = %+v", hits)
	}
}

func TestSearchProfilesServerError(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.SearchProfiles(context.Background(), "salsaclub")
	if !errors.Is(err, domain.ErrServiceFailure) {
		t.Fatalf("err = %v, want ErrServiceFailure", err)
	}
}
