package googlemaps

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"dancehub/internal/domain"
	"dancehub/internal/domain/entities"
)

type fakeLocator struct {
	place   *entities.VenuePlace
	err     error
	queries []string
}

func (f *fakeLocator) Locate(ctx context.Context, query string) (*entities.VenuePlace, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.place, nil
}

type fakeCityStore struct {
	city *entities.CityProfile
	err  error
}

func (f *fakeCityStore) FindCityByPlaceID(ctx context.Context, placeID string) (*entities.CityProfile, error) {
	if f.city != nil {
		return f.city, nil
	}
	if f.err != nil {
		return nil, f.err
	}
	return nil, domain.ErrProfileNotFound
}

func testDirLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestCityIDNilVenue(t *testing.T) {
	d := NewCityDirectory(&fakeLocator{}, &fakeCityStore{}, testDirLogger())
	id, err := d.CityID(context.Background(), nil)
	if err != nil || id != "" {
		t.Fatalf("got (%q, %v), want empty city for nil venue", id, err)
	}
}

func TestCityIDUsesLocalityPlace(t *testing.T) {
	loc := &fakeLocator{place: &entities.VenuePlace{PlaceID: "city-madrid"}}
	d := NewCityDirectory(loc, &fakeCityStore{}, testDirLogger())

	id, err := d.CityID(context.Background(), &entities.VenuePlace{Locality: "Madrid", Country: "ES"})
	if err != nil {
		t.Fatalf("city id: %v", err)
	}
	if id != "city-madrid" {
		t.Errorf("id = %q", id)
	}
	if len(loc.queries) != 1 || loc.queries[0] != "Madrid, ES" {
		t.Errorf("locality query = %v", loc.queries)
	}
}

func TestCityIDPrefersRegisteredCity(t *testing.T) {
	loc := &fakeLocator{place: &entities.VenuePlace{PlaceID: "geocoded-id"}}
	store := &fakeCityStore{city: &entities.CityProfile{Username: "madrid", PlaceID: "registered-id"}}
	d := NewCityDirectory(loc, store, testDirLogger())

	id, err := d.CityID(context.Background(), &entities.VenuePlace{Locality: "Madrid", Country: "ES"})
	if err != nil {
		t.Fatalf("city id: %v", err)
	}
	if id != "registered-id" {
		t.Errorf("id = %q, want registered city's place id", id)
	}
}

func TestCityIDLocalityMissIsNotFatal(t *testing.T) {
	d := NewCityDirectory(&fakeLocator{err: domain.ErrPlaceNotFound}, &fakeCityStore{}, testDirLogger())
	id, err := d.CityID(context.Background(), &entities.VenuePlace{Locality: "Nowhere", Country: "XX"})
	if err != nil || id != "" {
		t.Fatalf("got (%q, %v), want graceful empty city", id, err)
	}
}

func TestCityIDStoreErrorPropagates(t *testing.T) {
	loc := &fakeLocator{place: &entities.VenuePlace{PlaceID: "x"}}
	d := NewCityDirectory(loc, &fakeCityStore{err: errors.New("db down")}, testDirLogger())
	if _, err := d.CityID(context.Background(), &entities.VenuePlace{Locality: "Madrid", Country: "ES"}); err == nil {
		t.Fatal("expected store error to propagate")
	}
}
