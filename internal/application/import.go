package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"dancehub/internal/domain"
	"dancehub/internal/domain/entities"
	"dancehub/internal/observability"
	"dancehub/internal/ports/input"
	"dancehub/internal/ports/output"
)

var _ input.EventImporter = (*ImportService)(nil)

// ImportService runs the Facebook event import pipeline:
// scrape, resolve venue, resolve organizer, assemble.
type ImportService struct {
	scraper  output.EventScraper
	geocoder output.Geocoder
	cities   output.CityDirectory
	index    output.ProfileIndex
	profiles output.ProfileRepository
	logger   *logrus.Logger
	metrics  *observability.Metrics
	timeout  time.Duration
}

func NewImportService(
	scraper output.EventScraper,
	geocoder output.Geocoder,
	cities output.CityDirectory,
	index output.ProfileIndex,
	profiles output.ProfileRepository,
	logger *logrus.Logger,
	metrics *observability.Metrics,
	timeout time.Duration,
) *ImportService {
	return &ImportService{
		scraper:  scraper,
		geocoder: geocoder,
		cities:   cities,
		index:    index,
		profiles: profiles,
		logger:   logger,
		metrics:  metrics,
		timeout:  timeout,
	}
}

// ImportFacebookEvent scrapes the event at url and assembles an EventDraft.
// The only write it may perform is the pending-profile document created when
// the organizer is unknown; the event itself is never persisted here.
func (s *ImportService) ImportFacebookEvent(ctx context.Context, url string) (*entities.EventDraft, error) {
	start := time.Now()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	draft, err := s.importEvent(ctx, url)
	s.metrics.ImportDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", domain.ErrTimeout, err)
		}
		s.metrics.ImportsTotal.WithLabelValues("error").Inc()
		s.logger.WithError(err).WithField("url", url).Warn("event import failed")
		return nil, err
	}
	s.metrics.ImportsTotal.WithLabelValues("ok").Inc()
	s.logger.WithFields(logrus.Fields{
		"url":   url,
		"event": draft.Name,
		"place": draft.Place,
	}).Info("event imported")
	return draft, nil
}

func (s *ImportService) importEvent(ctx context.Context, url string) (*entities.EventDraft, error) {
	event, err := s.scraper.Scrape(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("scrape %s: %w", url, err)
	}
	if len(event.Hosts) == 0 {
		return nil, fmt.Errorf("%s: %w", url, domain.ErrNoHostData)
	}
	host := event.Hosts[0]
	searchHandle, fallbackUsername := organizerHandles(host.URL, host.Name)

	// Venue resolution and the organizer index search are independent, so
	// they run concurrently. The pending-profile write below still waits for
	// the resolved city.
	var (
		venue  *entities.VenuePlace
		cityID string
		hits   []output.ProfileHit
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var verr error
		venue, cityID, verr = s.resolveVenue(gctx, event.Location)
		return verr
	})
	g.Go(func() error {
		var serr error
		hits, serr = s.index.SearchProfiles(gctx, searchHandle)
		if serr != nil {
			return fmt.Errorf("search profiles %q: %w: %v", searchHandle, domain.ErrServiceFailure, serr)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	org, err := s.resolveOrganizer(ctx, host, hits, fallbackUsername, cityID)
	if err != nil {
		return nil, err
	}

	return &entities.EventDraft{
		Name:          event.Name,
		Description:   event.Description,
		Cover:         event.PhotoURI,
		StartDate:     entities.MillisFromSeconds(event.StartTimestamp),
		EndDate:       entities.MillisFromSeconds(event.EndTimestamp),
		Venue:         venue,
		Place:         cityID,
		Link:          event.TicketURL,
		Facebook:      event.URL,
		Type:          entities.EventDocType,
		Visibility:    entities.VisibilityPublic,
		Form:          "No",
		Online:        "No",
		International: "No",
		Claimed:       "No",
		EventType:     entities.EventTypeParty,
		Duration:      entities.DefaultDurationMinutes,
		Price:         "",
		Styles:        map[string]bool{},
		Artists:       []string{},
		Org:           org,
		Program:       []entities.ProgramEntry{},
		Watch:         entities.WatchList{Count: 0, Usernames: []string{}},
	}, nil
}

// resolveVenue geocodes the scraped location and maps it to a city. A geocode
// miss is not an error: the import proceeds with no venue and no city.
func (s *ImportService) resolveVenue(ctx context.Context, loc *entities.EventLocation) (*entities.VenuePlace, string, error) {
	var name, address, country string
	if loc != nil {
		name, address, country = loc.Name, loc.Address, loc.CountryCode
	}
	// Empty fields contribute empty strings; the spacing is part of the
	// query contract with the geocoder.
	query := fmt.Sprintf("%s %s %s", name, address, country)

	venue, err := s.geocoder.Locate(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrPlaceNotFound) {
			s.metrics.GeocodeMisses.Inc()
			s.logger.WithField("query", query).Debug("geocode miss, importing without venue")
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("geocode %q: %w", query, err)
	}

	cityID, err := s.cities.CityID(ctx, venue)
	if err != nil {
		return nil, "", fmt.Errorf("city lookup for %q: %w", venue.PlaceID, err)
	}
	return venue, cityID, nil
}

// resolveOrganizer maps the top index hit when there is one; otherwise it
// creates a pending-import profile. Only the miss path writes, so re-importing
// an event whose organizer is already indexed never duplicates a profile.
func (s *ImportService) resolveOrganizer(ctx context.Context, host entities.Host, hits []output.ProfileHit, fallbackUsername, cityID string) (*entities.OrganizerProfile, error) {
	if len(hits) > 0 {
		return organizerFromHit(hits[0]), nil
	}

	org := entities.NewPendingProfile(host, fallbackUsername, cityID)
	// The generated identifier is deliberately not attached to the returned
	// profile; only indexed organizers carry an id.
	if _, err := s.profiles.CreatePending(ctx, org); err != nil {
		return nil, fmt.Errorf("create pending profile %q: %w: %v", org.Username, domain.ErrServiceFailure, err)
	}
	s.metrics.PendingProfiles.Inc()
	s.logger.WithField("username", org.Username).Info("pending organizer profile created")
	return org, nil
}

func organizerFromHit(hit output.ProfileHit) *entities.OrganizerProfile {
	name := hit.Name
	if name == "" {
		name = hit.Username
	}
	return &entities.OrganizerProfile{
		ID:        hit.ID,
		Username:  hit.Username,
		Name:      name,
		Photo:     hit.Photo,
		Bio:       hit.Bio,
		Instagram: hit.Instagram,
		Facebook:  hit.Facebook,
		TikTok:    hit.TikTok,
		YouTube:   hit.YouTube,
	}
}
