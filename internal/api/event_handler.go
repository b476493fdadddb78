package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"dancehub/internal/domain"
	"dancehub/internal/domain/entities"
	"dancehub/internal/ports/input"
)

type EventHandler struct {
	catalog input.EventCatalog
	logger  *logrus.Logger
}

func NewEventHandler(catalog input.EventCatalog, logger *logrus.Logger) *EventHandler {
	return &EventHandler{catalog: catalog, logger: logger}
}

// CreateEvent persists a reviewed event draft.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var draft entities.EventDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.catalog.CreateEvent(c.Request.Context(), &draft)
	if err != nil {
		h.logger.WithError(err).Error("create event failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.catalog.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		h.logger.WithError(err).Error("get event failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, event)
}

// ListEvents serves the catalog queries. Exactly one of the org, venue or
// place query parameters selects the filter.
func (h *EventHandler) ListEvents(c *gin.Context) {
	org := c.Query("org")
	venue := c.Query("venue")
	place := c.Query("place")

	ctx := c.Request.Context()
	switch {
	case org != "" && venue == "" && place == "":
		entries, err := h.catalog.EventsOrganisedBy(ctx, org)
		h.respondList(c, entries, err)
	case venue != "" && org == "" && place == "":
		entries, err := h.catalog.EventsAtVenue(ctx, venue)
		h.respondList(c, entries, err)
	case place != "" && org == "" && venue == "":
		events, err := h.catalog.UpcomingEventsInPlace(ctx, place)
		h.respondList(c, events, err)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "exactly one of org, venue or place is required"})
	}
}

func (h *EventHandler) ListFestivals(c *gin.Context) {
	events, err := h.catalog.Festivals(c.Request.Context())
	h.respondList(c, events, err)
}

func (h *EventHandler) respondList(c *gin.Context, list any, err error) {
	if err != nil {
		h.logger.WithError(err).Error("event query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}
