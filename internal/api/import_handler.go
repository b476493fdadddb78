package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"dancehub/internal/domain"
	"dancehub/internal/ports/input"
)

type ImportHandler struct {
	importer input.EventImporter
	logger   *logrus.Logger
}

func NewImportHandler(importer input.EventImporter, logger *logrus.Logger) *ImportHandler {
	return &ImportHandler{importer: importer, logger: logger}
}

type importRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// ImportFacebookEvent runs the import pipeline for the posted URL and returns
// the assembled draft. The draft is not persisted; the client reviews it and
// submits it to POST /api/events.
func (h *ImportHandler) ImportFacebookEvent(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	draft, err := h.importer.ImportFacebookEvent(c.Request.Context(), req.URL)
	if err != nil {
		h.logger.WithError(err).WithField("url", req.URL).Error("import failed")
		c.JSON(importStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}

func importStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrSourceUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrNoHostData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
