package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/forest-watch/internal/domain/forest"
	"github.com/yanqian/forest-watch/internal/infra/config"
	apperrors "github.com/yanqian/forest-watch/pkg/errors"
)

// Handler wires the HTTP transport to the forest service.
type Handler struct {
	forestSvc   forest.Service
	defaultTopN int
	startYear   int
	endYear     int
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc forest.Service, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		forestSvc:   svc,
		defaultTopN: cfg.Forest.TopRegions,
		startYear:   cfg.Forest.StartYear,
		endYear:     cfg.Forest.EndYear,
		logger:      logger.With("component", "http.handler"),
	}
}

// YearlyLoss returns the yearly tree cover loss series.
func (h *Handler) YearlyLoss(c *gin.Context) {
	start, err := intQuery(c, "start", h.startYear)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	end, err := intQuery(c, "end", h.endYear)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if err := forest.ValidateYearRange(start, end); err != nil {
		abortWithError(c, fromDomainError(err, "yearly_loss_failed"))
		return
	}

	data, err := h.forestSvc.FetchYearlyRange(c.Request.Context(), start, end)
	if err != nil {
		abortWithError(c, fromDomainError(err, "yearly_loss_failed"))
		return
	}
	c.JSON(http.StatusOK, data)
}

// Summary returns the national headline figures.
func (h *Handler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.forestSvc.NationalSummary())
}

// TopRegions returns the most affected states.
func (h *Handler) TopRegions(c *gin.Context) {
	n, err := intQuery(c, "n", h.defaultTopN)
	if err != nil || n < 0 {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "n must be a non-negative integer", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"regions": h.forestSvc.TopRegions(n)})
}

// Hotspots returns every map marker.
func (h *Handler) Hotspots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"markers": h.forestSvc.HotspotMarkers()})
}

// HotspotsGeoJSON returns the markers as a GeoJSON FeatureCollection.
func (h *Handler) HotspotsGeoJSON(c *gin.Context) {
	fc := forest.MarkersFeatureCollection(h.forestSvc.HotspotMarkers())
	payload, err := fc.MarshalJSON()
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "geojson_failed", "failed to encode markers", err))
		return
	}
	c.Data(http.StatusOK, "application/geo+json", payload)
}

// Hotspot returns the detail panel for a single marker.
func (h *Handler) Hotspot(c *gin.Context) {
	detail, err := h.forestSvc.Hotspot(c.Param("id"))
	if err != nil {
		abortWithError(c, fromDomainError(err, "hotspot_failed"))
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Legend returns the severity legend.
func (h *Handler) Legend(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"severities": h.forestSvc.Legend()})
}

// Dashboard returns the composite dashboard view.
func (h *Handler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.forestSvc.Dashboard(c.Request.Context()))
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func intQuery(c *gin.Context, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Wrap("invalid_input", key+" must be an integer", err)
	}
	return v, nil
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
