package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/JustJay7/court-viewer/internal/cache"
	"github.com/JustJay7/court-viewer/internal/config"
	"github.com/JustJay7/court-viewer/internal/database"
	"github.com/JustJay7/court-viewer/internal/files"
	"github.com/JustJay7/court-viewer/internal/upstream"
	"github.com/JustJay7/court-viewer/pkg/logger"
)

const (
	HeaderAgencyCode    = "X-Agency-Code"
	HeaderParticipantID = "X-Participant-Id"
)

// FileService is the civil file aggregation the handlers expose.
type FileService interface {
	Search(ctx context.Context, req files.Requester, query upstream.CivilSearchQuery) (*upstream.FileSearchResponse, error)
	FileIDsByAgencyAndFileNumber(ctx context.Context, req files.Requester, location, fileNumber string) ([]files.CivilFileDetail, error)
	FileDetail(ctx context.Context, req files.Requester, fileID string) (*files.CivilFileDetail, error)
	AppearanceDetail(ctx context.Context, req files.Requester, fileID, appearanceID string) (*files.AppearanceDetail, error)
	CourtSummaryReport(ctx context.Context, req files.Requester, appearanceID, reportName string) ([]byte, error)
	FileContent(ctx context.Context, q files.FileContentRequest) (*upstream.CivilFileContent, error)
}

// StatsSource reports memoizer statistics.
type StatsSource interface {
	Stats() cache.CacheStats
}

// Handlers holds all HTTP handlers
type Handlers struct {
	files    FileService
	requests *database.RequestLogStore
	caches   map[string]StatsSource
	logger   *logger.Logger
	cfg      *config.Config
}

// NewHandlers creates a new handlers instance
func NewHandlers(svc FileService, requests *database.RequestLogStore, caches map[string]StatsSource, logger *logger.Logger, cfg *config.Config) *Handlers {
	return &Handlers{
		files:    svc,
		requests: requests,
		caches:   caches,
		logger:   logger,
		cfg:      cfg,
	}
}

// Requester derives the caller identity from headers, falling back to the
// configured service identity.
func (h *Handlers) Requester(c *gin.Context) files.Requester {
	req := files.Requester{
		AgencyID: strings.TrimSpace(c.GetHeader(HeaderAgencyCode)),
		PartID:   strings.TrimSpace(c.GetHeader(HeaderParticipantID)),
	}
	if req.AgencyID == "" {
		req.AgencyID = h.cfg.RequestAgencyIdentifierID
	}
	if req.PartID == "" {
		req.PartID = h.cfg.RequestPartID
	}
	return req
}

// SearchCivilFiles forwards a civil file search
func (h *Handlers) SearchCivilFiles(c *gin.Context) {
	var query upstream.CivilSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid search parameters: " + err.Error(),
		})
		return
	}

	result, err := h.files.Search(c.Request.Context(), h.Requester(c), query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// CivilFilesByFileNumber resolves files by home location and file number
func (h *Handlers) CivilFilesByFileNumber(c *gin.Context) {
	location := c.Query("location")
	fileNumber := c.Query("fileNumber")

	if location == "" || fileNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Missing required parameters: location, fileNumber",
		})
		return
	}

	result, err := h.files.FileIDsByAgencyAndFileNumber(c.Request.Context(), h.Requester(c), location, fileNumber)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if len(result) == 0 {
		h.respondError(c, fmt.Errorf("file number %s at %s: %w", fileNumber, location, files.ErrNotFound))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// CivilFileDetail returns one enriched civil file
func (h *Handlers) CivilFileDetail(c *gin.Context) {
	detail, err := h.files.FileDetail(c.Request.Context(), h.Requester(c), c.Param("fileId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    detail,
	})
}

// CivilAppearanceDetail returns one appearance joined with its parties
func (h *Handlers) CivilAppearanceDetail(c *gin.Context) {
	detail, err := h.files.AppearanceDetail(c.Request.Context(), h.Requester(c), c.Param("fileId"), c.Param("appearanceId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    detail,
	})
}

// CivilCourtSummaryReport streams the court summary report PDF
func (h *Handlers) CivilCourtSummaryReport(c *gin.Context) {
	fileName := c.Param("fileName")
	report, err := h.files.CourtSummaryReport(c.Request.Context(), h.Requester(c), c.Param("appearanceId"), c.DefaultQuery("reportName", "CEISR035"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", report)
}

// CivilFileContent passes a file content query through
func (h *Handlers) CivilFileContent(c *gin.Context) {
	q := files.FileContentRequest{
		AgencyID:       c.Query("agencyId"),
		RoomCode:       c.Query("roomCode"),
		AppearanceID:   c.Query("appearanceId"),
		PhysicalFileID: c.Query("physicalFileId"),
	}

	if raw := c.Query("proceeding"); raw != "" {
		proceeding, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid proceeding date, expected YYYY-MM-DD",
			})
			return
		}
		q.Proceeding = &proceeding
	}

	content, err := h.files.FileContent(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    content,
	})
}

// ListRequestsAPI returns the request audit log
func (h *Handlers) ListRequestsAPI(c *gin.Context) {
	// Get pagination parameters
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := database.RequestFilter{
		FileID: c.Query("fileId"),
		PartID: c.Query("partId"),
	}

	logs, total, err := h.requests.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    logs,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// HealthCheck returns the health status
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": h.requests.Ping(c.Request.Context()),
		"cache":    h.cacheStats(),
		"time":     time.Now().Unix(),
	})
}

// CacheStats returns cache statistics
func (h *Handlers) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   h.cacheStats(),
	})
}

func (h *Handlers) cacheStats() map[string]cache.CacheStats {
	stats := make(map[string]cache.CacheStats, len(h.caches))
	for name, source := range h.caches {
		stats[name] = source.Stats()
	}
	return stats
}

// respondError maps the service error taxonomy onto HTTP statuses.
func (h *Handlers) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, files.ErrNotFound):
		status, message = http.StatusNotFound, "Not found"
	case errors.Is(err, files.ErrInvalidInput):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, files.ErrUpstream):
		status, message = http.StatusBadGateway, "Court records provider unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status, message = http.StatusGatewayTimeout, "Request cancelled"
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", "path", c.Request.URL.Path, "status", status, "error", err)
	}
	_ = c.Error(err)

	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
