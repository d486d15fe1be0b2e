package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/JustJay7/court-viewer/internal/api"
	"github.com/JustJay7/court-viewer/internal/database"
	"github.com/JustJay7/court-viewer/internal/metrics"
	"github.com/JustJay7/court-viewer/pkg/logger"
)

const (
	headerRequestID = "X-Request-ID"
	ctxRequestID    = "request_id"
)

// requestIDMiddleware keeps a caller supplied request id or mints one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(headerRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Writer.Header().Set(headerRequestID, id)
		c.Next()
	}
}

func loggingMiddleware(logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		kv := []interface{}{
			"request_id", c.GetString(ctxRequestID),
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"path", path,
			"status", statusCode,
			"latency", latency.String(),
			"user_agent", c.Request.UserAgent(),
		}
		if len(c.Errors) > 0 {
			kv = append(kv, "errors", c.Errors.String())
		}

		if statusCode >= http.StatusInternalServerError {
			logger.Warn("HTTP Request", kv...)
			return
		}
		logger.Info("HTTP Request", kv...)
	}
}

func corsMiddleware(domain string) gin.HandlerFunc {
	if domain == "" {
		domain = "*"
	}
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", domain)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID, X-Agency-Code, X-Participant-Id")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func metricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.StartRequest()

		c.Next()

		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

// rateLimitMiddleware allows limit requests per window across the process,
// with bursts up to limit.
func rateLimitMiddleware(limit int, window time.Duration) gin.HandlerFunc {
	if window <= 0 {
		window = time.Minute
	}
	limiter := rate.NewLimiter(rate.Limit(float64(limit)/window.Seconds()), limit)

	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, "/api/files") {
			c.Next()
			return
		}
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}

// auditMiddleware records every civil file request in the request log.
func auditMiddleware(store *database.RequestLogStore, handlers *api.Handlers, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, "/api/files") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		requester := handlers.Requester(c)
		fileID := c.Param("fileId")
		if fileID == "" {
			fileID = c.Query("physicalFileId")
		}

		entry := &database.RequestLog{
			RequestID:    c.GetString(ctxRequestID),
			Method:       c.Request.Method,
			Route:        c.FullPath(),
			Path:         c.Request.URL.Path,
			FileID:       fileID,
			AppearanceID: c.Param("appearanceId"),
			AgencyID:     requester.AgencyID,
			PartID:       requester.PartID,
			Status:       c.Writer.Status(),
			Success:      c.Writer.Status() < http.StatusBadRequest,
			LatencyMs:    time.Since(start).Milliseconds(),
			RequestTime:  start,
			IPAddress:    c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			entry.ErrorMessage = c.Errors.Last().Error()
		}

		if err := store.Record(c.Request.Context(), entry); err != nil {
			logger.Error("Failed to record request", "request_id", entry.RequestID, "error", err)
		}
	}
}
