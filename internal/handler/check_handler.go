package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sylvanite/backup-checker/internal/domain"
	"github.com/sylvanite/backup-checker/internal/service/check"
)

// CheckHandler triggers check runs over HTTP and serves the latest
// rendered report. Intended for the DSM task scheduler hitting the
// endpoint once per day instead of invoking the binary directly.
type CheckHandler struct {
	checkService *check.Service

	mu         sync.Mutex
	lastReport string
	lastRunID  string
}

func NewCheckHandler(checkService *check.Service) *CheckHandler {
	return &CheckHandler{checkService: checkService}
}

// HandleCheck runs one audit. An optional `ref` query parameter
// (RFC3339) overrides the reference date, for tests and backfills.
func (h *CheckHandler) HandleCheck(c *gin.Context) {
	ctx := c.Request.Context()

	referenceDate := time.Now()
	if refStr := c.Query("ref"); refStr != "" {
		parsed, err := time.Parse(time.RFC3339, refStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ref time format, expected RFC3339"})
			return
		}
		referenceDate = parsed
		slog.InfoContext(ctx, "using reference date override",
			slog.Time("reference_date", referenceDate),
		)
	}

	result, err := h.checkService.Run(ctx, referenceDate)
	if err != nil {
		if errors.Is(err, domain.ErrNoUsers) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no users found"})
			return
		}
		slog.ErrorContext(ctx, "check run failed",
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	h.lastReport = result.ReportWithLog()
	h.lastRunID = result.RunID
	h.mu.Unlock()

	c.JSON(http.StatusOK, result)
}

// HandleReport serves the report of the most recent successful run as
// plain text.
func (h *CheckHandler) HandleReport(c *gin.Context) {
	h.mu.Lock()
	report, runID := h.lastReport, h.lastRunID
	h.mu.Unlock()

	if report == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no report available yet"})
		return
	}

	c.Header("X-Run-ID", runID)
	c.String(http.StatusOK, report)
}
