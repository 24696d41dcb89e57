package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sdelosreyes/incendios-viewer/dataset"
)

// filterRecords parses the shared filter params and applies them to
// the loaded dataset, answering 400 itself on bad input.
func (s *Server) filterRecords(c *gin.Context) ([]dataset.FireRecord, bool) {
	sel, err := parseSelection(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return dataset.Apply(s.data.Records, sel), true
}

// observe counts the request and returns a stop func recording the
// filter+render duration.
func (s *Server) observe(endpoint string) func() {
	s.metrics.RequestsTotal.WithLabelValues(endpoint).Inc()
	start := time.Now()
	return func() {
		s.metrics.RenderDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}

// handleV1Meta returns the dataset summary the UI controls are built from
// GET /api/v1/core/meta
func (s *Server) handleV1Meta(c *gin.Context) {
	defer s.observe("meta")()

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"min_year":     s.data.MinYear,
			"max_year":     s.data.MaxYear,
			"provinces":    s.data.Provinces,
			"record_count": len(s.data.Records),
			"rows_skipped": s.data.Skipped,
		},
	})
}

// handleV1ListFires returns filtered fire records, capped at the
// configured maximum
// GET /api/v1/core/fires
func (s *Server) handleV1ListFires(c *gin.Context) {
	defer s.observe("fires")()

	subset, ok := s.filterRecords(c)
	if !ok {
		return
	}

	limit := s.cfg.MaxRecords
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	total := len(subset)
	truncated := false
	if total > limit {
		subset = subset[:limit]
		truncated = true
	}

	c.JSON(http.StatusOK, gin.H{
		"data": subset,
		"meta": gin.H{
			"count":     len(subset),
			"total":     total,
			"truncated": truncated,
		},
	})
}
