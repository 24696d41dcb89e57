package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sdelosreyes/incendios-viewer/charts"
)

// handleV1BurnedArea returns the burned-hectares-per-year trend line
// GET /api/v1/charts/burned-area
func (s *Server) handleV1BurnedArea(c *gin.Context) {
	defer s.observe("burned_area")()

	subset, ok := s.filterRecords(c)
	if !ok {
		return
	}

	series := charts.BurnedAreaByYear(subset)
	c.JSON(http.StatusOK, gin.H{
		"data": series,
		"meta": gin.H{
			"years":        len(series),
			"record_count": len(subset),
		},
	})
}

// handleV1Resources returns the stacked personnel/heavy/air series
// GET /api/v1/charts/resources
func (s *Server) handleV1Resources(c *gin.Context) {
	defer s.observe("resources")()

	subset, ok := s.filterRecords(c)
	if !ok {
		return
	}

	series := charts.ResourcesByYear(subset)
	c.JSON(http.StatusOK, gin.H{
		"data": series,
		"meta": gin.H{
			"years":        len(series),
			"record_count": len(subset),
		},
	})
}

// handleV1TopProvinces returns the top-N provinces by burned area
// GET /api/v1/charts/top-provinces?n=10
func (s *Server) handleV1TopProvinces(c *gin.Context) {
	defer s.observe("top_provinces")()

	n := s.cfg.DefaultTopN
	if nStr := c.Query("n"); nStr != "" {
		parsed, err := strconv.Atoi(nStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid n"})
			return
		}
		n = parsed
	}

	subset, ok := s.filterRecords(c)
	if !ok {
		return
	}

	ranking := charts.TopProvinces(subset, n)
	c.JSON(http.StatusOK, gin.H{
		"data": ranking,
		"meta": gin.H{
			"n":            n,
			"record_count": len(subset),
		},
	})
}

// handleV1Causes returns intentional vs unintentional incident counts
// GET /api/v1/charts/causes
func (s *Server) handleV1Causes(c *gin.Context) {
	defer s.observe("causes")()

	subset, ok := s.filterRecords(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": charts.Causes(subset),
		"meta": gin.H{
			"record_count": len(subset),
		},
	})
}
