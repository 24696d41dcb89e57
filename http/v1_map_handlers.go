package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sdelosreyes/incendios-viewer/geo"
)

// handleV1Choropleth returns the province choropleth layer for the
// current filter selection: one GeoJSON feature per province with
// aggregate properties, plus the fixed Spain bounds and the scale
// ceiling. An empty subset yields a zero-valued base map.
// GET /api/v1/map/choropleth
func (s *Server) handleV1Choropleth(c *gin.Context) {
	defer s.observe("choropleth")()

	subset, ok := s.filterRecords(c)
	if !ok {
		return
	}

	layer := geo.Choropleth(subset, s.provinces)
	if layer.UnmatchedRecords > 0 {
		s.metrics.UnmatchedRecords.Add(float64(layer.UnmatchedRecords))
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"type":     "FeatureCollection",
			"features": layer.Collection.Features,
		},
		"meta": gin.H{
			"bounds":              layer.Bounds,
			"max_total_resources": layer.MaxTotalResources,
			"matched_records":     layer.MatchedRecords,
			"unmatched_records":   layer.UnmatchedRecords,
		},
	})
}
