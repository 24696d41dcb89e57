package http

import "github.com/gin-gonic/gin"

// registerV1Routes sets up the v1 API structure
// Groups: /api/v1/core, /api/v1/map, /api/v1/charts
func (s *Server) registerV1Routes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(apiVersionMiddleware()) // Add X-API-Version: v1 header

	if s.cfg.BearerToken != "" {
		v1.Use(bearerAuthMiddleware(s.cfg.BearerToken))
	}

	// Core endpoints - dataset metadata and filtered records
	core := v1.Group("/core")
	{
		core.GET("/meta", s.handleV1Meta)
		core.GET("/fires", s.handleV1ListFires)
	}

	// Map endpoints - province choropleth layer
	mapGroup := v1.Group("/map")
	{
		mapGroup.GET("/choropleth", s.handleV1Choropleth)
	}

	// Chart endpoints - aggregates for the chart panels
	chartsGroup := v1.Group("/charts")
	{
		chartsGroup.GET("/burned-area", s.handleV1BurnedArea)
		chartsGroup.GET("/resources", s.handleV1Resources)
		chartsGroup.GET("/top-provinces", s.handleV1TopProvinces)
		chartsGroup.GET("/causes", s.handleV1Causes)
	}
}

func apiVersionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-API-Version", "v1")
		c.Next()
	}
}
