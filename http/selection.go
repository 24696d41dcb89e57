package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sdelosreyes/incendios-viewer/dataset"
)

// parseSelection builds a filter Selection from the shared query
// parameters every filterable endpoint accepts: start_year, end_year,
// provinces (comma-separated), causes (comma-separated ids),
// intentional and unintentional (booleans, default true).
func parseSelection(c *gin.Context) (dataset.Selection, error) {
	var sel dataset.Selection

	if yearStr := c.Query("start_year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return sel, errors.New("invalid start_year")
		}
		sel.StartYear = year
	}

	if yearStr := c.Query("end_year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return sel, errors.New("invalid end_year")
		}
		sel.EndYear = year
	}

	if sel.StartYear != 0 && sel.EndYear != 0 && sel.EndYear < sel.StartYear {
		return sel, errors.New("end_year before start_year")
	}

	if provStr := c.Query("provinces"); provStr != "" {
		for _, name := range strings.Split(provStr, ",") {
			if name = strings.TrimSpace(name); name != "" {
				sel.Provinces = append(sel.Provinces, name)
			}
		}
	}

	if causeStr := c.Query("causes"); causeStr != "" {
		for _, part := range strings.Split(causeStr, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.Atoi(part)
			if err != nil {
				return sel, errors.New("invalid causes")
			}
			sel.Causes = append(sel.Causes, id)
		}
	}

	if boolStr := c.Query("intentional"); boolStr != "" {
		val, err := strconv.ParseBool(boolStr)
		if err != nil {
			return sel, errors.New("invalid intentional parameter")
		}
		sel.ExcludeIntentional = !val
	}

	if boolStr := c.Query("unintentional"); boolStr != "" {
		val, err := strconv.ParseBool(boolStr)
		if err != nil {
			return sel, errors.New("invalid unintentional parameter")
		}
		sel.ExcludeUnintentional = !val
	}

	return sel, nil
}
