package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"copilot/internal/cache"
	"copilot/internal/database"
	"copilot/internal/models"
	"copilot/internal/reports"

	"github.com/labstack/echo/v4"
)

// ReportsHandler runs a single named report over a fresh snapshot
// @Summary Run a report
// @Description Computes one analytics report over the current data snapshot and returns its rows
// @Tags reports
// @Accept json
// @Produce json
// @Param name query string true "Report name (e.g. dailyMessages, serviceHours, executiveSummary)"
// @Success 200 {array} object
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/reports [get]
func ReportsHandler(store *database.Store, c *cache.Cache, ttl time.Duration) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		name := ctx.QueryParam("name")
		if name == "" {
			return ctx.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "query parameter 'name' is required",
			})
		}

		cacheKey := "report:" + name
		if cached, ok := c.Get(cacheKey); ok {
			return ctx.JSON(http.StatusOK, cached)
		}

		snapshot, err := store.LoadSnapshot(ctx.Request().Context())
		if err != nil {
			return ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("failed to load snapshot: %v", err),
			})
		}

		rowSet, err := reports.Run(name, snapshot)
		if err != nil {
			if errors.Is(err, reports.ErrReportNotFound) {
				return ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
			}
			return ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		}

		c.Set(cacheKey, rowSet.Rows, ttl)
		return ctx.JSON(http.StatusOK, rowSet.Rows)
	}
}

// DashboardHandler runs the dashboard report batch concurrently
// @Summary Run the dashboard report batch
// @Description Computes every report the analytics dashboard needs over one shared snapshot, in parallel
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} map[string][]object
// @Failure 500 {object} models.ErrorResponse
// @Router /api/reports/dashboard [get]
func DashboardHandler(store *database.Store, c *cache.Cache, ttl time.Duration) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		const cacheKey = "report:dashboard"
		if cached, ok := c.Get(cacheKey); ok {
			return ctx.JSON(http.StatusOK, cached)
		}

		snapshot, err := store.LoadSnapshot(ctx.Request().Context())
		if err != nil {
			return ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("failed to load snapshot: %v", err),
			})
		}

		results, err := reports.RunMany(reports.DashboardReports, snapshot)
		if err != nil {
			return ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		}

		c.Set(cacheKey, results, ttl)
		return ctx.JSON(http.StatusOK, results)
	}
}
