package handlers

import (
	"net/http"
	"time"

	"github.com/centsible/centsible/internal/middleware"
	"github.com/centsible/centsible/internal/services"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	analyticsService *services.AnalyticsService
}

func NewDashboardHandler(analyticsService *services.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{analyticsService: analyticsService}
}

type StatsResponse struct {
	Success bool                    `json:"success"`
	Stats   services.DashboardStats `json:"stats"`
}

type ChartsResponse struct {
	Success      bool                      `json:"success"`
	Series       []services.TimeBucket     `json:"series"`
	Distribution []services.CategoryBucket `json:"distribution"`
	Comparison   []services.PeriodBucket   `json:"comparison"`
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Net revenue, growth, transaction and category counts for the filter window
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param filter query string false "week, month or year" default(week)
// @Success 200 {object} StatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	filter := services.PeriodFilter(c.DefaultQuery("filter", "week"))
	if !filter.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "filter must be week, month or year", Code: CodeValidationError})
		return
	}

	aggregates, err := h.analyticsService.Aggregates(userID, filter, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to compute statistics", Code: CodeInternalError})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{Success: true, Stats: aggregates.Stats})
}

// Charts godoc
// @Summary Dashboard chart series
// @Description Net-flow time series, category distribution and income/expense comparison
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param filter query string false "week, month or year" default(week)
// @Success 200 {object} ChartsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/charts [get]
func (h *DashboardHandler) Charts(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	filter := services.PeriodFilter(c.DefaultQuery("filter", "week"))
	if !filter.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "filter must be week, month or year", Code: CodeValidationError})
		return
	}

	aggregates, err := h.analyticsService.Aggregates(userID, filter, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to compute charts", Code: CodeInternalError})
		return
	}

	c.JSON(http.StatusOK, ChartsResponse{
		Success:      true,
		Series:       aggregates.Series,
		Distribution: aggregates.Distribution,
		Comparison:   aggregates.Comparison,
	})
}
