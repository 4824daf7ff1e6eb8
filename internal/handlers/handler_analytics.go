package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/expenza/claims_management_app/internal/core/ports/services"
	"github.com/expenza/claims_management_app/internal/dto"
	"github.com/expenza/claims_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// analyticsHandler handles HTTP requests for the per-user dashboard numbers.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

func newAnalyticsHandler(as portssvc.AnalyticsSvcFacade) *analyticsHandler {
	return &analyticsHandler{
		analyticsService: as,
	}
}

// RegisterAnalyticsRoutes registers the analytics routes.
func RegisterAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvcFacade) {
	h := newAnalyticsHandler(analyticsService)

	rg.GET("/analytics/user/:userId", h.getUserAnalytics)
}

// getUserAnalytics godoc
// @Summary Get a user's claim analytics
// @Description Aggregates a user's claims into summary, trend, weekly, daily, by-type and status views
// @Tags analytics
// @Produce  json
// @Param   userId path string true "User ID"
// @Param   tenantId query string false "Tenant ID"
// @Success 200 {object} dto.UserAnalyticsResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 500 {object} map[string]string "Failed to compute analytics"
// @Router /analytics/user/{userId} [get]
func (h *analyticsHandler) getUserAnalytics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userId")
	tenantID := c.Query("tenantId")

	analytics, err := h.analyticsService.GetUserAnalytics(c.Request.Context(), userID, tenantID)
	if err != nil {
		logger.Error("Failed to compute user analytics", slog.String("error", err.Error()), slog.String("user_id", userID))
		respondError(c, err, "Failed to compute analytics")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserAnalyticsResponse(analytics))
}
