package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/expenza/claims_management_app/internal/core/ports/services"
	"github.com/expenza/claims_management_app/internal/dto"
	"github.com/expenza/claims_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// dimensionHandler handles HTTP requests for the static reference tables.
type dimensionHandler struct {
	dimensionService portssvc.DimensionSvcFacade
}

func newDimensionHandler(ds portssvc.DimensionSvcFacade) *dimensionHandler {
	return &dimensionHandler{
		dimensionService: ds,
	}
}

// registerDimensionRoutes registers the reference table routes.
func registerDimensionRoutes(rg *gin.RouterGroup, dimensionService portssvc.DimensionSvcFacade) {
	h := newDimensionHandler(dimensionService)

	dimensions := rg.Group("/dimensions")
	{
		dimensions.GET("/claim-status", h.listStatuses)
		dimensions.GET("/claim-types", h.listTypes)
		dimensions.GET("/user-approver-map", h.listApproverMappings)
	}
}

// listStatuses godoc
// @Summary List claim statuses
// @Description Retrieves every claim status dimension row
// @Tags dimensions
// @Produce  json
// @Success 200 {array} dto.ClaimStatusResponse
// @Failure 500 {object} map[string]string "Failed to list claim statuses"
// @Router /dimensions/claim-status [get]
func (h *dimensionHandler) listStatuses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	statuses, err := h.dimensionService.ListStatuses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list claim statuses", slog.String("error", err.Error()))
		respondError(c, err, "Failed to list claim statuses")
		return
	}

	c.JSON(http.StatusOK, dto.ToClaimStatusResponses(statuses))
}

// listTypes godoc
// @Summary List claim types
// @Description Retrieves every claim type dimension row
// @Tags dimensions
// @Produce  json
// @Success 200 {array} dto.ClaimTypeResponse
// @Failure 500 {object} map[string]string "Failed to list claim types"
// @Router /dimensions/claim-types [get]
func (h *dimensionHandler) listTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	types, err := h.dimensionService.ListTypes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list claim types", slog.String("error", err.Error()))
		respondError(c, err, "Failed to list claim types")
		return
	}

	c.JSON(http.StatusOK, dto.ToClaimTypeResponses(types))
}

// listApproverMappings godoc
// @Summary List approver mappings
// @Description Retrieves user-approver mappings, optionally filtered to one approver
// @Tags dimensions
// @Produce  json
// @Param   approverId query string false "Approver ID"
// @Success 200 {array} dto.ApproverMappingResponse
// @Failure 500 {object} map[string]string "Failed to list approver mappings"
// @Router /dimensions/user-approver-map [get]
func (h *dimensionHandler) listApproverMappings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListApproverMappingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for approver mappings request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	mappings, err := h.dimensionService.ListApproverMappings(c.Request.Context(), params.ApproverID)
	if err != nil {
		logger.Error("Failed to list approver mappings", slog.String("error", err.Error()))
		respondError(c, err, "Failed to list approver mappings")
		return
	}

	c.JSON(http.StatusOK, dto.ToApproverMappingResponses(mappings))
}
