package handlers

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/expenza/claims_management_app/internal/core/domain"
	portssvc "github.com/expenza/claims_management_app/internal/core/ports/services"
	"github.com/expenza/claims_management_app/internal/dto"
	"github.com/expenza/claims_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// claimHandler handles HTTP requests related to claims.
type claimHandler struct {
	claimService portssvc.ClaimSvcFacade
}

// newClaimHandler creates a new claimHandler.
func newClaimHandler(cs portssvc.ClaimSvcFacade) *claimHandler {
	return &claimHandler{
		claimService: cs,
	}
}

// RegisterClaimRoutes registers all claim-related routes.
func RegisterClaimRoutes(rg *gin.RouterGroup, claimService portssvc.ClaimSvcFacade) {
	h := newClaimHandler(claimService)

	claims := rg.Group("/claims")
	{
		claims.POST("", h.createClaim)
		claims.GET("", h.listClaims)
		claims.GET("/for-approval", h.listClaimsForApproval)
		claims.GET("/:id", h.getClaim)
		claims.PATCH("/:id", h.updateClaim)
		claims.DELETE("/:id", h.deleteClaim)
		claims.PATCH("/:id/status", h.transitionClaimStatus)
		claims.GET("/:id/receipt", h.getReceipt)
		claims.GET("/:id/receipt/download", h.downloadReceipt)
	}
}

// createClaim godoc
// @Summary Submit a new claim
// @Description Creates a new reimbursement claim in the Pending state, receipt included as base64
// @Tags claims
// @Accept  json
// @Produce  json
// @Param   claim body dto.CreateClaimRequest true "Claim details"
// @Success 201 {object} dto.CreateClaimResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create claim"
// @Router /claims [post]
func (h *claimHandler) createClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create claim request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create claim", slog.String("user_id", req.UserID), slog.String("title", req.Title))

	createdClaim, err := h.claimService.CreateClaim(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create claim in service", slog.String("error", err.Error()))
		respondError(c, err, "Failed to create claim")
		return
	}

	logger.Info("Claim created successfully", slog.String("claim_id", createdClaim.ClaimID))
	enriched := domain.EnrichedClaim{Claim: *createdClaim}
	c.JSON(http.StatusCreated, dto.CreateClaimResponse{
		Message: "Claim created successfully",
		ClaimID: createdClaim.ClaimID,
		Claim:   dto.ToClaimResponse(&enriched),
	})
}

// listClaims godoc
// @Summary List a user's claims
// @Description Retrieves the claims belonging to a user, optionally filtered by status
// @Tags claims
// @Produce  json
// @Param   userId query string true "Owner user ID"
// @Param   tenantId query string false "Tenant ID"
// @Param   status query []int false "Status filter, repeatable"
// @Success 200 {object} dto.ListClaimsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to list claims"
// @Router /claims [get]
func (h *claimHandler) listClaims(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListClaimsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for list claims request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	claims, err := h.claimService.ListClaimsForUser(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list claims in service", slog.String("error", err.Error()), slog.String("user_id", params.UserID))
		respondError(c, err, "Failed to list claims")
		return
	}

	c.JSON(http.StatusOK, dto.ToListClaimsResponse(claims))
}

// listClaimsForApproval godoc
// @Summary List claims awaiting review
// @Description Retrieves the claims a reviewer can act on: mapped users' claims for an Approver, all claims for an Admin
// @Tags claims
// @Produce  json
// @Param   userId query string true "Reviewer user ID"
// @Param   role query string true "Reviewer role (Approver or Admin)"
// @Param   tenantId query string false "Tenant ID"
// @Success 200 {object} dto.ListClaimsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Unknown role"
// @Failure 500 {object} map[string]string "Failed to list claims"
// @Router /claims/for-approval [get]
func (h *claimHandler) listClaimsForApproval(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListForApprovalParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for approval list request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	claims, err := h.claimService.ListClaimsForApproval(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list claims for approval in service", slog.String("error", err.Error()), slog.String("user_id", params.UserID), slog.String("role", params.Role))
		respondError(c, err, "Failed to list claims for approval")
		return
	}

	c.JSON(http.StatusOK, dto.ToListClaimsResponse(claims))
}

// getClaim godoc
// @Summary Get a claim by ID
// @Description Retrieves a single claim with its status and type descriptions
// @Tags claims
// @Produce  json
// @Param   id path string true "Claim ID"
// @Success 200 {object} dto.ClaimResponse
// @Failure 400 {object} map[string]string "Invalid claim ID"
// @Failure 404 {object} map[string]string "Claim not found"
// @Failure 500 {object} map[string]string "Failed to retrieve claim"
// @Router /claims/{id} [get]
func (h *claimHandler) getClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	claimID := c.Param("id")

	claim, err := h.claimService.GetClaimByID(c.Request.Context(), claimID)
	if err != nil {
		logger.Warn("Failed to get claim", slog.String("error", err.Error()), slog.String("claim_id", claimID))
		respondError(c, err, "Failed to retrieve claim")
		return
	}

	c.JSON(http.StatusOK, dto.ToClaimResponse(claim))
}

// updateClaim godoc
// @Summary Update a claim
// @Description Applies a sparse update to the owner-editable fields of a claim
// @Tags claims
// @Accept  json
// @Produce  json
// @Param   id path string true "Claim ID"
// @Param   claim body dto.UpdateClaimRequest true "Fields to update"
// @Success 200 {object} dto.UpdateClaimResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Claim not found"
// @Failure 500 {object} map[string]string "Failed to update claim"
// @Router /claims/{id} [patch]
func (h *claimHandler) updateClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	claimID := c.Param("id")

	var req dto.UpdateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for update claim request", slog.String("error", err.Error()), slog.String("claim_id", claimID))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	modified, err := h.claimService.UpdateClaim(c.Request.Context(), claimID, req)
	if err != nil {
		logger.Error("Failed to update claim in service", slog.String("error", err.Error()), slog.String("claim_id", claimID))
		respondError(c, err, "Failed to update claim")
		return
	}

	logger.Info("Claim updated successfully", slog.String("claim_id", claimID), slog.Int64("modified_count", modified))
	c.JSON(http.StatusOK, dto.UpdateClaimResponse{
		Message:       "Claim updated successfully",
		ModifiedCount: modified,
	})
}

// deleteClaim godoc
// @Summary Delete a claim
// @Description Removes a claim permanently
// @Tags claims
// @Produce  json
// @Param   id path string true "Claim ID"
// @Success 200 {object} dto.DeleteClaimResponse
// @Failure 400 {object} map[string]string "Invalid claim ID"
// @Failure 404 {object} map[string]string "Claim not found"
// @Failure 500 {object} map[string]string "Failed to delete claim"
// @Router /claims/{id} [delete]
func (h *claimHandler) deleteClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	claimID := c.Param("id")

	deleted, err := h.claimService.DeleteClaim(c.Request.Context(), claimID)
	if err != nil {
		logger.Error("Failed to delete claim in service", slog.String("error", err.Error()), slog.String("claim_id", claimID))
		respondError(c, err, "Failed to delete claim")
		return
	}

	logger.Info("Claim deleted successfully", slog.String("claim_id", claimID))
	c.JSON(http.StatusOK, dto.DeleteClaimResponse{
		Message:      "Claim deleted successfully",
		DeletedCount: deleted,
	})
}

// transitionClaimStatus godoc
// @Summary Approve or reject a claim
// @Description Runs the role-gated lifecycle transition for a claim
// @Tags claims
// @Accept  json
// @Produce  json
// @Param   id path string true "Claim ID"
// @Param   transition body dto.TransitionClaimRequest true "Transition details"
// @Success 200 {object} dto.TransitionClaimResponse
// @Failure 400 {object} map[string]string "Invalid input or disallowed transition"
// @Failure 403 {object} map[string]string "Unknown role"
// @Failure 404 {object} map[string]string "Claim not found"
// @Failure 409 {object} map[string]string "Claim changed concurrently"
// @Failure 500 {object} map[string]string "Failed to transition claim"
// @Router /claims/{id}/status [patch]
func (h *claimHandler) transitionClaimStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	claimID := c.Param("id")

	var req dto.TransitionClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for transition request", slog.String("error", err.Error()), slog.String("claim_id", claimID))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to transition claim",
		slog.String("claim_id", claimID),
		slog.String("action", req.Action),
		slog.String("role", req.UserRole),
		slog.String("actor_id", req.UserID))

	result, err := h.claimService.TransitionClaimStatus(c.Request.Context(), claimID, req)
	if err != nil {
		logger.Warn("Failed to transition claim", slog.String("error", err.Error()), slog.String("claim_id", claimID))
		respondError(c, err, "Failed to transition claim")
		return
	}

	logger.Info("Claim transitioned successfully",
		slog.String("claim_id", claimID),
		slog.Int("old_status", int(result.OldStatus)),
		slog.Int("new_status", int(result.NewStatus)))
	verb := "approved"
	if result.NewStatus == domain.StatusRejectedByApprover || result.NewStatus == domain.StatusRejectedByAdmin {
		verb = "rejected"
	}
	c.JSON(http.StatusOK, dto.TransitionClaimResponse{
		Message:       "Claim " + verb + " successfully",
		OldStatus:     int(result.OldStatus),
		NewStatus:     int(result.NewStatus),
		ModifiedCount: result.ModifiedCount,
	})
}

// getReceipt godoc
// @Summary Get a claim's receipt as JSON
// @Description Retrieves the receipt payload base64-encoded along with its metadata
// @Tags claims
// @Produce  json
// @Param   id path string true "Claim ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} map[string]string "Invalid claim ID"
// @Failure 404 {object} map[string]string "Receipt not found"
// @Failure 500 {object} map[string]string "Failed to retrieve receipt"
// @Router /claims/{id}/receipt [get]
func (h *claimHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	claimID := c.Param("id")

	receipt, err := h.claimService.GetReceipt(c.Request.Context(), claimID)
	if err != nil {
		logger.Warn("Failed to get receipt", slog.String("error", err.Error()), slog.String("claim_id", claimID))
		respondError(c, err, "Failed to retrieve receipt")
		return
	}

	c.JSON(http.StatusOK, dto.ReceiptResponse{
		ClaimID:  receipt.ClaimID,
		FileName: receipt.FileName,
		MimeType: receipt.MimeType,
		Size:     int64(len(receipt.Data)),
		Data:     base64.StdEncoding.EncodeToString(receipt.Data),
	})
}

// downloadReceipt godoc
// @Summary Download a claim's receipt
// @Description Streams the raw receipt bytes with the stored content type and filename
// @Tags claims
// @Produce  octet-stream
// @Param   id path string true "Claim ID"
// @Success 200 {file} binary "Receipt payload"
// @Failure 400 {object} map[string]string "Invalid claim ID"
// @Failure 404 {object} map[string]string "Receipt not found"
// @Failure 500 {object} map[string]string "Failed to retrieve receipt"
// @Router /claims/{id}/receipt/download [get]
func (h *claimHandler) downloadReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	claimID := c.Param("id")

	receipt, err := h.claimService.GetReceipt(c.Request.Context(), claimID)
	if err != nil {
		logger.Warn("Failed to get receipt for download", slog.String("error", err.Error()), slog.String("claim_id", claimID))
		respondError(c, err, "Failed to retrieve receipt")
		return
	}

	fileName := receipt.FileName
	if fileName == "" {
		fileName = claimID
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, receipt.MimeType, receipt.Data)
}
