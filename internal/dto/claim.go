package dto

import (
	"time"

	"github.com/expenza/claims_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClaimRequest defines the payload for submitting a new claim.
// The receipt travels as base64 text on this boundary; it is decoded to raw
// bytes before anything touches the store.
type CreateClaimRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Type        int             `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	UserID      string          `json:"userID" binding:"required"`
	TenantID    string          `json:"tenantID"`
	ClaimDate   *time.Time      `json:"claimDate"` // defaults to creation time when omitted

	Receipt         string `json:"receipt" binding:"required"` // base64-encoded payload
	ReceiptMimeType string `json:"receiptMimeType"`
	ReceiptFileName string `json:"receiptFileName"`
}

// UpdateClaimRequest defines the sparse set of owner-editable fields.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateClaimRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	ClaimDate   *time.Time       `json:"claimDate"`
	Type        *int             `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
}

// TransitionClaimRequest asks the lifecycle engine to approve or reject a claim.
type TransitionClaimRequest struct {
	Action   string `json:"action" binding:"required"` // "approve" or "reject"
	UserRole string `json:"userRole" binding:"required"`
	UserID   string `json:"userID" binding:"required"`
}

// ListClaimsParams defines query parameters for listing a user's own claims.
type ListClaimsParams struct {
	UserID   string `form:"userId" binding:"required"`
	TenantID string `form:"tenantId"`
	Statuses []int  `form:"status"`
}

// ListForApprovalParams defines query parameters for the reviewer claim list.
type ListForApprovalParams struct {
	UserID   string `form:"userId" binding:"required"`
	Role     string `form:"role" binding:"required"`
	TenantID string `form:"tenantId"`
}

// ClaimResponse is the claim projection returned by every list/get path.
// The receipt binary payload is never part of it.
type ClaimResponse struct {
	ClaimID           string          `json:"claimID"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	Type              int             `json:"type"`
	Status            int             `json:"status"`
	StatusDescription string          `json:"statusDescription"`
	TypeDescription   string          `json:"typeDescription"`
	UserID            string          `json:"userID"`
	TenantID          string          `json:"tenantID,omitempty"`
	ClaimCreationDate time.Time       `json:"claimCreationDate"`
	ClaimDate         time.Time       `json:"claimDate"`

	HasReceipt      bool   `json:"hasReceipt"`
	ReceiptMimeType string `json:"receiptMimeType,omitempty"`
	ReceiptFileName string `json:"receiptFileName,omitempty"`

	ApproverID           string     `json:"approverID,omitempty"`
	ApprovedByApproverAt *time.Time `json:"approvedByApproverAt,omitempty"`
	RejectedByApproverAt *time.Time `json:"rejectedByApproverAt,omitempty"`
	AdminID              string     `json:"adminID,omitempty"`
	ApprovedByAdminAt    *time.Time `json:"approvedByAdminAt,omitempty"`
	RejectedByAdminAt    *time.Time `json:"rejectedByAdminAt,omitempty"`
	RejectedBy           string     `json:"rejectedBy,omitempty"`
	UpdatedAt            *time.Time `json:"updatedAt,omitempty"`
}

// CreateClaimResponse wraps the newly persisted claim.
type CreateClaimResponse struct {
	Message string        `json:"message"`
	ClaimID string        `json:"claimId"`
	Claim   ClaimResponse `json:"claim"`
}

// UpdateClaimResponse reports the result of a sparse update.
type UpdateClaimResponse struct {
	Message       string `json:"message"`
	ModifiedCount int64  `json:"modifiedCount"`
}

// DeleteClaimResponse reports the result of a deletion.
type DeleteClaimResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// TransitionClaimResponse reports a completed lifecycle transition.
type TransitionClaimResponse struct {
	Message       string `json:"message"`
	OldStatus     int    `json:"oldStatus"`
	NewStatus     int    `json:"newStatus"`
	ModifiedCount int64  `json:"modifiedCount"`
}

// ReceiptResponse carries the receipt back as base64 for JSON clients.
type ReceiptResponse struct {
	ClaimID  string `json:"claimID"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
	Data     string `json:"data"` // base64-encoded payload
}

// ListClaimsResponse wraps the list of claims.
type ListClaimsResponse struct {
	Claims []ClaimResponse `json:"claims"`
}

// ToClaimResponse converts an enriched domain claim to its response DTO.
func ToClaimResponse(c *domain.EnrichedClaim) ClaimResponse {
	return ClaimResponse{
		ClaimID:           c.ClaimID,
		Title:             c.Title,
		Description:       c.Description,
		Amount:            c.Amount,
		Type:              c.Type,
		Status:            int(c.Status),
		StatusDescription: c.StatusDescription,
		TypeDescription:   c.TypeDescription,
		UserID:            c.UserID,
		TenantID:          c.TenantID,
		ClaimCreationDate: c.ClaimCreationDate,
		ClaimDate:         c.ClaimDate,

		HasReceipt:      c.HasReceipt,
		ReceiptMimeType: c.ReceiptMimeType,
		ReceiptFileName: c.ReceiptFileName,

		ApproverID:           c.ApproverID,
		ApprovedByApproverAt: c.ApprovedByApproverAt,
		RejectedByApproverAt: c.RejectedByApproverAt,
		AdminID:              c.AdminID,
		ApprovedByAdminAt:    c.ApprovedByAdminAt,
		RejectedByAdminAt:    c.RejectedByAdminAt,
		RejectedBy:           c.RejectedBy,
		UpdatedAt:            c.UpdatedAt,
	}
}

// ToListClaimsResponse converts a slice of enriched claims to the list DTO.
func ToListClaimsResponse(claims []domain.EnrichedClaim) ListClaimsResponse {
	responses := make([]ClaimResponse, len(claims))
	for i := range claims {
		responses[i] = ToClaimResponse(&claims[i])
	}
	return ListClaimsResponse{Claims: responses}
}
