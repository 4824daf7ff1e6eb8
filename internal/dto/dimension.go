package dto

import (
	"github.com/expenza/claims_management_app/internal/core/domain"
)

// ClaimStatusResponse is one claim status dimension row.
type ClaimStatusResponse struct {
	RNo         int    `json:"rNo"`
	Description string `json:"description"`
}

// ClaimTypeResponse is one claim type dimension row.
type ClaimTypeResponse struct {
	RNo         int    `json:"rNo"`
	Description string `json:"description"`
}

// ApproverMappingResponse is one user-approver mapping row.
type ApproverMappingResponse struct {
	ApproverID string   `json:"approverID"`
	UserIDs    []string `json:"userIDs"`
}

// ListApproverMappingsParams defines query parameters for the mapping list.
type ListApproverMappingsParams struct {
	ApproverID string `form:"approverId"`
}

// ToClaimStatusResponses converts the status dimension rows to DTOs.
func ToClaimStatusResponses(rows []domain.ClaimStatusDimension) []ClaimStatusResponse {
	out := make([]ClaimStatusResponse, len(rows))
	for i, r := range rows {
		out[i] = ClaimStatusResponse{RNo: r.RNo, Description: r.Description}
	}
	return out
}

// ToClaimTypeResponses converts the type dimension rows to DTOs.
func ToClaimTypeResponses(rows []domain.ClaimTypeDimension) []ClaimTypeResponse {
	out := make([]ClaimTypeResponse, len(rows))
	for i, r := range rows {
		out[i] = ClaimTypeResponse{RNo: r.RNo, Description: r.Description}
	}
	return out
}

// ToApproverMappingResponses converts the mapping rows to DTOs.
func ToApproverMappingResponses(rows []domain.UserApproverMapping) []ApproverMappingResponse {
	out := make([]ApproverMappingResponse, len(rows))
	for i, r := range rows {
		out[i] = ApproverMappingResponse{ApproverID: r.ApproverID, UserIDs: r.UserIDs}
	}
	return out
}
