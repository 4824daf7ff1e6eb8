package mapping

import (
	"github.com/expenza/claims_management_app/internal/core/domain"
	"github.com/expenza/claims_management_app/internal/models"
)

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func int64Value(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

// ToDomainClaim converts a database claim row to its domain representation.
func ToDomainClaim(m models.Claim) domain.Claim {
	return domain.Claim{
		ClaimID:           m.ClaimID,
		Title:             m.Title,
		Description:       m.Description,
		Amount:            m.Amount,
		Type:              m.Type,
		Status:            domain.ClaimStatus(m.Status),
		UserID:            m.UserID,
		TenantID:          strValue(m.TenantID),
		ClaimCreationDate: m.ClaimCreationDate,
		ClaimDate:         m.ClaimDate,

		HasReceipt:        m.HasReceipt,
		ReceiptMimeType:   strValue(m.ReceiptMimeType),
		ReceiptFileName:   strValue(m.ReceiptFileName),
		ReceiptSize:       int64Value(m.ReceiptSize),
		ReceiptUploadedAt: m.ReceiptUploadedAt,

		ApproverID:           strValue(m.ApproverID),
		ApprovedByApproverAt: m.ApprovedByApproverAt,
		RejectedByApproverAt: m.RejectedByApproverAt,
		AdminID:              strValue(m.AdminID),
		ApprovedByAdminAt:    m.ApprovedByAdminAt,
		RejectedByAdminAt:    m.RejectedByAdminAt,
		RejectedBy:           strValue(m.RejectedBy),
		UpdatedAt:            m.UpdatedAt,
	}
}

// ToDomainClaimSlice converts a slice of database claim rows.
func ToDomainClaimSlice(ms []models.Claim) []domain.Claim {
	ds := make([]domain.Claim, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClaim(m)
	}
	return ds
}

// ToModelClaim converts a domain claim to its database representation.
func ToModelClaim(d domain.Claim) models.Claim {
	var size *int64
	if d.ReceiptSize > 0 {
		s := d.ReceiptSize
		size = &s
	}
	return models.Claim{
		ClaimID:           d.ClaimID,
		Title:             d.Title,
		Description:       d.Description,
		Amount:            d.Amount,
		Type:              d.Type,
		Status:            int(d.Status),
		UserID:            d.UserID,
		TenantID:          strPtr(d.TenantID),
		ClaimCreationDate: d.ClaimCreationDate,
		ClaimDate:         d.ClaimDate,

		HasReceipt:        d.HasReceipt,
		ReceiptMimeType:   strPtr(d.ReceiptMimeType),
		ReceiptFileName:   strPtr(d.ReceiptFileName),
		ReceiptSize:       size,
		ReceiptUploadedAt: d.ReceiptUploadedAt,

		ApproverID:           strPtr(d.ApproverID),
		ApprovedByApproverAt: d.ApprovedByApproverAt,
		RejectedByApproverAt: d.RejectedByApproverAt,
		AdminID:              strPtr(d.AdminID),
		ApprovedByAdminAt:    d.ApprovedByAdminAt,
		RejectedByAdminAt:    d.RejectedByAdminAt,
		RejectedBy:           strPtr(d.RejectedBy),
		UpdatedAt:            d.UpdatedAt,
	}
}
