package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Claim is the database representation of a claim row. Nullable columns map
// to pointers; the receipt payload itself lives in the receipt column and is
// never scanned into this struct.
type Claim struct {
	ClaimID           string
	Title             string
	Description       string
	Amount            decimal.Decimal
	Type              int
	Status            int
	UserID            string
	TenantID          *string
	ClaimCreationDate time.Time
	ClaimDate         time.Time

	HasReceipt        bool
	ReceiptMimeType   *string
	ReceiptFileName   *string
	ReceiptSize       *int64
	ReceiptUploadedAt *time.Time

	ApproverID           *string
	ApprovedByApproverAt *time.Time
	RejectedByApproverAt *time.Time
	AdminID              *string
	ApprovedByAdminAt    *time.Time
	RejectedByAdminAt    *time.Time
	RejectedBy           *string
	UpdatedAt            *time.Time
}
