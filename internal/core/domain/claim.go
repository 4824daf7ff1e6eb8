package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClaimStatus is the closed set of lifecycle states a claim can be in.
// The numeric codes match the Claim_Status dimension rows.
type ClaimStatus int

const (
	StatusApprovedLevel1     ClaimStatus = 1 // Approved by first-tier approver
	StatusPending            ClaimStatus = 2 // Initial state for every new claim
	StatusRejectedByApprover ClaimStatus = 3
	StatusRejectedByAdmin    ClaimStatus = 4
	StatusApprovedFinal      ClaimStatus = 5 // Second-tier approval, claim is payable
)

// PendingStatuses is the set of statuses still awaiting a final decision.
var PendingStatuses = []ClaimStatus{StatusApprovedLevel1, StatusPending}

// RejectedStatuses is the set of statuses a reviewer has rejected.
var RejectedStatuses = []ClaimStatus{StatusRejectedByApprover, StatusRejectedByAdmin}

// Role identifies the reviewer tier acting on a claim.
type Role string

const (
	RoleApprover Role = "Approver"
	RoleAdmin    Role = "Admin"
)

// ParseRole maps a caller-supplied role string onto the closed Role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleApprover:
		return RoleApprover, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// MaxReceiptSize caps the decoded receipt payload at 10 MiB.
const MaxReceiptSize = 10 * 1024 * 1024

// Claim represents one reimbursement request.
// The receipt binary payload is never carried here; list and get paths only
// see its metadata. The bytes travel through the Receipt type.
type Claim struct {
	ClaimID     string          `json:"claimID"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        int             `json:"type"` // R_NO reference into the Claim_Type dimension
	Status      ClaimStatus     `json:"status"`
	UserID      string          `json:"userID"`
	TenantID    string          `json:"tenantID,omitempty"`

	ClaimCreationDate time.Time `json:"claimCreationDate"`
	ClaimDate         time.Time `json:"claimDate"`

	// Receipt metadata only; HasReceipt is derived from the stored payload.
	HasReceipt        bool       `json:"hasReceipt"`
	ReceiptMimeType   string     `json:"receiptMimeType,omitempty"`
	ReceiptFileName   string     `json:"receiptFileName,omitempty"`
	ReceiptSize       int64      `json:"receiptSize,omitempty"`
	ReceiptUploadedAt *time.Time `json:"receiptUploadedAt,omitempty"`

	// Approval audit trail, appended as transitions occur.
	ApproverID           string     `json:"approverID,omitempty"`
	ApprovedByApproverAt *time.Time `json:"approvedByApproverAt,omitempty"`
	RejectedByApproverAt *time.Time `json:"rejectedByApproverAt,omitempty"`
	AdminID              string     `json:"adminID,omitempty"`
	ApprovedByAdminAt    *time.Time `json:"approvedByAdminAt,omitempty"`
	RejectedByAdminAt    *time.Time `json:"rejectedByAdminAt,omitempty"`
	RejectedBy           string     `json:"rejectedBy,omitempty"`
	UpdatedAt            *time.Time `json:"updatedAt,omitempty"`
}

// Receipt carries the binary payload for a single claim's receipt.
type Receipt struct {
	ClaimID  string `json:"claimID"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Data     []byte `json:"-"`
}

// EnrichedClaim decorates a claim with the human-readable dimension labels.
type EnrichedClaim struct {
	Claim
	StatusDescription string `json:"statusDescription"`
	TypeDescription   string `json:"typeDescription"`
}

// ClaimFilter is a conjunction of optional criteria for listing claims.
// UserID and UserIDs are mutually exclusive; UserIDs supports the
// approver visibility filter (claims of every user under an approver).
type ClaimFilter struct {
	UserID   string
	UserIDs  []string
	TenantID string
	Statuses []ClaimStatus
}

// ClaimUpdate is the sparse set of owner-editable fields. Nil means "leave unchanged".
type ClaimUpdate struct {
	Title       *string
	Description *string
	ClaimDate   *time.Time
	Type        *int
	Amount      *decimal.Decimal
	UpdatedAt   time.Time
}

// Empty reports whether the update would change nothing besides the timestamp.
func (u ClaimUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.ClaimDate == nil && u.Type == nil && u.Amount == nil
}
