package models

// ClaimStatusDimension is the database representation of one Claim_Status row.
type ClaimStatusDimension struct {
	RNo         int
	Description string
}

// ClaimTypeDimension is the database representation of one Claim_Type row.
type ClaimTypeDimension struct {
	RNo         int
	Description string
}

// UserApproverMapping is the database representation of one User_Approver_Map row.
type UserApproverMapping struct {
	ApproverID string
	UserIDs    []string
}
