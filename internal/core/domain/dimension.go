package domain

// ClaimStatusDimension is one row of the read-only Claim_Status reference table.
type ClaimStatusDimension struct {
	RNo         int    `json:"rNo"`
	Description string `json:"description"`
}

// ClaimTypeDimension is one row of the read-only Claim_Type reference table.
type ClaimTypeDimension struct {
	RNo         int    `json:"rNo"`
	Description string `json:"description"`
}

// UserApproverMapping defines which users fall under an approver's purview.
type UserApproverMapping struct {
	ApproverID string   `json:"approverID"`
	UserIDs    []string `json:"userIDs"`
}

// StatusDescriptions builds the code-to-label lookup for claim statuses.
func StatusDescriptions(rows []ClaimStatusDimension) map[int]string {
	m := make(map[int]string, len(rows))
	for _, r := range rows {
		m[r.RNo] = r.Description
	}
	return m
}

// TypeDescriptions builds the code-to-label lookup for claim types.
func TypeDescriptions(rows []ClaimTypeDimension) map[int]string {
	m := make(map[int]string, len(rows))
	for _, r := range rows {
		m[r.RNo] = r.Description
	}
	return m
}
