package domain

import (
	"fmt"
	"time"

	"github.com/expenza/claims_management_app/internal/apperrors"
)

// TransitionAction is the action class a reviewer requests on a claim.
type TransitionAction string

const (
	ActionApprove TransitionAction = "approve"
	ActionReject  TransitionAction = "reject"
)

// TransitionPatch is the outcome of a validated transition: the new status
// plus the audit fields to stamp. Nil pointer fields are left untouched by
// the store.
type TransitionPatch struct {
	NewStatus ClaimStatus

	ApproverID           *string
	ApprovedByApproverAt *time.Time
	RejectedByApproverAt *time.Time
	AdminID              *string
	ApprovedByAdminAt    *time.Time
	RejectedByAdminAt    *time.Time
	RejectedBy           *string
	UpdatedAt            time.Time
}

// TransitionResult reports the outcome of a successful transition.
type TransitionResult struct {
	OldStatus     ClaimStatus `json:"oldStatus"`
	NewStatus     ClaimStatus `json:"newStatus"`
	ModifiedCount int64       `json:"modifiedCount"`
}

// transitionRule is one row of the lifecycle transition table.
type transitionRule struct {
	allowedFrom []ClaimStatus
	newStatus   ClaimStatus
	denial      string // message when the current status is not in allowedFrom
}

var transitionTable = map[Role]map[TransitionAction]transitionRule{
	RoleApprover: {
		ActionApprove: {
			allowedFrom: []ClaimStatus{StatusPending, StatusRejectedByApprover, StatusRejectedByAdmin},
			newStatus:   StatusApprovedLevel1,
			denial:      "approver can only approve pending, self-rejected, or admin-rejected claims",
		},
		ActionReject: {
			allowedFrom: []ClaimStatus{StatusPending, StatusApprovedLevel1},
			newStatus:   StatusRejectedByApprover,
			denial:      "approver can only reject pending or their own approved claims",
		},
	},
	RoleAdmin: {
		ActionApprove: {
			allowedFrom: []ClaimStatus{StatusApprovedLevel1},
			newStatus:   StatusApprovedFinal,
			denial:      "admin can only approve level 1 approved claims",
		},
		ActionReject: {
			allowedFrom: []ClaimStatus{StatusApprovedLevel1},
			newStatus:   StatusRejectedByAdmin,
			denial:      "admin can only reject level 1 approved claims",
		},
	},
}

// PlanTransition validates a (role, action, current status) triple against
// the lifecycle transition table and returns the patch to apply. It is a
// pure function: the caller is responsible for applying the patch with a
// conditional update keyed on the same current status it passed in here.
func PlanTransition(roleStr string, actionStr string, current ClaimStatus, actorID string, now time.Time) (TransitionPatch, error) {
	role, ok := ParseRole(roleStr)
	if !ok {
		return TransitionPatch{}, fmt.Errorf("role %q cannot approve or reject claims: %w", roleStr, apperrors.ErrForbidden)
	}

	action := TransitionAction(actionStr)
	rule, ok := transitionTable[role][action]
	if !ok {
		return TransitionPatch{}, fmt.Errorf("unknown action %q: %w", actionStr, apperrors.ErrBadRequest)
	}

	allowed := false
	for _, s := range rule.allowedFrom {
		if s == current {
			allowed = true
			break
		}
	}
	if !allowed {
		return TransitionPatch{}, fmt.Errorf("%s: %w", rule.denial, apperrors.ErrInvalidTransition)
	}

	patch := TransitionPatch{
		NewStatus: rule.newStatus,
		UpdatedAt: now,
	}
	switch {
	case role == RoleApprover && action == ActionApprove:
		patch.ApproverID = &actorID
		patch.ApprovedByApproverAt = &now
	case role == RoleApprover && action == ActionReject:
		patch.RejectedByApproverAt = &now
		patch.RejectedBy = &actorID
	case role == RoleAdmin && action == ActionApprove:
		patch.AdminID = &actorID
		patch.ApprovedByAdminAt = &now
	case role == RoleAdmin && action == ActionReject:
		patch.RejectedByAdminAt = &now
		patch.RejectedBy = &actorID
	}
	return patch, nil
}
