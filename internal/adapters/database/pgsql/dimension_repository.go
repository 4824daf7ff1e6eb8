package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/expenza/claims_management_app/internal/core/domain"
	portsrepo "github.com/expenza/claims_management_app/internal/core/ports/repositories"
	"github.com/expenza/claims_management_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDimensionRepository struct {
	db *pgxpool.Pool
}

func newPgxDimensionRepository(db *pgxpool.Pool) portsrepo.DimensionRepositoryFacade {
	return &PgxDimensionRepository{db: db}
}

// Ensure PgxDimensionRepository implements portsrepo.DimensionRepositoryFacade
var _ portsrepo.DimensionRepositoryFacade = (*PgxDimensionRepository)(nil)

func (r *PgxDimensionRepository) FindClaimStatuses(ctx context.Context) ([]domain.ClaimStatusDimension, error) {
	rows, err := r.db.Query(ctx, `SELECT r_no, s_desc FROM claim_status ORDER BY r_no;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query claim statuses: %w", err)
	}
	defer rows.Close()

	statuses := []domain.ClaimStatusDimension{}
	for rows.Next() {
		var m models.ClaimStatusDimension
		if err := rows.Scan(&m.RNo, &m.Description); err != nil {
			return nil, fmt.Errorf("failed to scan claim status row: %w", err)
		}
		statuses = append(statuses, domain.ClaimStatusDimension{RNo: m.RNo, Description: m.Description})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating claim status rows: %w", rows.Err())
	}
	return statuses, nil
}

func (r *PgxDimensionRepository) FindClaimTypes(ctx context.Context) ([]domain.ClaimTypeDimension, error) {
	rows, err := r.db.Query(ctx, `SELECT r_no, t_desc FROM claim_type ORDER BY r_no;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query claim types: %w", err)
	}
	defer rows.Close()

	types := []domain.ClaimTypeDimension{}
	for rows.Next() {
		var m models.ClaimTypeDimension
		if err := rows.Scan(&m.RNo, &m.Description); err != nil {
			return nil, fmt.Errorf("failed to scan claim type row: %w", err)
		}
		types = append(types, domain.ClaimTypeDimension{RNo: m.RNo, Description: m.Description})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating claim type rows: %w", rows.Err())
	}
	return types, nil
}

func (r *PgxDimensionRepository) FindApproverMappings(ctx context.Context, approverID string) ([]domain.UserApproverMapping, error) {
	query := `SELECT approver_id, user_ids FROM user_approver_map`
	args := []any{}
	if approverID != "" {
		query += ` WHERE approver_id = $1`
		args = append(args, approverID)
	}
	query += ` ORDER BY approver_id;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query approver mappings: %w", err)
	}
	defer rows.Close()

	mappings := []domain.UserApproverMapping{}
	for rows.Next() {
		var m models.UserApproverMapping
		if err := rows.Scan(&m.ApproverID, &m.UserIDs); err != nil {
			return nil, fmt.Errorf("failed to scan approver mapping row: %w", err)
		}
		mappings = append(mappings, domain.UserApproverMapping{ApproverID: m.ApproverID, UserIDs: m.UserIDs})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating approver mapping rows: %w", rows.Err())
	}
	return mappings, nil
}

// FindUsersUnderApprover returns an empty slice for an unmapped approver,
// matching the visibility contract: no mapping means no visible claims.
func (r *PgxDimensionRepository) FindUsersUnderApprover(ctx context.Context, approverID string) ([]string, error) {
	var userIDs []string
	err := r.db.QueryRow(ctx, `SELECT user_ids FROM user_approver_map WHERE approver_id = $1;`, approverID).Scan(&userIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to find users under approver %s: %w", approverID, err)
	}
	if userIDs == nil {
		userIDs = []string{}
	}
	return userIDs, nil
}
