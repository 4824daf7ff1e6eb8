package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/expenza/claims_management_app/internal/apperrors"
	"github.com/expenza/claims_management_app/internal/core/domain"
	portsrepo "github.com/expenza/claims_management_app/internal/core/ports/repositories"
	"github.com/expenza/claims_management_app/internal/models"
	"github.com/expenza/claims_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClaimRepository struct {
	db *pgxpool.Pool
}

func newPgxClaimRepository(db *pgxpool.Pool) portsrepo.ClaimRepositoryFacade {
	return &PgxClaimRepository{db: db}
}

// Ensure PgxClaimRepository implements portsrepo.ClaimRepositoryFacade
var _ portsrepo.ClaimRepositoryFacade = (*PgxClaimRepository)(nil)

// claimColumns is the default claim projection. The receipt payload is
// deliberately absent; only its metadata and a derived has_receipt flag are
// ever part of list/get results.
const claimColumns = `
	claim_id, title, description, amount, type, status, user_id, tenant_id,
	claim_creation_date, claim_date,
	octet_length(receipt) > 0 AS has_receipt,
	receipt_mime_type, receipt_file_name, receipt_size, receipt_uploaded_at,
	approver_id, approved_by_approver_at, rejected_by_approver_at,
	admin_id, approved_by_admin_at, rejected_by_admin_at,
	rejected_by, updated_at`

func scanClaim(row pgx.Row) (*models.Claim, error) {
	var m models.Claim
	err := row.Scan(
		&m.ClaimID,
		&m.Title,
		&m.Description,
		&m.Amount,
		&m.Type,
		&m.Status,
		&m.UserID,
		&m.TenantID,
		&m.ClaimCreationDate,
		&m.ClaimDate,
		&m.HasReceipt,
		&m.ReceiptMimeType,
		&m.ReceiptFileName,
		&m.ReceiptSize,
		&m.ReceiptUploadedAt,
		&m.ApproverID,
		&m.ApprovedByApproverAt,
		&m.RejectedByApproverAt,
		&m.AdminID,
		&m.ApprovedByAdminAt,
		&m.RejectedByAdminAt,
		&m.RejectedBy,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxClaimRepository) SaveClaim(ctx context.Context, claim domain.Claim, receipt domain.Receipt) error {
	m := mapping.ToModelClaim(claim)
	query := `
        INSERT INTO claims (
            claim_id, title, description, amount, type, status, user_id, tenant_id,
            claim_creation_date, claim_date,
            receipt, receipt_mime_type, receipt_file_name, receipt_size, receipt_uploaded_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	_, err := r.db.Exec(ctx, query,
		m.ClaimID,
		m.Title,
		m.Description,
		m.Amount,
		m.Type,
		m.Status,
		m.UserID,
		m.TenantID,
		m.ClaimCreationDate,
		m.ClaimDate,
		receipt.Data,
		m.ReceiptMimeType,
		m.ReceiptFileName,
		m.ReceiptSize,
		m.ReceiptUploadedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save claim: %w", err)
	}
	return nil
}

func (r *PgxClaimRepository) FindClaimByID(ctx context.Context, claimID string) (*domain.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE claim_id = $1;`
	m, err := scanClaim(r.db.QueryRow(ctx, query, claimID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find claim by ID %s: %w", claimID, err)
	}
	d := mapping.ToDomainClaim(*m)
	return &d, nil
}

func (r *PgxClaimRepository) FindClaims(ctx context.Context, filter domain.ClaimFilter) ([]domain.Claim, error) {
	conditions := []string{}
	args := []any{}

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.UserIDs != nil {
		args = append(args, filter.UserIDs)
		conditions = append(conditions, fmt.Sprintf("user_id = ANY($%d)", len(args)))
	}
	if filter.TenantID != "" {
		args = append(args, filter.TenantID)
		conditions = append(conditions, fmt.Sprintf("tenant_id = $%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]int32, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = int32(s)
		}
		args = append(args, statuses)
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", len(args)))
	}

	query := `SELECT ` + claimColumns + ` FROM claims`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY claim_creation_date DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query claims: %w", err)
	}
	defer rows.Close()

	modelClaims := []models.Claim{}
	for rows.Next() {
		m, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan claim row: %w", err)
		}
		modelClaims = append(modelClaims, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating claim rows: %w", rows.Err())
	}

	return mapping.ToDomainClaimSlice(modelClaims), nil
}

func (r *PgxClaimRepository) FindReceiptByClaimID(ctx context.Context, claimID string) (*domain.Receipt, error) {
	query := `
        SELECT receipt, receipt_mime_type, receipt_file_name
        FROM claims
        WHERE claim_id = $1;
    `
	var data []byte
	var mimeType, fileName *string
	err := r.db.QueryRow(ctx, query, claimID).Scan(&data, &mimeType, &fileName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt for claim %s: %w", claimID, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("claim %s has no receipt: %w", claimID, apperrors.ErrNotFound)
	}

	receipt := domain.Receipt{ClaimID: claimID, Data: data}
	if mimeType != nil {
		receipt.MimeType = *mimeType
	}
	if fileName != nil {
		receipt.FileName = *fileName
	}
	return &receipt, nil
}

func (r *PgxClaimRepository) UpdateClaimFields(ctx context.Context, claimID string, update domain.ClaimUpdate) (int64, error) {
	query := `
        UPDATE claims
        SET title       = COALESCE($2, title),
            description = COALESCE($3, description),
            claim_date  = COALESCE($4, claim_date),
            type        = COALESCE($5, type),
            amount      = COALESCE($6, amount),
            updated_at  = $7
        WHERE claim_id = $1;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		claimID,
		update.Title,
		update.Description,
		update.ClaimDate,
		update.Type,
		update.Amount,
		update.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to execute update claim query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, fmt.Errorf("claim %s not found: %w", claimID, apperrors.ErrNotFound)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *PgxClaimRepository) DeleteClaim(ctx context.Context, claimID string) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM claims WHERE claim_id = $1;`, claimID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete claim: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return 0, fmt.Errorf("claim %s not found: %w", claimID, apperrors.ErrNotFound)
	}
	return cmdTag.RowsAffected(), nil
}

// TransitionClaimStatus is the lifecycle engine's single decision point: the
// status change and audit stamps apply only when the row still holds the
// status the caller validated against. A zero matched count is reported as-is
// so the service can distinguish a vanished claim from a lost race.
func (r *PgxClaimRepository) TransitionClaimStatus(ctx context.Context, claimID string, expectedCurrent domain.ClaimStatus, patch domain.TransitionPatch) (int64, error) {
	query := `
        UPDATE claims
        SET status                  = $2,
            approver_id             = COALESCE($3, approver_id),
            approved_by_approver_at = COALESCE($4, approved_by_approver_at),
            rejected_by_approver_at = COALESCE($5, rejected_by_approver_at),
            admin_id                = COALESCE($6, admin_id),
            approved_by_admin_at    = COALESCE($7, approved_by_admin_at),
            rejected_by_admin_at    = COALESCE($8, rejected_by_admin_at),
            rejected_by             = COALESCE($9, rejected_by),
            updated_at              = $10
        WHERE claim_id = $1 AND status = $11;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		claimID,
		int(patch.NewStatus),
		patch.ApproverID,
		patch.ApprovedByApproverAt,
		patch.RejectedByApproverAt,
		patch.AdminID,
		patch.ApprovedByAdminAt,
		patch.RejectedByAdminAt,
		patch.RejectedBy,
		patch.UpdatedAt,
		int(expectedCurrent),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to execute transition query: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
