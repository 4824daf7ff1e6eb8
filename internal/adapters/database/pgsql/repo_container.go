package pgsql

import (
	portsrepo "github.com/expenza/claims_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClaimRepo:     newPgxClaimRepository(dbPool),
		DimensionRepo: newPgxDimensionRepository(dbPool),
	}
}
