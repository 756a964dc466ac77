package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/parishledger/parishledger/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		User:        newPgxUserRepository(dbPool),
		Church:      newPgxChurchRepository(dbPool),
		Branch:      newPgxBranchRepository(dbPool),
		Member:      newPgxMemberRepository(dbPool),
		Category:    newPgxCategoryRepository(dbPool),
		Transaction: newPgxTransactionRepository(dbPool),
		Tithe:       newPgxTitheRepository(dbPool),
	}
}
