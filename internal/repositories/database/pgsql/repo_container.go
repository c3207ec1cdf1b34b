package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/prospectr-app/prospectr/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:  NewPgxAccountRepository(dbPool),
		ContactRepo:  NewPgxContactRepository(dbPool),
		ErrorLogRepo: NewPgxErrorLogRepository(dbPool),
		UserRepo:     NewPgxUserRepository(dbPool),
	}
}
