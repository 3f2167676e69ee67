package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"classfinder/internal/app/models"
)

// Querier is the subset of pgx operations shared by *pgxpool.Pool and pgx.Tx.
// Repositories are built over it so the offline loader can run them inside a
// single transaction while the HTTP path uses the pool directly.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	BuildingRepository *BuildingRepository
	RoomRepository     *RoomRepository
	ClassRepository    *ClassRepository
}

// NewRepositories initializes all repositories over the connection pool
func NewRepositories(db *pgxpool.Pool, registry *models.TermRegistry) *Repositories {
	return &Repositories{
		BuildingRepository: NewBuildingRepository(db),
		RoomRepository:     NewRoomRepository(db),
		ClassRepository:    NewClassRepository(db, registry),
	}
}
