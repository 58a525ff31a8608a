package sqlstore

import (
	"context"
	"database/sql"

	"rental-backend/internal/repository"
)

// Store bundles the repositories over one connection pool.
type Store struct {
	db      *sql.DB
	dialect Dialect

	Users      repository.UserRepository
	Rentals    repository.RentalRepository
	Catalog    repository.CatalogRepository
	PriceLists repository.PriceListRepository
	Links      repository.PriceListLinkRepository
	Schedule   repository.ScheduleRepository
}

func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{
		db:         db,
		dialect:    dialect,
		Users:      NewUserRepository(db, dialect),
		Rentals:    NewRentalRepository(db, dialect),
		Catalog:    NewCatalogRepository(db, dialect),
		PriceLists: NewPriceListRepository(db, dialect),
		Links:      NewPriceListLinkRepository(db, dialect),
		Schedule:   NewScheduleRepository(db),
	}
}

func (s *Store) Dialect() Dialect { return s.dialect }

// Ping runs SELECT 1 against the pool.
func (s *Store) Ping(ctx context.Context) error {
	var one int
	return s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one)
}
