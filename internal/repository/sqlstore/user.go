package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"rental-backend/internal/domain"
	"rental-backend/internal/repository"
)

type userRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewUserRepository(db *sql.DB, dialect Dialect) repository.UserRepository {
	return &userRepository{db: db, dialect: dialect}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	id, err := r.dialect.insert(ctx, r.db, `INSERT INTO users (email, password) VALUES (?, ?)`, u.Email, u.PasswordHash)
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.get(ctx, `SELECT id, email, password, created_at FROM users WHERE id = ?`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, `SELECT id, email, password, created_at FROM users WHERE LOWER(email) = LOWER(?)`, email)
}

func (r *userRepository) get(ctx context.Context, query string, arg any) (*domain.User, error) {
	u := &domain.User{}
	err := r.dialect.queryRow(ctx, r.db, query, arg).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
