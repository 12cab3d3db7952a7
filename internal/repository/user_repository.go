package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ticket-management/internal/domain"
)

// UserRepository resolves users and the designated account manager.
type UserRepository interface {
	FindUser(ctx context.Context, username string) (*domain.User, error)
	AccountManager(ctx context.Context) (*domain.User, error)
	Upsert(ctx context.Context, user domain.User) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) FindUser(ctx context.Context, username string) (*domain.User, error) {
	const query = `
        SELECT username, email, is_account_manager, created_at
        FROM users WHERE username=$1`
	return r.fetchSingle(ctx, query, username)
}

func (r *userRepository) AccountManager(ctx context.Context) (*domain.User, error) {
	const query = `
        SELECT username, email, is_account_manager, created_at
        FROM users WHERE is_account_manager
        ORDER BY created_at, username LIMIT 1`
	return r.fetchSingle(ctx, query)
}

func (r *userRepository) Upsert(ctx context.Context, user domain.User) error {
	const query = `
        INSERT INTO users (username, email, is_account_manager)
        VALUES ($1, $2, $3)
        ON CONFLICT (username) DO UPDATE SET email=EXCLUDED.email, is_account_manager=EXCLUDED.is_account_manager`
	_, err := r.pool.Exec(ctx, query, user.Username, user.Email, user.AccountManager)
	return err
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&user.Username,
		&user.Email,
		&user.AccountManager,
		&user.CreatedAt,
	); err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}
