package repositories

import (
	"context"
	"errors"

	"equipment-tracker/internal/entities"
	apperrors "equipment-tracker/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) error
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `
		SELECT id, fio, email, password_hash, created_at
		FROM users
		WHERE email = $1`

	var u entities.User
	err := r.storage.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Fio, &u.Email, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	query := `
		INSERT INTO users (fio, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET fio = EXCLUDED.fio
		RETURNING id, created_at`

	return r.storage.QueryRow(ctx, query, user.Fio, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
}
