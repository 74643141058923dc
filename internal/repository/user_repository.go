package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pizzeria-pos/internal/domain/dao"
)

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u dao.User) (dao.User, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, registered_at
	`, u.Email, u.Name, u.PasswordHash).Scan(&u.ID, &u.RegisteredAt)
	if err != nil {
		if isUniqueViolation(err) {
			return dao.User{}, fmt.Errorf("%w: %s", ErrEmailTaken, u.Email)
		}
		return dao.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (dao.User, error) {
	var u dao.User
	err := r.db.QueryRow(ctx, `
		SELECT id, email, name, password_hash, registered_at FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.RegisteredAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return dao.User{}, ErrUserNotFound
	}
	if err != nil {
		return dao.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}
