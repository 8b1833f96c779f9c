package repository

import (
	"context"

	"tarumbeta-server/internal/domain/user"
	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, full_name, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.FullName(), u.Role().String(), u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.ClassifyPgErr("failed to create user", err)
	}

	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	const query = `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

	if _, err := tx.Exec(ctx, query, userID); err != nil {
		return infra.ClassifyPgErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, tx db.DBTX, userID uuid.UUID, role user.Role) error {
	const query = `UPDATE users SET role = $2, updated_at = now() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, userID, role.String())
	if err != nil {
		return infra.ClassifyPgErr("failed to update user role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
