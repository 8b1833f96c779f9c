package readstore

import (
	"context"

	"github.com/google/uuid"

	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/infra/db"
	"tarumbeta-server/internal/pkg/pgconv"
	"tarumbeta-server/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, full_name, role, is_active
		FROM users
		WHERE id = $1`

	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.FullName, &view.Role, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, full_name, role, is_active, password_hash
		FROM users
		WHERE email = $1`

	var view queries.AuthorizedUserView
	var passwordHash string
	err := r.db.QueryRow(ctx, query, email).Scan(
		&view.ID, &view.Email, &view.FullName, &view.Role, &view.IsActive, &passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, passwordHash, nil
}
