package readstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/infra/db"
	"tarumbeta-server/internal/pkg/pgconv"
	"tarumbeta-server/internal/usecase/queries"
)

const listingColumns = `
	id, owner_id, name, instrument_type, category, condition, description, location,
	daily_price_cents, weekly_price_cents, monthly_price_cents, is_available,
	created_at, updated_at`

type ListingReadStore struct {
	db db.DBTX
}

func NewListingReadStore(db db.DBTX) *ListingReadStore {
	return &ListingReadStore{db: db}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	query := `SELECT` + listingColumns + ` FROM instrument_listings WHERE id = $1`

	view, err := scanListing(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("instrument listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find instrument listing", err)
	}
	return view, nil
}

func (r *ListingReadStore) ListAvailable(ctx context.Context, filter queries.ListingFilter) ([]*queries.ListingView, error) {
	query := `SELECT` + listingColumns + ` FROM instrument_listings WHERE is_available = TRUE`
	args := []any{}

	if filter.InstrumentType != "" {
		args = append(args, filter.InstrumentType)
		query += fmt.Sprintf(" AND instrument_type = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		query += fmt.Sprintf(" AND location ILIKE $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	return r.list(ctx, query, args...)
}

func (r *ListingReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ListingView, error) {
	query := `SELECT` + listingColumns + ` FROM instrument_listings WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, ownerID)
}

func (r *ListingReadStore) ListPending(ctx context.Context) ([]*queries.ListingView, error) {
	query := `SELECT` + listingColumns + ` FROM instrument_listings WHERE is_available = FALSE ORDER BY created_at ASC`
	return r.list(ctx, query)
}

func (r *ListingReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.ListingView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list instrument listings", err)
	}
	defer rows.Close()

	views := make([]*queries.ListingView, 0)
	for rows.Next() {
		view, err := scanListing(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan instrument listing", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate instrument listings", err)
	}
	return views, nil
}

func scanListing(row pgx.Row) (*queries.ListingView, error) {
	var view queries.ListingView
	var weekly, monthly pgtype.Int8
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(
		&view.ID, &view.OwnerID, &view.Name, &view.InstrumentType, &view.Category,
		&view.Condition, &view.Description, &view.Location,
		&view.DailyPriceCents, &weekly, &monthly, &view.IsAvailable,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.WeeklyPriceCents = pgconv.Int64PtrFromPgtype(weekly)
	view.MonthlyPriceCents = pgconv.Int64PtrFromPgtype(monthly)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
