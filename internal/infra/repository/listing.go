package repository

import (
	"context"

	"tarumbeta-server/internal/domain/instrument"
	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/infra/db"
	"tarumbeta-server/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ListingRepository struct{}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

func (r *ListingRepository) Create(ctx context.Context, tx db.DBTX, l *instrument.Listing) (uuid.UUID, error) {
	const query = `
		INSERT INTO instrument_listings (
			id, owner_id, name, instrument_type, category, condition, description, location,
			daily_price_cents, weekly_price_cents, monthly_price_cents, is_available,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		l.ID(), l.OwnerID(), l.Name(), l.InstrumentType(), l.Category(), l.Condition().String(),
		l.Description(), l.Location(),
		l.DailyPriceCents(),
		pgconv.Int64PtrToPgtype(l.WeeklyPriceCents()),
		pgconv.Int64PtrToPgtype(l.MonthlyPriceCents()),
		l.IsAvailable(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.ClassifyPgErr("failed to create instrument listing", err)
	}

	return id, nil
}

func (r *ListingRepository) SetAvailability(ctx context.Context, tx db.DBTX, id uuid.UUID, available bool) error {
	const query = `UPDATE instrument_listings SET is_available = $2, updated_at = now() WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, available)
	if err != nil {
		return infra.ClassifyPgErr("failed to update listing availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("instrument listing not found", nil, infra.KindNotFound)
	}
	return nil
}

// Lock acquires the listing row for the rest of the transaction.
// Overlap checks against this instrument are only sound while no
// concurrent creator can slip an insert past them.
func (r *ListingRepository) Lock(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `SELECT id FROM instrument_listings WHERE id = $1 FOR UPDATE`

	var locked uuid.UUID
	if err := tx.QueryRow(ctx, query, id).Scan(&locked); err != nil {
		return infra.ClassifyPgErr("failed to lock instrument listing", err)
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM instrument_listings WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.ClassifyPgErr("failed to delete instrument listing", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("instrument listing not found", nil, infra.KindNotFound)
	}
	return nil
}
