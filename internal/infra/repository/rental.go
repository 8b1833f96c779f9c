package repository

import (
	"context"
	"time"

	"tarumbeta-server/internal/domain/rental"
	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/infra/db"
	"tarumbeta-server/internal/pkg/pgconv"
	"tarumbeta-server/internal/usecase/shared"

	"github.com/google/uuid"
)

type RentalRepository struct{}

func NewRentalRepository() *RentalRepository {
	return &RentalRepository{}
}

func (r *RentalRepository) Create(ctx context.Context, tx db.DBTX, rent *rental.Rental) (uuid.UUID, error) {
	const query = `
		INSERT INTO rentals (
			id, instrument_id, renter_id, owner_id, period, start_date, end_date,
			daily_price_cents, weekly_price_cents, monthly_price_cents,
			total_price_cents, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
		RETURNING id`

	snap := rent.PriceSnapshot()

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		rent.ID(), rent.InstrumentID(), rent.RenterID(), rent.OwnerID(),
		rent.Period().String(), rent.Dates().Start(), rent.Dates().End(),
		snap.DailyCents,
		pgconv.Int64PtrToPgtype(snap.WeeklyCents),
		pgconv.Int64PtrToPgtype(snap.MonthlyCents),
		rent.TotalPriceCents(), rent.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.ClassifyPgErr("failed to create rental", err)
	}

	return id, nil
}

// UpdateStatus applies a lifecycle edge with the expected prior status
// in the WHERE clause. Zero affected rows means another actor moved the
// rental first; that surfaces as CONFLICT, never as a silent overwrite.
func (r *RentalRepository) UpdateStatus(ctx context.Context, tx db.DBTX, upd shared.RentalStatusUpdate) error {
	const query = `
		UPDATE rentals
		SET status = $2,
		    rejection_reason = COALESCE($4, rejection_reason),
		    picked_up_at = COALESCE($5, picked_up_at),
		    returned_at = COALESCE($6, returned_at),
		    updated_at = now()
		WHERE id = $1 AND status = $3`

	tag, err := tx.Exec(ctx, query,
		upd.ID, upd.To.String(), upd.From.String(),
		pgconv.StringPtrToPgtype(upd.RejectionReason),
		pgconv.TimePtrToPgtype(upd.PickedUpAt),
		pgconv.TimePtrToPgtype(upd.ReturnedAt),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to update rental status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental not in expected status", nil, infra.KindConflict)
	}
	return nil
}

// ExistsOverlapping reports whether any rental still occupying the
// instrument intersects [start, end).
func (r *RentalRepository) ExistsOverlapping(ctx context.Context, tx db.DBTX, instrumentID uuid.UUID, start, end time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM rentals
			WHERE instrument_id = $1
			  AND status = ANY($2)
			  AND start_date < $4
			  AND end_date > $3
		)`

	statuses := make([]string, 0, 4)
	for _, s := range rental.NonTerminalStatuses() {
		statuses = append(statuses, s.String())
	}

	var exists bool
	err := tx.QueryRow(ctx, query, instrumentID, statuses, start, end).Scan(&exists)
	if err != nil {
		return false, infra.ClassifyPgErr("failed to check rental overlap", err)
	}
	return exists, nil
}
