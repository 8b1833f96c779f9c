package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/infra/db"
	"tarumbeta-server/internal/pkg/pgconv"
	"tarumbeta-server/internal/usecase/queries"
)

const rentalColumns = `
	r.id, r.instrument_id, il.name, r.renter_id, r.owner_id, r.period,
	r.start_date, r.end_date, r.total_price_cents, r.status,
	r.rejection_reason, r.picked_up_at, r.returned_at, r.created_at, r.updated_at`

const rentalFrom = ` FROM rentals r JOIN instrument_listings il ON il.id = r.instrument_id`

type RentalReadStore struct {
	db db.DBTX
}

func NewRentalReadStore(db db.DBTX) *RentalReadStore {
	return &RentalReadStore{db: db}
}

func (r *RentalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	query := `SELECT` + rentalColumns + rentalFrom + ` WHERE r.id = $1`

	view, err := scanRental(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental", err)
	}
	return view, nil
}

func (r *RentalReadStore) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*queries.RentalView, error) {
	query := `SELECT` + rentalColumns + rentalFrom + ` WHERE r.renter_id = $1 ORDER BY r.created_at DESC`
	return r.list(ctx, query, renterID)
}

func (r *RentalReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, status *string) ([]*queries.RentalView, error) {
	if status != nil {
		query := `SELECT` + rentalColumns + rentalFrom + ` WHERE r.owner_id = $1 AND r.status = $2 ORDER BY r.created_at DESC`
		return r.list(ctx, query, ownerID, *status)
	}
	query := `SELECT` + rentalColumns + rentalFrom + ` WHERE r.owner_id = $1 ORDER BY r.created_at DESC`
	return r.list(ctx, query, ownerID)
}

func (r *RentalReadStore) SumCompletedByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	const query = `
		SELECT COALESCE(SUM(total_price_cents), 0)
		FROM rentals
		WHERE owner_id = $1 AND status = 'completed'`

	var total int64
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to sum owner earnings", err)
	}
	return total, nil
}

func (r *RentalReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.RentalView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rentals", err)
	}
	defer rows.Close()

	views := make([]*queries.RentalView, 0)
	for rows.Next() {
		view, err := scanRental(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan rental", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rentals", err)
	}
	return views, nil
}

func scanRental(row pgx.Row) (*queries.RentalView, error) {
	var view queries.RentalView
	var rejectionReason pgtype.Text
	var pickedUpAt, returnedAt, createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(
		&view.ID, &view.InstrumentID, &view.InstrumentName, &view.RenterID, &view.OwnerID,
		&view.Period, &view.StartDate, &view.EndDate, &view.TotalPriceCents, &view.Status,
		&rejectionReason, &pickedUpAt, &returnedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.RejectionReason = pgconv.StringPtrFromPgtype(rejectionReason)
	view.PickedUpAt = pgconv.TimePtrFromPgtype(pickedUpAt)
	view.ReturnedAt = pgconv.TimePtrFromPgtype(returnedAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
