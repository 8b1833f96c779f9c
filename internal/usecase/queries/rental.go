package queries

import (
	"context"

	"github.com/google/uuid"

	"tarumbeta-server/internal/domain/user"
	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/pkg/errs"
)

type RentalQueries interface {
	GetRental(ctx context.Context, id, requesterID uuid.UUID, requesterRole user.Role) (*RentalView, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*RentalView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, status *string) ([]*RentalView, error)
	OwnerEarnings(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type RentalReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*RentalView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, status *string) ([]*RentalView, error)
	// SumCompletedByOwner derives earnings from completed rentals, so
	// re-reading never double-counts.
	SumCompletedByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type rentalQueriesImpl struct {
	readStore RentalReadStore
}

func NewRentalQueries(readStore RentalReadStore) RentalQueries {
	return &rentalQueriesImpl{
		readStore: readStore,
	}
}

func (q *rentalQueriesImpl) GetRental(ctx context.Context, id, requesterID uuid.UUID, requesterRole user.Role) (*RentalView, error) {
	rental, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRentalNotFound)
		}
		return nil, err
	}

	if requesterRole != user.RoleAdmin && rental.RenterID != requesterID && rental.OwnerID != requesterID {
		return nil, errs.ErrActorNotAllowed
	}

	return rental, nil
}

func (q *rentalQueriesImpl) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*RentalView, error) {
	return q.readStore.ListByRenter(ctx, renterID)
}

func (q *rentalQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, status *string) ([]*RentalView, error) {
	return q.readStore.ListByOwner(ctx, ownerID, status)
}

func (q *rentalQueriesImpl) OwnerEarnings(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	return q.readStore.SumCompletedByOwner(ctx, ownerID)
}
