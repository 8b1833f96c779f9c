package queries

import (
	"context"

	"github.com/google/uuid"

	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/pkg/errs"
)

type ListingQueries interface {
	GetListing(ctx context.Context, id uuid.UUID) (*ListingView, error)
	ListAvailable(ctx context.Context, filter ListingFilter) ([]*ListingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ListingView, error)
}

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	ListAvailable(ctx context.Context, filter ListingFilter) ([]*ListingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ListingView, error)
	ListPending(ctx context.Context) ([]*ListingView, error)
}

type listingQueriesImpl struct {
	readStore ListingReadStore
}

func NewListingQueries(readStore ListingReadStore) ListingQueries {
	return &listingQueriesImpl{
		readStore: readStore,
	}
}

func (q *listingQueriesImpl) GetListing(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	listing, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrListingNotFound)
		}
		return nil, err
	}
	return listing, nil
}

func (q *listingQueriesImpl) ListAvailable(ctx context.Context, filter ListingFilter) ([]*ListingView, error) {
	return q.readStore.ListAvailable(ctx, filter)
}

func (q *listingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ListingView, error) {
	return q.readStore.ListByOwner(ctx, ownerID)
}
