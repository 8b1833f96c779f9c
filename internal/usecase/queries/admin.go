package queries

import (
	"context"
)

type AdminQueries interface {
	ListPendingApplications(ctx context.Context) ([]*ApplicationView, error)
	ListPendingListings(ctx context.Context) ([]*ListingView, error)
	Stats(ctx context.Context) (*AdminStatsView, error)
}

type StatsReadStore interface {
	Collect(ctx context.Context) (*AdminStatsView, error)
}

type adminQueriesImpl struct {
	instructors InstructorReadStore
	listings    ListingReadStore
	stats       StatsReadStore
}

func NewAdminQueries(instructors InstructorReadStore, listings ListingReadStore, stats StatsReadStore) AdminQueries {
	return &adminQueriesImpl{
		instructors: instructors,
		listings:    listings,
		stats:       stats,
	}
}

func (q *adminQueriesImpl) ListPendingApplications(ctx context.Context) ([]*ApplicationView, error) {
	return q.instructors.ListPendingApplications(ctx)
}

func (q *adminQueriesImpl) ListPendingListings(ctx context.Context) ([]*ListingView, error) {
	return q.listings.ListPending(ctx)
}

func (q *adminQueriesImpl) Stats(ctx context.Context) (*AdminStatsView, error) {
	return q.stats.Collect(ctx)
}
