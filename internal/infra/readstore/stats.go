package readstore

import (
	"context"

	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/infra/db"
	"tarumbeta-server/internal/usecase/queries"
)

type StatsReadStore struct {
	db db.DBTX
}

func NewStatsReadStore(db db.DBTX) *StatsReadStore {
	return &StatsReadStore{db: db}
}

// Collect gathers the admin dashboard counters in one round trip.
// Revenue is derived from completed rentals and lessons, never from a
// running counter.
func (r *StatsReadStore) Collect(ctx context.Context) (*queries.AdminStatsView, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM instructor_profiles WHERE is_verified = TRUE),
			(SELECT COUNT(*) FROM instrument_listings),
			(SELECT COUNT(*) FROM rentals),
			(SELECT COUNT(*) FROM rentals WHERE status IN ('active', 'pending_return')),
			(SELECT COALESCE(SUM(total_price_cents), 0) FROM rentals WHERE status = 'completed')
			+ (SELECT COALESCE(SUM(price_cents), 0) FROM lessons WHERE status = 'completed')`

	var view queries.AdminStatsView
	err := r.db.QueryRow(ctx, query).Scan(
		&view.TotalUsers, &view.TotalInstructors, &view.TotalListings,
		&view.TotalRentals, &view.ActiveRentals, &view.TotalRevenueCents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to collect admin stats", err)
	}

	return &view, nil
}
