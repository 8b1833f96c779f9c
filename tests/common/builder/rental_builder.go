//go:build unit || e2e

package builder

import (
	"time"

	domrental "tarumbeta-server/internal/domain/rental"

	"github.com/google/uuid"
)

type RentalBuilder struct {
	InstrumentID uuid.UUID
	RenterID     uuid.UUID
	OwnerID      uuid.UUID
	Period       domrental.Period
	Start        time.Time
	End          time.Time
	Now          time.Time
	DailyCents   int64
	WeeklyCents  *int64
	MonthlyCents *int64
}

func NewRentalBuilder() *RentalBuilder {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	return &RentalBuilder{
		InstrumentID: uuid.New(),
		RenterID:     uuid.New(),
		OwnerID:      uuid.New(),
		Period:       domrental.PeriodDaily,
		Start:        now.AddDate(0, 0, 1),
		End:          now.AddDate(0, 0, 4),
		Now:          now,
		DailyCents:   500,
	}
}

func (r *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RentalBuilder) BuildDomain() (*domrental.Rental, error) {
	dates, err := domrental.NewDateRange(r.Start, r.End, r.Now)
	if err != nil {
		return nil, err
	}
	return domrental.NewRental(r.InstrumentID, r.RenterID, r.OwnerID, r.Period, dates, r.BuildSnapshot())
}

func (r *RentalBuilder) BuildSnapshot() domrental.PriceSnapshot {
	return domrental.PriceSnapshot{
		DailyCents:   r.DailyCents,
		WeeklyCents:  r.WeeklyCents,
		MonthlyCents: r.MonthlyCents,
	}
}

// Fluent builder methods
func (r *RentalBuilder) WithPeriod(period domrental.Period) *RentalBuilder {
	r.Period = period
	return r
}

func (r *RentalBuilder) WithDates(start, end time.Time) *RentalBuilder {
	r.Start = start
	r.End = end
	return r
}

func (r *RentalBuilder) WithDays(days int) *RentalBuilder {
	r.End = r.Start.AddDate(0, 0, days)
	return r
}

func (r *RentalBuilder) WithDailyCents(cents int64) *RentalBuilder {
	r.DailyCents = cents
	return r
}

func (r *RentalBuilder) WithWeeklyCents(cents int64) *RentalBuilder {
	r.WeeklyCents = &cents
	return r
}

func (r *RentalBuilder) WithMonthlyCents(cents int64) *RentalBuilder {
	r.MonthlyCents = &cents
	return r
}
