//go:build unit

package rental_test

import (
	"testing"

	"tarumbeta-server/internal/domain/rental"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func TestCalculateTotalCents(t *testing.T) {
	cases := []struct {
		name   string
		period rental.Period
		snap   rental.PriceSnapshot
		days   int
		want   int64
		errIs  error
	}{
		{
			name:   "daily charges per day",
			period: rental.PeriodDaily,
			snap:   rental.PriceSnapshot{DailyCents: 500},
			days:   3,
			want:   1500,
		},
		{
			name:   "daily clamps zero days to one",
			period: rental.PeriodDaily,
			snap:   rental.PriceSnapshot{DailyCents: 500},
			days:   0,
			want:   500,
		},
		{
			name:   "weekly uses the weekly rate per started week",
			period: rental.PeriodWeekly,
			snap:   rental.PriceSnapshot{DailyCents: 500, WeeklyCents: ptr(3000)},
			days:   7,
			want:   3000,
		},
		{
			name:   "weekly rounds a partial week up",
			period: rental.PeriodWeekly,
			snap:   rental.PriceSnapshot{DailyCents: 500, WeeklyCents: ptr(3000)},
			days:   8,
			want:   6000,
		},
		{
			name:   "weekly falls back to seven daily rates",
			period: rental.PeriodWeekly,
			snap:   rental.PriceSnapshot{DailyCents: 500},
			days:   7,
			want:   3500,
		},
		{
			name:   "monthly uses the monthly rate per started month",
			period: rental.PeriodMonthly,
			snap:   rental.PriceSnapshot{DailyCents: 500, MonthlyCents: ptr(10000)},
			days:   31,
			want:   20000,
		},
		{
			name:   "monthly falls back to thirty daily rates",
			period: rental.PeriodMonthly,
			snap:   rental.PriceSnapshot{DailyCents: 500},
			days:   30,
			want:   15000,
		},
		{
			name:   "negative daily rate",
			period: rental.PeriodDaily,
			snap:   rental.PriceSnapshot{DailyCents: -1},
			days:   1,
			errIs:  rental.ErrNegativePrice,
		},
		{
			name:   "unknown period",
			period: rental.Period("hourly"),
			snap:   rental.PriceSnapshot{DailyCents: 500},
			days:   1,
			errIs:  rental.ErrInvalidPeriod,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := rental.CalculateTotalCents(c.period, c.snap, c.days)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
