//go:build unit

package rental_test

import (
	"testing"
	"time"

	"tarumbeta-server/internal/domain/rental"
	"tarumbeta-server/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RentalBuilder)
	errIs  error
}

func TestRental(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRentalBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, rental.StatusPending, actual.Status())
		assert.Equal(t, rental.PeriodDaily, actual.Period())
		assert.Equal(t, int64(1500), actual.TotalPriceCents())
		assert.Nil(t, actual.RejectionReason())
		assert.Nil(t, actual.PickedUpAt())
		assert.Nil(t, actual.ReturnedAt())
	})

	t.Run("period validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "daily period",
				mutate: func(b *builder.RentalBuilder) { b.WithPeriod(rental.PeriodDaily) },
			},
			{
				name:   "weekly period",
				mutate: func(b *builder.RentalBuilder) { b.WithPeriod(rental.PeriodWeekly) },
			},
			{
				name:   "monthly period",
				mutate: func(b *builder.RentalBuilder) { b.WithPeriod(rental.PeriodMonthly) },
			},
			{
				name:   "unknown period",
				mutate: func(b *builder.RentalBuilder) { b.WithPeriod(rental.Period("hourly")) },
				errIs:  rental.ErrInvalidPeriod,
			},
		})
	})

	t.Run("date validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "end before start",
				mutate: func(b *builder.RentalBuilder) {
					b.WithDates(b.Now.AddDate(0, 0, 5), b.Now.AddDate(0, 0, 2))
				},
				errIs: rental.ErrInvalidDateRange,
			},
			{
				name: "start equals end",
				mutate: func(b *builder.RentalBuilder) {
					day := b.Now.AddDate(0, 0, 2)
					b.WithDates(day, day)
				},
				errIs: rental.ErrInvalidDateRange,
			},
			{
				name: "start in the past",
				mutate: func(b *builder.RentalBuilder) {
					b.WithDates(b.Now.AddDate(0, 0, -1), b.Now.AddDate(0, 0, 3))
				},
				errIs: rental.ErrStartInPast,
			},
			{
				name: "start today is allowed",
				mutate: func(b *builder.RentalBuilder) {
					b.WithDates(b.Now, b.Now.AddDate(0, 0, 3))
				},
			},
		})
	})

	t.Run("negative snapshot price", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative daily rate",
				mutate: func(b *builder.RentalBuilder) { b.WithDailyCents(-100) },
				errIs:  rental.ErrNegativePrice,
			},
		})
	})

	t.Run("party check", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.IsParty(b.RenterID))
		assert.True(t, actual.IsParty(b.OwnerID))
		assert.False(t, actual.IsParty(uuid.New()))
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		rental1, err1 := b.BuildDomain()
		rental2, err2 := b.BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, rental1.ID(), rental2.ID())
	})

	t.Run("reconstruct keeps stored state", func(t *testing.T) {
		b := builder.NewRentalBuilder()
		dates, err := rental.NewDateRange(b.Start, b.End, b.Now)
		require.NoError(t, err)

		id := uuid.New()
		reason := "instrument damaged"
		now := time.Now()
		actual := rental.ReconstructRental(
			id, b.InstrumentID, b.RenterID, b.OwnerID,
			rental.PeriodDaily, dates, b.BuildSnapshot(),
			1500, rental.StatusRejected, &reason, nil, nil, now, now,
		)

		assert.Equal(t, id, actual.ID())
		assert.Equal(t, rental.StatusRejected, actual.Status())
		require.NotNil(t, actual.RejectionReason())
		assert.Equal(t, reason, *actual.RejectionReason())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewRentalBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
