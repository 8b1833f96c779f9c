//go:build unit

package instrument_test

import (
	"testing"

	"tarumbeta-server/internal/domain/instrument"
	"tarumbeta-server/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ListingBuilder)
	errIs  error
}

func TestListing(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.IsAvailable(), "new listings wait for approval")
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.ListingBuilder) { b.WithName("") },
				errIs:  instrument.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.ListingBuilder) { b.WithName("   ") },
				errIs:  instrument.ErrEmptyName,
			},
		})
	})

	t.Run("type and condition validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty instrument type",
				mutate: func(b *builder.ListingBuilder) { b.WithInstrumentType(" ") },
				errIs:  instrument.ErrEmptyType,
			},
			{
				name:   "unknown condition",
				mutate: func(b *builder.ListingBuilder) { b.WithCondition(instrument.Condition("mint")) },
				errIs:  instrument.ErrInvalidCondition,
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero daily price",
				mutate: func(b *builder.ListingBuilder) { b.WithDailyPrice(0) },
				errIs:  instrument.ErrInvalidPrice,
			},
			{
				name:   "negative daily price",
				mutate: func(b *builder.ListingBuilder) { b.WithDailyPrice(-100) },
				errIs:  instrument.ErrInvalidPrice,
			},
			{
				name:   "zero weekly tier",
				mutate: func(b *builder.ListingBuilder) { b.WithWeeklyPrice(0) },
				errIs:  instrument.ErrInvalidTierPrice,
			},
			{
				name:   "zero monthly tier",
				mutate: func(b *builder.ListingBuilder) { b.WithMonthlyPrice(0) },
				errIs:  instrument.ErrInvalidTierPrice,
			},
			{
				name: "positive tiers",
				mutate: func(b *builder.ListingBuilder) {
					b.WithWeeklyPrice(3000).WithMonthlyPrice(10000)
				},
			},
			{
				name:   "no tiers at all",
				mutate: func(b *builder.ListingBuilder) {},
			},
		})
	})

	t.Run("name is trimmed", func(t *testing.T) {
		actual, err := builder.NewListingBuilder().WithName("  Fender Stratocaster  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Fender Stratocaster", actual.Name())
	})
}

func TestNewCondition(t *testing.T) {
	cond, err := instrument.NewCondition("good")
	require.NoError(t, err)
	assert.Equal(t, instrument.ConditionGood, cond)

	_, err = instrument.NewCondition("mint")
	require.ErrorIs(t, err, instrument.ErrInvalidCondition)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewListingBuilder().With(c.mutate).BuildDomain()

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
