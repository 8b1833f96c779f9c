//go:build unit

package rental_test

import (
	"testing"
	"time"

	"tarumbeta-server/internal/domain/rental"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to rental.Status
	}{
		{rental.StatusPending, rental.StatusConfirmed},
		{rental.StatusPending, rental.StatusRejected},
		{rental.StatusPending, rental.StatusCancelled},
		{rental.StatusConfirmed, rental.StatusActive},
		{rental.StatusConfirmed, rental.StatusCancelled},
		{rental.StatusActive, rental.StatusPendingReturn},
		{rental.StatusPendingReturn, rental.StatusCompleted},
	}
	for _, edge := range allowed {
		assert.True(t, rental.CanTransition(edge.from, edge.to),
			"%s -> %s should be allowed", edge.from, edge.to)
	}

	denied := []struct {
		from, to rental.Status
	}{
		{rental.StatusPending, rental.StatusActive},
		{rental.StatusPending, rental.StatusCompleted},
		{rental.StatusConfirmed, rental.StatusRejected},
		{rental.StatusActive, rental.StatusCancelled},
		{rental.StatusActive, rental.StatusCompleted},
		{rental.StatusPendingReturn, rental.StatusCancelled},
		{rental.StatusCompleted, rental.StatusPending},
		{rental.StatusRejected, rental.StatusConfirmed},
		{rental.StatusCancelled, rental.StatusPending},
	}
	for _, edge := range denied {
		assert.False(t, rental.CanTransition(edge.from, edge.to),
			"%s -> %s should be denied", edge.from, edge.to)
	}
}

func TestStatusTerminality(t *testing.T) {
	assert.True(t, rental.StatusCompleted.IsTerminal())
	assert.True(t, rental.StatusRejected.IsTerminal())
	assert.True(t, rental.StatusCancelled.IsTerminal())

	for _, s := range rental.NonTerminalStatuses() {
		assert.False(t, s.IsTerminal(), "%s should not be terminal", s)
	}
}

func TestNewStatus(t *testing.T) {
	status, err := rental.NewStatus("pending_return")
	require.NoError(t, err)
	assert.Equal(t, rental.StatusPendingReturn, status)

	_, err = rental.NewStatus("shipped")
	require.ErrorIs(t, err, rental.ErrInvalidStatus)
}

func TestNewPeriod(t *testing.T) {
	period, err := rental.NewPeriod("weekly")
	require.NoError(t, err)
	assert.Equal(t, rental.PeriodWeekly, period)

	_, err = rental.NewPeriod("hourly")
	require.ErrorIs(t, err, rental.ErrInvalidPeriod)
}

func TestDateRange(t *testing.T) {
	now := time.Date(2026, 6, 1, 15, 30, 0, 0, time.UTC)

	t.Run("truncates both ends to UTC midnight", func(t *testing.T) {
		dates, err := rental.NewDateRange(
			time.Date(2026, 6, 2, 18, 45, 0, 0, time.UTC),
			time.Date(2026, 6, 5, 9, 0, 0, 0, time.UTC),
			now,
		)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), dates.Start())
		assert.Equal(t, time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC), dates.End())
		assert.Equal(t, 3, dates.Days())
	})

	t.Run("overlap detection", func(t *testing.T) {
		base, err := rental.NewDateRange(now.AddDate(0, 0, 1), now.AddDate(0, 0, 5), now)
		require.NoError(t, err)

		overlapping, err := rental.NewDateRange(now.AddDate(0, 0, 4), now.AddDate(0, 0, 8), now)
		require.NoError(t, err)
		assert.True(t, base.Overlaps(overlapping))
		assert.True(t, overlapping.Overlaps(base))

		adjacent, err := rental.NewDateRange(now.AddDate(0, 0, 5), now.AddDate(0, 0, 8), now)
		require.NoError(t, err)
		assert.False(t, base.Overlaps(adjacent), "touching ranges share no night")

		disjoint, err := rental.NewDateRange(now.AddDate(0, 0, 10), now.AddDate(0, 0, 12), now)
		require.NoError(t, err)
		assert.False(t, base.Overlaps(disjoint))
	})
}
