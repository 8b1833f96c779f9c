//go:build unit

package matching_test

import (
	"testing"

	"tarumbeta-server/internal/domain/matching"
	"tarumbeta-server/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	t.Run("orders by score then rating then students", func(t *testing.T) {
		low := matching.NewMatch(builder.NewCandidateBuilder().Build(), 60, nil)
		high := matching.NewMatch(builder.NewCandidateBuilder().Build(), 90, nil)
		sameScoreBetterRating := matching.NewMatch(
			builder.NewCandidateBuilder().WithRating(5.0).Build(), 60, nil)
		sameScoreSameRatingMoreStudents := matching.NewMatch(
			builder.NewCandidateBuilder().WithRating(5.0).WithTotalStudents(80).Build(), 60, nil)

		matches := []matching.Match{low, sameScoreBetterRating, high, sameScoreSameRatingMoreStudents}
		matching.Rank(matches)

		require.Len(t, matches, 4)
		assert.Equal(t, high.ProfileID, matches[0].ProfileID)
		assert.Equal(t, sameScoreSameRatingMoreStudents.ProfileID, matches[1].ProfileID)
		assert.Equal(t, sameScoreBetterRating.ProfileID, matches[2].ProfileID)
		assert.Equal(t, low.ProfileID, matches[3].ProfileID)
	})

	t.Run("fully tied matches get a stable total order", func(t *testing.T) {
		a := matching.NewMatch(builder.NewCandidateBuilder().Build(), 70, nil)
		b := matching.NewMatch(builder.NewCandidateBuilder().Build(), 70, nil)

		first := []matching.Match{a, b}
		second := []matching.Match{b, a}
		matching.Rank(first)
		matching.Rank(second)

		assert.Equal(t, first[0].ProfileID, second[0].ProfileID)
		assert.Equal(t, first[1].ProfileID, second[1].ProfileID)
	})
}

func TestTop(t *testing.T) {
	matches := make([]matching.Match, 0, 7)
	for i := 0; i < 7; i++ {
		matches = append(matches, matching.NewMatch(builder.NewCandidateBuilder().Build(), 50, nil))
	}

	assert.Len(t, matching.Top(matches, 5), 5)
	assert.Len(t, matching.Top(matches[:3], 5), 3)
	assert.Empty(t, matching.Top(nil, 5))
}
