//go:build unit

package matching_test

import (
	"testing"

	"tarumbeta-server/internal/domain/matching"
	"tarumbeta-server/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalScorer(t *testing.T) {
	scorer := matching.NewLocalScorer()

	t.Run("strong candidate scores the full primary scale", func(t *testing.T) {
		// In budget (30), 5+ years (20), rating >= 4.5 (20), teaches
		// beginner (15), >10 students (10), same city (5) = 100, plus
		// shared genre (2) and language (2) clamped later by NewMatch.
		profile := builder.NewLearnerProfileBuilder().Build()
		cand := builder.NewCandidateBuilder().Build()

		score, reasons := scorer.Score(profile, cand)
		assert.Equal(t, 104, score)
		assert.NotEmpty(t, reasons)

		match := matching.NewMatch(cand, score, reasons)
		assert.Equal(t, 100, match.Score)
		assert.Equal(t, matching.StrengthExcellent, match.Strength)
	})

	t.Run("budget scoring", func(t *testing.T) {
		profile := builder.NewLearnerProfileBuilder().WithBudget(2000).Build()

		inBudget := builder.NewCandidateBuilder().WithHourlyRate(2000).Build()
		nearBudget := builder.NewCandidateBuilder().WithHourlyRate(2400).Build()
		overBudget := builder.NewCandidateBuilder().WithHourlyRate(2401).Build()

		inScore, _ := scorer.Score(profile, inBudget)
		nearScore, _ := scorer.Score(profile, nearBudget)
		overScore, _ := scorer.Score(profile, overBudget)

		assert.Equal(t, 15, inScore-nearScore, "near-budget candidates lose half the budget weight")
		assert.Equal(t, 15, nearScore-overScore, "candidates past 120 percent of budget get nothing")
	})

	t.Run("no budget preference skips budget scoring", func(t *testing.T) {
		profile := builder.NewLearnerProfileBuilder().WithBudget(0).Build()
		cheap := builder.NewCandidateBuilder().WithHourlyRate(100).Build()
		pricey := builder.NewCandidateBuilder().WithHourlyRate(100000).Build()

		cheapScore, _ := scorer.Score(profile, cheap)
		priceyScore, _ := scorer.Score(profile, pricey)
		assert.Equal(t, cheapScore, priceyScore)
	})

	t.Run("skill level gates on experience", func(t *testing.T) {
		junior := builder.NewCandidateBuilder().WithExperienceYears(1).Build()
		mid := builder.NewCandidateBuilder().WithExperienceYears(3).Build()
		senior := builder.NewCandidateBuilder().WithExperienceYears(7).Build()

		cases := []struct {
			level   string
			teaches map[string]bool
		}{
			{"beginner", map[string]bool{"junior": true, "mid": true, "senior": true}},
			{"intermediate", map[string]bool{"junior": false, "mid": true, "senior": true}},
			{"advanced", map[string]bool{"junior": false, "mid": false, "senior": true}},
		}
		cands := map[string]matching.Candidate{"junior": junior, "mid": mid, "senior": senior}

		for _, c := range cases {
			profile := builder.NewLearnerProfileBuilder().WithSkillLevel(c.level).Build()
			for name, cand := range cands {
				_, reasons := scorer.Score(profile, cand)
				if c.teaches[name] {
					assert.Contains(t, reasons, "comfortable teaching your level",
						"%s should teach %s", name, c.level)
				} else {
					assert.NotContains(t, reasons, "comfortable teaching your level",
						"%s should not teach %s", name, c.level)
				}
			}
		}
	})

	t.Run("location match is substring based either way", func(t *testing.T) {
		profile := builder.NewLearnerProfileBuilder().WithLocation("nairobi").Build()
		cand := builder.NewCandidateBuilder().WithLocation("Nairobi West").Build()

		_, reasons := scorer.Score(profile, cand)
		assert.Contains(t, reasons, "teaches in your area")

		elsewhere := builder.NewCandidateBuilder().WithLocation("Mombasa").Build()
		_, reasons = scorer.Score(profile, elsewhere)
		assert.NotContains(t, reasons, "teaches in your area")
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		profile := builder.NewLearnerProfileBuilder().Build()
		cand := builder.NewCandidateBuilder().Build()

		score1, reasons1 := scorer.Score(profile, cand)
		score2, reasons2 := scorer.Score(profile, cand)
		assert.Equal(t, score1, score2)
		assert.Equal(t, reasons1, reasons2)
	})
}

func TestFallbackScore(t *testing.T) {
	assert.Equal(t, 95, matching.FallbackScore(5.0, 10), "fallback never exceeds 95")
	assert.Equal(t, 95, matching.FallbackScore(4.8, 20))
	assert.Equal(t, 91, matching.FallbackScore(4.0, 2))
	assert.Equal(t, 70, matching.FallbackScore(0, 0))
}

func TestStrengthForScore(t *testing.T) {
	assert.Equal(t, matching.StrengthExcellent, matching.StrengthForScore(80))
	assert.Equal(t, matching.StrengthGreat, matching.StrengthForScore(79))
	assert.Equal(t, matching.StrengthGreat, matching.StrengthForScore(70))
	assert.Equal(t, matching.StrengthGood, matching.StrengthForScore(69))
	assert.Equal(t, matching.StrengthGood, matching.StrengthForScore(60))
	assert.Equal(t, matching.StrengthFair, matching.StrengthForScore(59))
	assert.Equal(t, matching.StrengthFair, matching.StrengthForScore(0))
}

func TestNewMatchClampsScore(t *testing.T) {
	cand := builder.NewCandidateBuilder().Build()

	low := matching.NewMatch(cand, -5, nil)
	require.Equal(t, 0, low.Score)
	assert.Equal(t, matching.StrengthFair, low.Strength)

	high := matching.NewMatch(cand, 130, nil)
	require.Equal(t, 100, high.Score)
	assert.Equal(t, matching.StrengthExcellent, high.Strength)
}
