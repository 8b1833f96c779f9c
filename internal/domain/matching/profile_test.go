//go:build unit

package matching_test

import (
	"testing"

	"tarumbeta-server/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearnerProfileValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		profile := builder.NewLearnerProfileBuilder().Build()
		require.NoError(t, profile.Validate())
	})

	cases := []struct {
		name   string
		mutate func(*builder.LearnerProfileBuilder)
	}{
		{
			name:   "missing instrument",
			mutate: func(b *builder.LearnerProfileBuilder) { b.Instrument = "  " },
		},
		{
			name:   "missing skill level",
			mutate: func(b *builder.LearnerProfileBuilder) { b.SkillLevel = "" },
		},
		{
			name:   "minimum rating above scale",
			mutate: func(b *builder.LearnerProfileBuilder) { b.MinRating = 5.1 },
		},
		{
			name:   "negative minimum rating",
			mutate: func(b *builder.LearnerProfileBuilder) { b.MinRating = -0.1 },
		},
		{
			name:   "negative budget",
			mutate: func(b *builder.LearnerProfileBuilder) { b.BudgetCents = -1 },
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			profile := builder.NewLearnerProfileBuilder().With(c.mutate).Build()
			assert.Error(t, profile.Validate())
		})
	}
}
