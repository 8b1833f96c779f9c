//go:build unit

package instructor_test

import (
	"testing"

	"tarumbeta-server/internal/domain/instructor"
	"tarumbeta-server/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ApplicationBuilder)
	errIs  error
}

func TestApplication(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewApplicationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, instructor.ApplicationPending, actual.Status())
		assert.Nil(t, actual.ReviewedBy())
		assert.Nil(t, actual.ReviewedAt())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty instrument",
				mutate: func(b *builder.ApplicationBuilder) { b.WithInstrument("   ") },
				errIs:  instructor.ErrEmptyInstrument,
			},
			{
				name:   "negative experience",
				mutate: func(b *builder.ApplicationBuilder) { b.WithExperienceYears(-1) },
				errIs:  instructor.ErrInvalidExperience,
			},
			{
				name:   "zero experience is allowed",
				mutate: func(b *builder.ApplicationBuilder) { b.WithExperienceYears(0) },
			},
			{
				name:   "zero hourly rate",
				mutate: func(b *builder.ApplicationBuilder) { b.WithHourlyRate(0) },
				errIs:  instructor.ErrInvalidHourlyRate,
			},
			{
				name:   "negative hourly rate",
				mutate: func(b *builder.ApplicationBuilder) { b.WithHourlyRate(-500) },
				errIs:  instructor.ErrInvalidHourlyRate,
			},
		})
	})

	t.Run("instrument is trimmed", func(t *testing.T) {
		actual, err := builder.NewApplicationBuilder().WithInstrument("  piano  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "piano", actual.Instrument())
	})
}

func TestNewProfileFromApplication(t *testing.T) {
	b := builder.NewApplicationBuilder()
	app, err := b.BuildDomain()
	require.NoError(t, err)

	profile := instructor.NewProfileFromApplication(app)
	require.NotNil(t, profile)

	assert.NotEqual(t, uuid.Nil, profile.ID())
	assert.NotEqual(t, app.ID(), profile.ID())
	assert.Equal(t, b.UserID, profile.UserID())
	assert.Equal(t, b.Instrument, profile.Instrument())
	assert.Equal(t, b.Bio, profile.Bio())
	assert.Equal(t, b.ExperienceYears, profile.ExperienceYears())
	assert.Equal(t, b.HourlyRateCents, profile.HourlyRateCents())
	assert.Equal(t, b.Genres, profile.Genres())
	assert.Equal(t, b.Certifications, profile.Certifications())

	assert.True(t, profile.IsVerified())
	assert.Equal(t, 5.0, profile.Rating())
	assert.Equal(t, 0, profile.TotalStudents())
}

func TestNewApplicationStatus(t *testing.T) {
	status, err := instructor.NewApplicationStatus("approved")
	require.NoError(t, err)
	assert.Equal(t, instructor.ApplicationApproved, status)

	_, err = instructor.NewApplicationStatus("withdrawn")
	require.ErrorIs(t, err, instructor.ErrInvalidApplicationStatus)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewApplicationBuilder().With(c.mutate).BuildDomain()

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
