//go:build unit

package lesson_test

import (
	"testing"
	"time"

	"tarumbeta-server/internal/domain/lesson"
	"tarumbeta-server/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.LessonBuilder)
	errIs  error
}

func TestLesson(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewLessonBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, lesson.StatusScheduled, actual.Status())
		assert.Equal(t, int64(3000), actual.PriceCents())
		assert.Nil(t, actual.RentalID())
	})

	t.Run("self booking", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "learner booking their own profile",
				mutate: func(b *builder.LessonBuilder) {
					b.WithLearnerID(b.InstructorUserID)
				},
				errIs: lesson.ErrSelfBooking,
			},
		})
	})

	t.Run("schedule validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "scheduled in the past",
				mutate: func(b *builder.LessonBuilder) {
					b.WithScheduledAt(b.Now.Add(-time.Minute))
				},
				errIs: lesson.ErrScheduledInPast,
			},
			{
				name: "scheduled exactly now",
				mutate: func(b *builder.LessonBuilder) {
					b.WithScheduledAt(b.Now)
				},
				errIs: lesson.ErrScheduledInPast,
			},
			{
				name: "scheduled one minute ahead",
				mutate: func(b *builder.LessonBuilder) {
					b.WithScheduledAt(b.Now.Add(time.Minute))
				},
			},
		})
	})

	t.Run("duration validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "30 minutes", mutate: func(b *builder.LessonBuilder) { b.WithDuration(30) }},
			{name: "60 minutes", mutate: func(b *builder.LessonBuilder) { b.WithDuration(60) }},
			{name: "90 minutes", mutate: func(b *builder.LessonBuilder) { b.WithDuration(90) }},
			{name: "120 minutes", mutate: func(b *builder.LessonBuilder) { b.WithDuration(120) }},
			{
				name:   "45 minutes is not offered",
				mutate: func(b *builder.LessonBuilder) { b.WithDuration(45) },
				errIs:  lesson.ErrInvalidDuration,
			},
			{
				name:   "zero duration",
				mutate: func(b *builder.LessonBuilder) { b.WithDuration(0) },
				errIs:  lesson.ErrInvalidDuration,
			},
		})
	})

	t.Run("session type validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "online",
				mutate: func(b *builder.LessonBuilder) { b.WithSessionType(lesson.SessionOnline) },
			},
			{
				name:   "in person",
				mutate: func(b *builder.LessonBuilder) { b.WithSessionType(lesson.SessionInPerson) },
			},
			{
				name:   "unknown session type",
				mutate: func(b *builder.LessonBuilder) { b.WithSessionType(lesson.SessionType("hybrid")) },
				errIs:  lesson.ErrInvalidSessionType,
			},
		})
	})

	t.Run("rate validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative hourly rate",
				mutate: func(b *builder.LessonBuilder) { b.WithHourlyRate(-1) },
				errIs:  lesson.ErrNegativeRate,
			},
			{
				name:   "free lesson is allowed",
				mutate: func(b *builder.LessonBuilder) { b.WithHourlyRate(0) },
			},
		})
	})

	t.Run("price is pro rata to the minute", func(t *testing.T) {
		assert.Equal(t, int64(1500), lesson.PriceCents(3000, 30))
		assert.Equal(t, int64(3000), lesson.PriceCents(3000, 60))
		assert.Equal(t, int64(4500), lesson.PriceCents(3000, 90))
		assert.Equal(t, int64(6000), lesson.PriceCents(3000, 120))
		assert.Equal(t, int64(2250), lesson.PriceCents(1500, 90))
	})

	t.Run("ends at", func(t *testing.T) {
		b := builder.NewLessonBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, b.ScheduledAt.Add(time.Hour), actual.EndsAt())
	})

	t.Run("party check", func(t *testing.T) {
		b := builder.NewLessonBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.IsParty(b.LearnerID))
		assert.True(t, actual.IsParty(b.InstructorUserID))
		assert.False(t, actual.IsParty(b.InstructorID), "profile id is not a party")
		assert.False(t, actual.IsParty(uuid.New()))
	})
}

func TestLessonStatusTransitions(t *testing.T) {
	assert.True(t, lesson.CanTransition(lesson.StatusScheduled, lesson.StatusApproved))
	assert.True(t, lesson.CanTransition(lesson.StatusScheduled, lesson.StatusCancelled))
	assert.True(t, lesson.CanTransition(lesson.StatusApproved, lesson.StatusCompleted))
	assert.True(t, lesson.CanTransition(lesson.StatusApproved, lesson.StatusCancelled))

	assert.False(t, lesson.CanTransition(lesson.StatusScheduled, lesson.StatusCompleted))
	assert.False(t, lesson.CanTransition(lesson.StatusCompleted, lesson.StatusCancelled))
	assert.False(t, lesson.CanTransition(lesson.StatusCancelled, lesson.StatusScheduled))

	assert.True(t, lesson.StatusCompleted.IsTerminal())
	assert.True(t, lesson.StatusCancelled.IsTerminal())
	for _, s := range lesson.BlockingStatuses() {
		assert.False(t, s.IsTerminal(), "%s should not be terminal", s)
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewLessonBuilder().With(c.mutate).BuildDomain()

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
