//go:build unit || e2e

package builder

import (
	"time"

	domlesson "tarumbeta-server/internal/domain/lesson"

	"github.com/google/uuid"
)

type LessonBuilder struct {
	InstructorID     uuid.UUID
	InstructorUserID uuid.UUID
	LearnerID        uuid.UUID
	RentalID         *uuid.UUID
	Instrument       string
	SkillLevel       string
	SessionType      domlesson.SessionType
	ScheduledAt      time.Time
	DurationMinutes  int
	HourlyRateCents  int64
	Now              time.Time
}

func NewLessonBuilder() *LessonBuilder {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	return &LessonBuilder{
		InstructorID:     uuid.New(),
		InstructorUserID: uuid.New(),
		LearnerID:        uuid.New(),
		Instrument:       "guitar",
		SkillLevel:       "beginner",
		SessionType:      domlesson.SessionOnline,
		ScheduledAt:      now.AddDate(0, 0, 2),
		DurationMinutes:  60,
		HourlyRateCents:  3000,
		Now:              now,
	}
}

func (l *LessonBuilder) With(mutate func(*LessonBuilder)) *LessonBuilder {
	mutate(l)
	return l
}

func (l *LessonBuilder) BuildDomain() (*domlesson.Lesson, error) {
	return domlesson.NewLesson(
		l.InstructorID, l.InstructorUserID, l.LearnerID,
		l.RentalID,
		l.Instrument, l.SkillLevel,
		l.SessionType,
		l.ScheduledAt,
		l.DurationMinutes,
		l.HourlyRateCents,
		l.Now,
	)
}

// Fluent builder methods
func (l *LessonBuilder) WithLearnerID(id uuid.UUID) *LessonBuilder {
	l.LearnerID = id
	return l
}

func (l *LessonBuilder) WithInstructorUserID(id uuid.UUID) *LessonBuilder {
	l.InstructorUserID = id
	return l
}

func (l *LessonBuilder) WithSessionType(t domlesson.SessionType) *LessonBuilder {
	l.SessionType = t
	return l
}

func (l *LessonBuilder) WithScheduledAt(at time.Time) *LessonBuilder {
	l.ScheduledAt = at
	return l
}

func (l *LessonBuilder) WithDuration(minutes int) *LessonBuilder {
	l.DurationMinutes = minutes
	return l
}

func (l *LessonBuilder) WithHourlyRate(cents int64) *LessonBuilder {
	l.HourlyRateCents = cents
	return l
}
