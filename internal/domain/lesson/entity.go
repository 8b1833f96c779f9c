package lesson

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrScheduledInPast = errors.New("lesson must be scheduled in the future")
	ErrSelfBooking     = errors.New("learner cannot book a lesson with themself")
	ErrNegativeRate    = errors.New("hourly rate cannot be negative")
)

// Lesson is the tuition booking aggregate. The instructor's user id is
// denormalized next to the profile id so transition authorization never
// needs a join; the hourly rate is frozen at booking time.
type Lesson struct {
	id               uuid.UUID
	instructorID     uuid.UUID
	instructorUserID uuid.UUID
	learnerID        uuid.UUID
	rentalID         *uuid.UUID
	instrument       string
	skillLevel       string
	sessionType      SessionType
	scheduledAt      time.Time
	durationMinutes  int
	hourlyRateCents  int64
	priceCents       int64
	status           Status
	createdAt        time.Time
	updatedAt        time.Time
}

func NewLesson(
	instructorID, instructorUserID, learnerID uuid.UUID,
	rentalID *uuid.UUID,
	instrument, skillLevel string,
	sessionType SessionType,
	scheduledAt time.Time,
	durationMinutes int,
	hourlyRateCents int64,
	now time.Time,
) (*Lesson, error) {
	if learnerID == instructorUserID {
		return nil, ErrSelfBooking
	}
	if !sessionType.IsValid() {
		return nil, ErrInvalidSessionType
	}
	if !ValidDuration(durationMinutes) {
		return nil, ErrInvalidDuration
	}
	if !scheduledAt.After(now) {
		return nil, ErrScheduledInPast
	}
	if hourlyRateCents < 0 {
		return nil, ErrNegativeRate
	}

	return &Lesson{
		id:               uuid.New(),
		instructorID:     instructorID,
		instructorUserID: instructorUserID,
		learnerID:        learnerID,
		rentalID:         rentalID,
		instrument:       instrument,
		skillLevel:       skillLevel,
		sessionType:      sessionType,
		scheduledAt:      scheduledAt,
		durationMinutes:  durationMinutes,
		hourlyRateCents:  hourlyRateCents,
		priceCents:       PriceCents(hourlyRateCents, durationMinutes),
		status:           StatusScheduled,
	}, nil
}

// PriceCents charges the hourly rate pro rata to the minute.
func PriceCents(hourlyRateCents int64, durationMinutes int) int64 {
	return hourlyRateCents * int64(durationMinutes) / 60
}

func ReconstructLesson(
	id, instructorID, instructorUserID, learnerID uuid.UUID,
	rentalID *uuid.UUID,
	instrument, skillLevel string,
	sessionType SessionType,
	scheduledAt time.Time,
	durationMinutes int,
	hourlyRateCents, priceCents int64,
	status Status,
	createdAt, updatedAt time.Time,
) *Lesson {
	return &Lesson{
		id:               id,
		instructorID:     instructorID,
		instructorUserID: instructorUserID,
		learnerID:        learnerID,
		rentalID:         rentalID,
		instrument:       instrument,
		skillLevel:       skillLevel,
		sessionType:      sessionType,
		scheduledAt:      scheduledAt,
		durationMinutes:  durationMinutes,
		hourlyRateCents:  hourlyRateCents,
		priceCents:       priceCents,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (l *Lesson) ID() uuid.UUID               { return l.id }
func (l *Lesson) InstructorID() uuid.UUID     { return l.instructorID }
func (l *Lesson) InstructorUserID() uuid.UUID { return l.instructorUserID }
func (l *Lesson) LearnerID() uuid.UUID        { return l.learnerID }
func (l *Lesson) RentalID() *uuid.UUID        { return l.rentalID }
func (l *Lesson) Instrument() string          { return l.instrument }
func (l *Lesson) SkillLevel() string          { return l.skillLevel }
func (l *Lesson) SessionType() SessionType    { return l.sessionType }
func (l *Lesson) ScheduledAt() time.Time      { return l.scheduledAt }
func (l *Lesson) DurationMinutes() int        { return l.durationMinutes }
func (l *Lesson) HourlyRateCents() int64      { return l.hourlyRateCents }
func (l *Lesson) PriceCents() int64           { return l.priceCents }
func (l *Lesson) Status() Status              { return l.status }
func (l *Lesson) CreatedAt() time.Time        { return l.createdAt }
func (l *Lesson) UpdatedAt() time.Time        { return l.updatedAt }

func (l *Lesson) EndsAt() time.Time {
	return l.scheduledAt.Add(time.Duration(l.durationMinutes) * time.Minute)
}

func (l *Lesson) IsParty(userID uuid.UUID) bool {
	return l.learnerID == userID || l.instructorUserID == userID
}
