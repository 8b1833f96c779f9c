package shared

import (
	"context"
	"time"

	"tarumbeta-server/internal/domain/instructor"
	"tarumbeta-server/internal/domain/instrument"
	"tarumbeta-server/internal/domain/lesson"
	"tarumbeta-server/internal/domain/rental"
	"tarumbeta-server/internal/domain/user"
	"tarumbeta-server/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Listings() ListingRepository
	Rentals() RentalRepository
	Lessons() LessonRepository
	Instructors() InstructorRepository
	Matches() MatchRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ListingByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	RentalByID(ctx context.Context, id uuid.UUID) (*RentalSnapshot, error)
	LessonByID(ctx context.Context, id uuid.UUID) (*LessonSnapshot, error)
	ProfileByID(ctx context.Context, id uuid.UUID) (*ProfileSnapshot, error)
	ApplicationByID(ctx context.Context, id uuid.UUID) (*ApplicationSnapshot, error)
}

// Minimal snapshots for command-side validation. Write commands depend
// on these instead of read-side view types (CQRS separation).

type UserSnapshot struct {
	ID       uuid.UUID
	Role     string
	IsActive bool
}

type ListingSnapshot struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	DailyPriceCents   int64
	WeeklyPriceCents  *int64
	MonthlyPriceCents *int64
	IsAvailable       bool
}

type RentalSnapshot struct {
	ID           uuid.UUID
	InstrumentID uuid.UUID
	RenterID     uuid.UUID
	OwnerID      uuid.UUID
	Status       string
}

type LessonSnapshot struct {
	ID               uuid.UUID
	InstructorID     uuid.UUID
	InstructorUserID uuid.UUID
	LearnerID        uuid.UUID
	Status           string
	ScheduledAt      time.Time
	DurationMinutes  int
}

type ProfileSnapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	HourlyRateCents int64
	IsVerified      bool
}

type ApplicationSnapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Instrument      string
	Bio             string
	ExperienceYears int
	HourlyRateCents int64
	Genres          []string
	Certifications  string
	Status          string
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
	UpdateRole(ctx context.Context, tx db.DBTX, userID uuid.UUID, role user.Role) error
}

type ListingRepository interface {
	Create(ctx context.Context, tx db.DBTX, l *instrument.Listing) (uuid.UUID, error)
	SetAvailability(ctx context.Context, tx db.DBTX, id uuid.UUID, available bool) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// Lock holds the listing's row lock until the transaction ends.
	// Rental creation takes it before the overlap check so racing
	// creators for the same instrument serialize instead of both
	// passing the check.
	Lock(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

// RentalStatusUpdate applies one lifecycle edge. From is the expected
// prior status; the store refuses the write when it no longer holds.
type RentalStatusUpdate struct {
	ID              uuid.UUID
	From            rental.Status
	To              rental.Status
	RejectionReason *string
	PickedUpAt      *time.Time
	ReturnedAt      *time.Time
}

type RentalRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *rental.Rental) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, upd RentalStatusUpdate) error
	ExistsOverlapping(ctx context.Context, tx db.DBTX, instrumentID uuid.UUID, start, end time.Time) (bool, error)
}

type LessonRepository interface {
	Create(ctx context.Context, tx db.DBTX, l *lesson.Lesson) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to lesson.Status) error
	ExistsOverlapping(ctx context.Context, tx db.DBTX, instructorID uuid.UUID, start, end time.Time) (bool, error)
}

type InstructorRepository interface {
	CreateApplication(ctx context.Context, tx db.DBTX, app *instructor.Application) (uuid.UUID, error)
	UpdateApplicationStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to instructor.ApplicationStatus, reviewedBy uuid.UUID, reviewedAt time.Time) error
	HasOpenApplication(ctx context.Context, tx db.DBTX, userID uuid.UUID) (bool, error)
	CreateProfile(ctx context.Context, tx db.DBTX, p *instructor.Profile) (uuid.UUID, error)
	HasProfile(ctx context.Context, tx db.DBTX, userID uuid.UUID) (bool, error)
	// LockProfile holds the profile's row lock until the transaction
	// ends; lesson creation takes it before the calendar overlap check.
	LockProfile(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

// MatchSuggestion is a persisted recommendation row.
type MatchSuggestion struct {
	InstructorProfileID uuid.UUID
	Score               int
}

type MatchRepository interface {
	CreateSuggestions(ctx context.Context, tx db.DBTX, learnerID uuid.UUID, suggestions []MatchSuggestion) error
	Accept(ctx context.Context, tx db.DBTX, matchID, learnerID uuid.UUID) error
}
