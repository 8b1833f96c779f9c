package instructor

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyInstrument   = errors.New("instrument must not be empty")
	ErrInvalidExperience = errors.New("experience years cannot be negative")
	ErrInvalidHourlyRate = errors.New("hourly rate must be positive")
)

const initialRating = 5.0

// Profile is a verified instructor's public teaching profile. It comes
// into existence only through application approval.
type Profile struct {
	id              uuid.UUID
	userID          uuid.UUID
	instrument      string
	bio             string
	experienceYears int
	hourlyRateCents int64
	genres          []string
	certifications  string
	isVerified      bool
	rating          float64
	totalStudents   int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewProfileFromApplication seeds the profile an approved application
// produces: verified, top rating, no students yet.
func NewProfileFromApplication(app *Application) *Profile {
	return &Profile{
		id:              uuid.New(),
		userID:          app.UserID(),
		instrument:      app.Instrument(),
		bio:             app.Bio(),
		experienceYears: app.ExperienceYears(),
		hourlyRateCents: app.HourlyRateCents(),
		genres:          app.Genres(),
		certifications:  app.Certifications(),
		isVerified:      true,
		rating:          initialRating,
		totalStudents:   0,
	}
}

func ReconstructProfile(
	id, userID uuid.UUID,
	instrument, bio string,
	experienceYears int,
	hourlyRateCents int64,
	genres []string,
	certifications string,
	isVerified bool,
	rating float64,
	totalStudents int,
	createdAt, updatedAt time.Time,
) *Profile {
	return &Profile{
		id:              id,
		userID:          userID,
		instrument:      instrument,
		bio:             bio,
		experienceYears: experienceYears,
		hourlyRateCents: hourlyRateCents,
		genres:          genres,
		certifications:  certifications,
		isVerified:      isVerified,
		rating:          rating,
		totalStudents:   totalStudents,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (p *Profile) ID() uuid.UUID          { return p.id }
func (p *Profile) UserID() uuid.UUID      { return p.userID }
func (p *Profile) Instrument() string     { return p.instrument }
func (p *Profile) Bio() string            { return p.bio }
func (p *Profile) ExperienceYears() int   { return p.experienceYears }
func (p *Profile) HourlyRateCents() int64 { return p.hourlyRateCents }
func (p *Profile) Genres() []string       { return p.genres }
func (p *Profile) Certifications() string { return p.certifications }
func (p *Profile) IsVerified() bool       { return p.isVerified }
func (p *Profile) Rating() float64        { return p.rating }
func (p *Profile) TotalStudents() int     { return p.totalStudents }
func (p *Profile) CreatedAt() time.Time   { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time   { return p.updatedAt }

// Application is a user's request to become an instructor. One open
// application per user; approval is a compound admin operation.
type Application struct {
	id              uuid.UUID
	userID          uuid.UUID
	instrument      string
	bio             string
	experienceYears int
	hourlyRateCents int64
	genres          []string
	certifications  string
	status          ApplicationStatus
	reviewedBy      *uuid.UUID
	reviewedAt      *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewApplication(
	userID uuid.UUID,
	instrument, bio string,
	experienceYears int,
	hourlyRateCents int64,
	genres []string,
	certifications string,
) (*Application, error) {
	instrument = strings.TrimSpace(instrument)
	if instrument == "" {
		return nil, ErrEmptyInstrument
	}
	if experienceYears < 0 {
		return nil, ErrInvalidExperience
	}
	if hourlyRateCents <= 0 {
		return nil, ErrInvalidHourlyRate
	}

	return &Application{
		id:              uuid.New(),
		userID:          userID,
		instrument:      instrument,
		bio:             bio,
		experienceYears: experienceYears,
		hourlyRateCents: hourlyRateCents,
		genres:          genres,
		certifications:  certifications,
		status:          ApplicationPending,
	}, nil
}

func ReconstructApplication(
	id, userID uuid.UUID,
	instrument, bio string,
	experienceYears int,
	hourlyRateCents int64,
	genres []string,
	certifications string,
	status ApplicationStatus,
	reviewedBy *uuid.UUID,
	reviewedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Application {
	return &Application{
		id:              id,
		userID:          userID,
		instrument:      instrument,
		bio:             bio,
		experienceYears: experienceYears,
		hourlyRateCents: hourlyRateCents,
		genres:          genres,
		certifications:  certifications,
		status:          status,
		reviewedBy:      reviewedBy,
		reviewedAt:      reviewedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (a *Application) ID() uuid.UUID             { return a.id }
func (a *Application) UserID() uuid.UUID         { return a.userID }
func (a *Application) Instrument() string        { return a.instrument }
func (a *Application) Bio() string               { return a.bio }
func (a *Application) ExperienceYears() int      { return a.experienceYears }
func (a *Application) HourlyRateCents() int64    { return a.hourlyRateCents }
func (a *Application) Genres() []string          { return a.genres }
func (a *Application) Certifications() string    { return a.certifications }
func (a *Application) Status() ApplicationStatus { return a.status }
func (a *Application) ReviewedBy() *uuid.UUID    { return a.reviewedBy }
func (a *Application) ReviewedAt() *time.Time    { return a.reviewedAt }
func (a *Application) CreatedAt() time.Time      { return a.createdAt }
func (a *Application) UpdatedAt() time.Time      { return a.updatedAt }
