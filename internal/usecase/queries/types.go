package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// ListingView represents read-optimized instrument listing data
type ListingView struct {
	ID                uuid.UUID `json:"id"`
	OwnerID           uuid.UUID `json:"owner_id"`
	Name              string    `json:"name"`
	InstrumentType    string    `json:"instrument_type"`
	Category          string    `json:"category"`
	Condition         string    `json:"condition"`
	Description       string    `json:"description"`
	Location          string    `json:"location"`
	DailyPriceCents   int64     `json:"daily_price_cents"`
	WeeklyPriceCents  *int64    `json:"weekly_price_cents,omitempty"`
	MonthlyPriceCents *int64    `json:"monthly_price_cents,omitempty"`
	IsAvailable       bool      `json:"is_available"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ListingFilter narrows the public listing browse.
type ListingFilter struct {
	InstrumentType string
	Category       string
	Location       string
}

// RentalView represents read-optimized rental data
type RentalView struct {
	ID              uuid.UUID  `json:"id"`
	InstrumentID    uuid.UUID  `json:"instrument_id"`
	InstrumentName  string     `json:"instrument_name"`
	RenterID        uuid.UUID  `json:"renter_id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	Period          string     `json:"period"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	TotalPriceCents int64      `json:"total_price_cents"`
	Status          string     `json:"status"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	PickedUpAt      *time.Time `json:"picked_up_at,omitempty"`
	ReturnedAt      *time.Time `json:"returned_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// LessonView represents read-optimized lesson data
type LessonView struct {
	ID               uuid.UUID  `json:"id"`
	InstructorID     uuid.UUID  `json:"instructor_id"`
	InstructorUserID uuid.UUID  `json:"instructor_user_id"`
	InstructorName   string     `json:"instructor_name"`
	LearnerID        uuid.UUID  `json:"learner_id"`
	RentalID         *uuid.UUID `json:"rental_id,omitempty"`
	Instrument       string     `json:"instrument"`
	SkillLevel       string     `json:"skill_level"`
	SessionType      string     `json:"session_type"`
	ScheduledAt      time.Time  `json:"scheduled_at"`
	DurationMinutes  int        `json:"duration_minutes"`
	HourlyRateCents  int64      `json:"hourly_rate_cents"`
	PriceCents       int64      `json:"price_cents"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// InstructorProfileView represents read-optimized instructor profile data
type InstructorProfileView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	FullName        string    `json:"full_name"`
	Instrument      string    `json:"instrument"`
	Bio             string    `json:"bio"`
	ExperienceYears int       `json:"experience_years"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	Genres          []string  `json:"genres"`
	Certifications  string    `json:"certifications"`
	IsVerified      bool      `json:"is_verified"`
	Rating          float64   `json:"rating"`
	TotalStudents   int       `json:"total_students"`
	CreatedAt       time.Time `json:"created_at"`
}

// ApplicationView represents read-optimized instructor application data
type ApplicationView struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	ApplicantName   string     `json:"applicant_name"`
	Instrument      string     `json:"instrument"`
	Bio             string     `json:"bio"`
	ExperienceYears int        `json:"experience_years"`
	HourlyRateCents int64      `json:"hourly_rate_cents"`
	Genres          []string   `json:"genres"`
	Certifications  string     `json:"certifications"`
	Status          string     `json:"status"`
	ReviewedBy      *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// MatchRecordView represents a persisted match suggestion
type MatchRecordView struct {
	ID             uuid.UUID `json:"id"`
	LearnerID      uuid.UUID `json:"learner_id"`
	InstructorID   uuid.UUID `json:"instructor_id"`
	InstructorName string    `json:"instructor_name"`
	MatchScore     int       `json:"match_score"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// AdminStatsView aggregates the admin dashboard counters
type AdminStatsView struct {
	TotalUsers        int64 `json:"total_users"`
	TotalInstructors  int64 `json:"total_instructors"`
	TotalListings     int64 `json:"total_listings"`
	TotalRentals      int64 `json:"total_rentals"`
	ActiveRentals     int64 `json:"active_rentals"`
	TotalRevenueCents int64 `json:"total_revenue_cents"`
}
