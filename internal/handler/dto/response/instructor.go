package response

import (
	"time"

	"tarumbeta-server/internal/usecase/queries"

	"github.com/google/uuid"
)

type InstructorProfileResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	FullName        string    `json:"full_name"`
	Instrument      string    `json:"instrument"`
	Bio             string    `json:"bio"`
	ExperienceYears int       `json:"experience_years"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	Genres          []string  `json:"genres"`
	Certifications  string    `json:"certifications"`
	Rating          float64   `json:"rating"`
	TotalStudents   int       `json:"total_students"`
	CreatedAt       time.Time `json:"created_at"`
}

type SubmitApplicationResponse struct {
	ApplicationID uuid.UUID `json:"application_id"`
}

type ApplicationResponse struct {
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

func FromProfileView(v *queries.InstructorProfileView) *InstructorProfileResponse {
	return &InstructorProfileResponse{
		ID:              v.ID,
		UserID:          v.UserID,
		FullName:        v.FullName,
		Instrument:      v.Instrument,
		Bio:             v.Bio,
		ExperienceYears: v.ExperienceYears,
		HourlyRateCents: v.HourlyRateCents,
		Genres:          v.Genres,
		Certifications:  v.Certifications,
		Rating:          v.Rating,
		TotalStudents:   v.TotalStudents,
		CreatedAt:       v.CreatedAt,
	}
}

func FromProfileViews(views []*queries.InstructorProfileView) []*InstructorProfileResponse {
	responses := make([]*InstructorProfileResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromProfileView(v))
	}
	return responses
}

func FromApplicationView(v *queries.ApplicationView) *ApplicationResponse {
	return &ApplicationResponse{
		ID:              v.ID,
		UserID:          v.UserID,
		ApplicantName:   v.ApplicantName,
		Instrument:      v.Instrument,
		Bio:             v.Bio,
		ExperienceYears: v.ExperienceYears,
		HourlyRateCents: v.HourlyRateCents,
		Genres:          v.Genres,
		Certifications:  v.Certifications,
		Status:          v.Status,
		ReviewedBy:      v.ReviewedBy,
		ReviewedAt:      v.ReviewedAt,
		CreatedAt:       v.CreatedAt,
	}
}

func FromApplicationViews(views []*queries.ApplicationView) []*ApplicationResponse {
	responses := make([]*ApplicationResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromApplicationView(v))
	}
	return responses
}
