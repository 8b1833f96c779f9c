package response

import (
	"time"

	"tarumbeta-server/internal/usecase/queries"

	"github.com/google/uuid"
)

type LessonResponse struct {
	ID              uuid.UUID  `json:"id"`
	InstructorID    uuid.UUID  `json:"instructor_id"`
	InstructorName  string     `json:"instructor_name"`
	LearnerID       uuid.UUID  `json:"learner_id"`
	RentalID        *uuid.UUID `json:"rental_id,omitempty"`
	Instrument      string     `json:"instrument"`
	SkillLevel      string     `json:"skill_level"`
	SessionType     string     `json:"session_type"`
	ScheduledAt     time.Time  `json:"scheduled_at"`
	DurationMinutes int        `json:"duration_minutes"`
	PriceCents      int64      `json:"price_cents"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type CreateLessonResponse struct {
	LessonID   uuid.UUID `json:"lesson_id"`
	PriceCents int64     `json:"price_cents"`
}

type InstructorEarningsResponse struct {
	TotalEarningsCents int64 `json:"total_earnings_cents"`
}

func FromLessonView(v *queries.LessonView) *LessonResponse {
	return &LessonResponse{
		ID:              v.ID,
		InstructorID:    v.InstructorID,
		InstructorName:  v.InstructorName,
		LearnerID:       v.LearnerID,
		RentalID:        v.RentalID,
		Instrument:      v.Instrument,
		SkillLevel:      v.SkillLevel,
		SessionType:     v.SessionType,
		ScheduledAt:     v.ScheduledAt,
		DurationMinutes: v.DurationMinutes,
		PriceCents:      v.PriceCents,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromLessonViews(views []*queries.LessonView) []*LessonResponse {
	responses := make([]*LessonResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromLessonView(v))
	}
	return responses
}
