package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateLessonRequest struct {
	InstructorProfileID uuid.UUID  `json:"instructor_profile_id" binding:"required"`
	RentalID            *uuid.UUID `json:"rental_id,omitempty"`
	Instrument          string     `json:"instrument" binding:"required"`
	SkillLevel          string     `json:"skill_level" binding:"required,oneof=beginner intermediate advanced"`
	SessionType         string     `json:"session_type" binding:"required,oneof=online in_person"`
	ScheduledAt         time.Time  `json:"scheduled_at" binding:"required"`
	DurationMinutes     int        `json:"duration_minutes" binding:"required,oneof=30 60 90 120"`
}
