package response

import (
	"time"

	"tarumbeta-server/internal/domain/matching"
	"tarumbeta-server/internal/usecase/queries"

	"github.com/google/uuid"
)

type MatchResponse struct {
	InstructorProfileID uuid.UUID `json:"instructor_profile_id"`
	FullName            string    `json:"full_name"`
	Instrument          string    `json:"instrument"`
	HourlyRateCents     int64     `json:"hourly_rate_cents"`
	Rating              float64   `json:"rating"`
	TotalStudents       int       `json:"total_students"`
	Score               int       `json:"score"`
	Strength            string    `json:"strength"`
	Reasons             []string  `json:"reasons"`
}

type MatchRecordResponse struct {
	ID             uuid.UUID `json:"id"`
	InstructorID   uuid.UUID `json:"instructor_id"`
	InstructorName string    `json:"instructor_name"`
	MatchScore     int       `json:"match_score"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromMatch(m matching.Match) *MatchResponse {
	return &MatchResponse{
		InstructorProfileID: m.ProfileID,
		FullName:            m.FullName,
		Instrument:          m.Instrument,
		HourlyRateCents:     m.HourlyRateCents,
		Rating:              m.Rating,
		TotalStudents:       m.TotalStudents,
		Score:               m.Score,
		Strength:            string(m.Strength),
		Reasons:             m.Reasons,
	}
}

func FromMatches(matches []matching.Match) []*MatchResponse {
	responses := make([]*MatchResponse, 0, len(matches))
	for _, m := range matches {
		responses = append(responses, FromMatch(m))
	}
	return responses
}

func FromMatchRecordView(v *queries.MatchRecordView) *MatchRecordResponse {
	return &MatchRecordResponse{
		ID:             v.ID,
		InstructorID:   v.InstructorID,
		InstructorName: v.InstructorName,
		MatchScore:     v.MatchScore,
		Status:         v.Status,
		CreatedAt:      v.CreatedAt,
	}
}

func FromMatchRecordViews(views []*queries.MatchRecordView) []*MatchRecordResponse {
	responses := make([]*MatchRecordResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromMatchRecordView(v))
	}
	return responses
}
