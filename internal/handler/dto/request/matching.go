package request

import (
	"tarumbeta-server/internal/domain/matching"
)

type FindMatchesRequest struct {
	Instrument  string   `json:"instrument" binding:"required"`
	SkillLevel  string   `json:"skill_level" binding:"required,oneof=beginner intermediate advanced"`
	Language    string   `json:"language"`
	Goal        string   `json:"goal"`
	Genres      []string `json:"genres"`
	Location    string   `json:"location"`
	MinRating   float64  `json:"min_rating" binding:"omitempty,gte=0,lte=5"`
	BudgetCents int64    `json:"budget_cents" binding:"omitempty,gte=0"`
}

func (r FindMatchesRequest) ToDomain() matching.LearnerProfile {
	return matching.LearnerProfile{
		Instrument:  r.Instrument,
		SkillLevel:  r.SkillLevel,
		Language:    r.Language,
		Goal:        r.Goal,
		Genres:      r.Genres,
		Location:    r.Location,
		MinRating:   r.MinRating,
		BudgetCents: r.BudgetCents,
	}
}
