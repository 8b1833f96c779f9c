//go:build unit || e2e

package builder

import (
	"tarumbeta-server/internal/domain/matching"

	"github.com/google/uuid"
)

// CandidateBuilder assembles the instructor snapshot that enters
// scoring. Defaults describe a strong candidate so tests mutate toward
// the edge they exercise.
type CandidateBuilder struct {
	ProfileID       uuid.UUID
	UserID          uuid.UUID
	FullName        string
	Instrument      string
	ExperienceYears int
	HourlyRateCents int64
	Genres          []string
	Languages       []string
	Location        string
	Rating          float64
	TotalStudents   int
}

func NewCandidateBuilder() *CandidateBuilder {
	return &CandidateBuilder{
		ProfileID:       uuid.New(),
		UserID:          uuid.New(),
		FullName:        "Amina Odhiambo",
		Instrument:      "guitar",
		ExperienceYears: 6,
		HourlyRateCents: 2500,
		Genres:          []string{"jazz", "soul"},
		Languages:       []string{"English", "Swahili"},
		Location:        "Nairobi",
		Rating:          4.8,
		TotalStudents:   25,
	}
}

func (c *CandidateBuilder) With(mutate func(*CandidateBuilder)) *CandidateBuilder {
	mutate(c)
	return c
}

func (c *CandidateBuilder) Build() matching.Candidate {
	return matching.Candidate{
		ProfileID:       c.ProfileID,
		UserID:          c.UserID,
		FullName:        c.FullName,
		Instrument:      c.Instrument,
		ExperienceYears: c.ExperienceYears,
		HourlyRateCents: c.HourlyRateCents,
		Genres:          c.Genres,
		Languages:       c.Languages,
		Location:        c.Location,
		Rating:          c.Rating,
		TotalStudents:   c.TotalStudents,
	}
}

// Fluent builder methods
func (c *CandidateBuilder) WithExperienceYears(years int) *CandidateBuilder {
	c.ExperienceYears = years
	return c
}

func (c *CandidateBuilder) WithHourlyRate(cents int64) *CandidateBuilder {
	c.HourlyRateCents = cents
	return c
}

func (c *CandidateBuilder) WithRating(rating float64) *CandidateBuilder {
	c.Rating = rating
	return c
}

func (c *CandidateBuilder) WithTotalStudents(n int) *CandidateBuilder {
	c.TotalStudents = n
	return c
}

func (c *CandidateBuilder) WithLocation(location string) *CandidateBuilder {
	c.Location = location
	return c
}

// LearnerProfileBuilder assembles the learner side of a match request.
type LearnerProfileBuilder struct {
	Instrument  string
	SkillLevel  string
	Language    string
	Goal        string
	Genres      []string
	Location    string
	MinRating   float64
	BudgetCents int64
}

func NewLearnerProfileBuilder() *LearnerProfileBuilder {
	return &LearnerProfileBuilder{
		Instrument:  "guitar",
		SkillLevel:  "beginner",
		Language:    "English",
		Goal:        "play in a band",
		Genres:      []string{"jazz"},
		Location:    "Nairobi",
		MinRating:   4.0,
		BudgetCents: 3000,
	}
}

func (p *LearnerProfileBuilder) With(mutate func(*LearnerProfileBuilder)) *LearnerProfileBuilder {
	mutate(p)
	return p
}

func (p *LearnerProfileBuilder) Build() matching.LearnerProfile {
	return matching.LearnerProfile{
		Instrument:  p.Instrument,
		SkillLevel:  p.SkillLevel,
		Language:    p.Language,
		Goal:        p.Goal,
		Genres:      p.Genres,
		Location:    p.Location,
		MinRating:   p.MinRating,
		BudgetCents: p.BudgetCents,
	}
}

// Fluent builder methods
func (p *LearnerProfileBuilder) WithSkillLevel(level string) *LearnerProfileBuilder {
	p.SkillLevel = level
	return p
}

func (p *LearnerProfileBuilder) WithBudget(cents int64) *LearnerProfileBuilder {
	p.BudgetCents = cents
	return p
}

func (p *LearnerProfileBuilder) WithGenres(genres ...string) *LearnerProfileBuilder {
	p.Genres = genres
	return p
}

func (p *LearnerProfileBuilder) WithLocation(location string) *LearnerProfileBuilder {
	p.Location = location
	return p
}
