package matching

import (
	"strings"

	"github.com/google/uuid"

	"tarumbeta-server/internal/pkg/errs"
)

// LearnerProfile carries the preferences a learner submits when asking
// for instructor recommendations. Zero values mean "no preference".
type LearnerProfile struct {
	Instrument  string
	SkillLevel  string
	Language    string
	Goal        string
	Genres      []string
	Location    string
	MinRating   float64
	BudgetCents int64
}

func (p LearnerProfile) Validate() error {
	if strings.TrimSpace(p.Instrument) == "" {
		return errs.New("instrument is required")
	}
	if strings.TrimSpace(p.SkillLevel) == "" {
		return errs.New("skill level is required")
	}
	if p.MinRating < 0 || p.MinRating > 5 {
		return errs.New("minimum rating must be between 0 and 5")
	}
	if p.BudgetCents < 0 {
		return errs.New("budget must not be negative")
	}
	return nil
}

// Candidate is the instructor snapshot that enters scoring.
type Candidate struct {
	ProfileID       uuid.UUID
	UserID          uuid.UUID
	FullName        string
	Instrument      string
	Bio             string
	ExperienceYears int
	HourlyRateCents int64
	Genres          []string
	Languages       []string
	Location        string
	Rating          float64
	TotalStudents   int
}

type Strength string

const (
	StrengthExcellent Strength = "excellent"
	StrengthGreat     Strength = "great"
	StrengthGood      Strength = "good"
	StrengthFair      Strength = "fair"
)

// StrengthForScore buckets a 0-100 score into a recommendation label.
func StrengthForScore(score int) Strength {
	switch {
	case score >= 80:
		return StrengthExcellent
	case score >= 70:
		return StrengthGreat
	case score >= 60:
		return StrengthGood
	default:
		return StrengthFair
	}
}

// Match is a scored and labelled candidate.
type Match struct {
	Candidate
	Score    int
	Reasons  []string
	Strength Strength
}

func NewMatch(cand Candidate, score int, reasons []string) Match {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return Match{
		Candidate: cand,
		Score:     score,
		Reasons:   reasons,
		Strength:  StrengthForScore(score),
	}
}
