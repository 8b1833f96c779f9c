package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tarumbeta-server/internal/domain/matching"
	"tarumbeta-server/internal/pkg/config"
	"tarumbeta-server/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrScoringUnavailable = errs.New("scoring service unavailable")

// Client calls the external instructor-scoring model. Every call is
// bounded by the configured timeout; callers degrade to local scoring
// on any error.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.ScoringConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type scoreRequest struct {
	Learner    learnerPayload     `json:"learner"`
	Candidates []candidatePayload `json:"candidates"`
}

type learnerPayload struct {
	Instrument  string   `json:"instrument"`
	SkillLevel  string   `json:"skill_level"`
	Language    string   `json:"language,omitempty"`
	Goal        string   `json:"goal,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Location    string   `json:"location,omitempty"`
	BudgetCents int64    `json:"budget_cents,omitempty"`
}

type candidatePayload struct {
	InstructorID    uuid.UUID `json:"instructor_id"`
	Instrument      string    `json:"instrument"`
	ExperienceYears int       `json:"experience_years"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	Genres          []string  `json:"genres,omitempty"`
	Languages       []string  `json:"languages,omitempty"`
	Location        string    `json:"location,omitempty"`
	Rating          float64   `json:"rating"`
	TotalStudents   int       `json:"total_students"`
}

type scoreResponse struct {
	Scores []struct {
		InstructorID uuid.UUID `json:"instructor_id"`
		Score        float64   `json:"score"`
		Reasons      []string  `json:"reasons"`
	} `json:"scores"`
}

// Score asks the model to score all candidates. Candidates the model
// leaves out are estimated from rating and experience instead of being
// dropped.
func (c *Client) Score(ctx context.Context, profile matching.LearnerProfile, candidates []matching.Candidate) ([]matching.Match, error) {
	req := scoreRequest{
		Learner: learnerPayload{
			Instrument:  profile.Instrument,
			SkillLevel:  profile.SkillLevel,
			Language:    profile.Language,
			Goal:        profile.Goal,
			Genres:      profile.Genres,
			Location:    profile.Location,
			BudgetCents: profile.BudgetCents,
		},
		Candidates: make([]candidatePayload, 0, len(candidates)),
	}
	for _, cand := range candidates {
		req.Candidates = append(req.Candidates, candidatePayload{
			InstructorID:    cand.ProfileID,
			Instrument:      cand.Instrument,
			ExperienceYears: cand.ExperienceYears,
			HourlyRateCents: cand.HourlyRateCents,
			Genres:          cand.Genres,
			Languages:       cand.Languages,
			Location:        cand.Location,
			Rating:          cand.Rating,
			TotalStudents:   cand.TotalStudents,
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, errs.Mark(err, ErrScoringUnavailable)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/score", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Mark(err, ErrScoringUnavailable)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errs.Mark(err, ErrScoringUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.Mark(fmt.Errorf("scoring service returned status %d", resp.StatusCode), ErrScoringUnavailable)
	}

	var parsed scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errs.Mark(err, ErrScoringUnavailable)
	}

	scores := make(map[uuid.UUID]struct {
		score   int
		reasons []string
	}, len(parsed.Scores))
	for _, s := range parsed.Scores {
		scores[s.InstructorID] = struct {
			score   int
			reasons []string
		}{score: int(s.Score), reasons: s.Reasons}
	}

	matches := make([]matching.Match, 0, len(candidates))
	for _, cand := range candidates {
		if s, ok := scores[cand.ProfileID]; ok {
			matches = append(matches, matching.NewMatch(cand, s.score, s.reasons))
			continue
		}
		fallback := matching.FallbackScore(cand.Rating, cand.ExperienceYears)
		matches = append(matches, matching.NewMatch(cand, fallback, []string{"estimated from rating and experience"}))
	}

	return matches, nil
}
