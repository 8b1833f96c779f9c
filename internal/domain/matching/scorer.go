package matching

import "strings"

// Scoring weights. The sum of the primary weights is 100 so a perfect
// candidate lands exactly at the top of the scale; overlap bonuses are
// clamped by NewMatch.
const (
	weightBudgetFit      = 30
	weightBudgetNear     = 15
	weightExperienceHigh = 20
	weightExperienceMid  = 10
	weightRatingHigh     = 20
	weightRatingMid      = 10
	weightSkillMatch     = 15
	weightStudents       = 10
	weightLocation       = 5
)

// LocalScorer is the rule-based scorer used when no external scoring
// model is configured or the model call fails. It is deterministic:
// identical inputs always produce identical scores and reasons.
type LocalScorer struct{}

func NewLocalScorer() LocalScorer {
	return LocalScorer{}
}

func (LocalScorer) Score(profile LearnerProfile, cand Candidate) (int, []string) {
	score := 0
	reasons := make([]string, 0, 4)

	if profile.BudgetCents > 0 {
		switch {
		case cand.HourlyRateCents <= profile.BudgetCents:
			score += weightBudgetFit
			reasons = append(reasons, "fits your budget")
		case cand.HourlyRateCents*100 <= profile.BudgetCents*120:
			score += weightBudgetNear
			reasons = append(reasons, "slightly above your budget")
		}
	}

	switch {
	case cand.ExperienceYears >= 5:
		score += weightExperienceHigh
		reasons = append(reasons, "5+ years of teaching experience")
	case cand.ExperienceYears >= 2:
		score += weightExperienceMid
		reasons = append(reasons, "2+ years of teaching experience")
	}

	switch {
	case cand.Rating >= 4.5:
		score += weightRatingHigh
		reasons = append(reasons, "highly rated by students")
	case cand.Rating >= 3.5:
		score += weightRatingMid
		reasons = append(reasons, "well rated by students")
	}

	if teachesLevel(profile.SkillLevel, cand.ExperienceYears) {
		score += weightSkillMatch
		reasons = append(reasons, "comfortable teaching your level")
	}

	if cand.TotalStudents > 10 {
		score += weightStudents
		reasons = append(reasons, "experienced with many students")
	}

	if matchesLocation(profile.Location, cand.Location) {
		score += weightLocation
		reasons = append(reasons, "teaches in your area")
	}

	if bonus := overlapBonus(profile, cand); bonus > 0 {
		score += bonus
		reasons = append(reasons, "shares your musical interests")
	}

	return score, reasons
}

// teachesLevel maps the learner's level onto the experience an
// instructor needs to teach it.
func teachesLevel(skillLevel string, experienceYears int) bool {
	switch strings.ToLower(skillLevel) {
	case "beginner":
		return true
	case "intermediate":
		return experienceYears >= 2
	case "advanced":
		return experienceYears >= 5
	default:
		return false
	}
}

func matchesLocation(want, have string) bool {
	want = strings.ToLower(strings.TrimSpace(want))
	have = strings.ToLower(strings.TrimSpace(have))
	if want == "" || have == "" {
		return false
	}
	return strings.Contains(have, want) || strings.Contains(want, have)
}

// overlapBonus rewards shared genres and a common teaching language,
// capped so it stays a tiebreaker rather than a primary signal.
func overlapBonus(profile LearnerProfile, cand Candidate) int {
	bonus := 0
	shared := 0
	for _, g := range profile.Genres {
		for _, cg := range cand.Genres {
			if strings.EqualFold(g, cg) {
				shared++
				break
			}
		}
	}
	bonus += min(shared*2, 6)

	if profile.Language != "" {
		for _, l := range cand.Languages {
			if strings.EqualFold(l, profile.Language) {
				bonus += 2
				break
			}
		}
	}
	return bonus
}

// FallbackScore estimates a score from rating and experience alone,
// for candidates an external model returned without a usable score.
func FallbackScore(rating float64, experienceYears int) int {
	score := 70.0 + rating*5 + float64(experienceYears)*0.5
	if score > 95 {
		score = 95
	}
	return int(score)
}
