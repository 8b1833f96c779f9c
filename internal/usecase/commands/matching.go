package commands

import (
	"context"
	"log/slog"

	"tarumbeta-server/internal/domain/matching"
	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/pkg/errs"
	"tarumbeta-server/internal/usecase/shared"

	"github.com/google/uuid"
)

const suggestionLimit = 5

// CandidateSource loads the verified instructor pool for scoring.
type CandidateSource interface {
	ListCandidates(ctx context.Context, instrument string, minRating float64) ([]matching.Candidate, error)
}

// CandidateScorer is the external scoring model. A nil scorer (or any
// scorer error) means the local weighted scorer decides alone.
type CandidateScorer interface {
	Score(ctx context.Context, profile matching.LearnerProfile, candidates []matching.Candidate) ([]matching.Match, error)
}

type MatchingCommands interface {
	FindMatches(ctx context.Context, learnerID uuid.UUID, profile matching.LearnerProfile) ([]matching.Match, error)
	AcceptMatch(ctx context.Context, learnerID, matchID uuid.UUID) error
}

type matchingUseCaseImpl struct {
	uow        shared.UnitOfWork
	candidates CandidateSource
	scorer     CandidateScorer
	local      matching.LocalScorer
}

func NewMatchingUseCase(uow shared.UnitOfWork, candidates CandidateSource, scorer CandidateScorer) MatchingCommands {
	return &matchingUseCaseImpl{
		uow:        uow,
		candidates: candidates,
		scorer:     scorer,
	}
}

func (uc *matchingUseCaseImpl) FindMatches(ctx context.Context, learnerID uuid.UUID, profile matching.LearnerProfile) ([]matching.Match, error) {
	if err := profile.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	candidates, err := uc.candidates.ListCandidates(ctx, profile.Instrument, profile.MinRating)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []matching.Match{}, nil
	}

	matches := uc.score(ctx, profile, candidates)
	matching.Rank(matches)
	top := matching.Top(matches, suggestionLimit)

	// Suggestions are a convenience record; losing them must not cost
	// the learner the response they already have.
	if err := uc.persistSuggestions(ctx, learnerID, top); err != nil {
		slog.Warn("failed to persist match suggestions",
			"learner_id", learnerID,
			"error", err.Error())
	}

	return top, nil
}

func (uc *matchingUseCaseImpl) score(ctx context.Context, profile matching.LearnerProfile, candidates []matching.Candidate) []matching.Match {
	if uc.scorer != nil {
		matches, err := uc.scorer.Score(ctx, profile, candidates)
		if err == nil {
			return matches
		}
		slog.Warn("scoring service unavailable, falling back to local scorer",
			"error", err.Error())
	}

	matches := make([]matching.Match, 0, len(candidates))
	for _, cand := range candidates {
		score, reasons := uc.local.Score(profile, cand)
		matches = append(matches, matching.NewMatch(cand, score, reasons))
	}
	return matches
}

func (uc *matchingUseCaseImpl) persistSuggestions(ctx context.Context, learnerID uuid.UUID, matches []matching.Match) error {
	if len(matches) == 0 {
		return nil
	}
	suggestions := make([]shared.MatchSuggestion, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, shared.MatchSuggestion{
			InstructorProfileID: m.Candidate.ProfileID,
			Score:               m.Score,
		})
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Matches().CreateSuggestions(ctx, tx.DB(), learnerID, suggestions)
	})
}

func (uc *matchingUseCaseImpl) AcceptMatch(ctx context.Context, learnerID, matchID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Matches().Accept(ctx, tx.DB(), matchID, learnerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrMatchNotFound)
			}
			return err
		}
		return nil
	})
}
