package repository

import (
	"context"

	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/infra/db"
	"tarumbeta-server/internal/usecase/shared"

	"github.com/google/uuid"
)

type MatchRepository struct{}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{}
}

// CreateSuggestions records recommended instructors for a learner.
// Re-suggesting an existing pair is a no-op so repeated searches never
// fail or duplicate history.
func (r *MatchRepository) CreateSuggestions(ctx context.Context, tx db.DBTX, learnerID uuid.UUID, suggestions []shared.MatchSuggestion) error {
	const query = `
		INSERT INTO instructor_matches (id, learner_id, instructor_id, match_score, status, created_at)
		VALUES ($1, $2, $3, $4, 'suggested', now())
		ON CONFLICT (learner_id, instructor_id) DO NOTHING`

	for _, s := range suggestions {
		if _, err := tx.Exec(ctx, query, uuid.New(), learnerID, s.InstructorProfileID, s.Score); err != nil {
			return infra.ClassifyPgErr("failed to record match suggestion", err)
		}
	}
	return nil
}

func (r *MatchRepository) Accept(ctx context.Context, tx db.DBTX, matchID, learnerID uuid.UUID) error {
	const query = `
		UPDATE instructor_matches
		SET status = 'accepted'
		WHERE id = $1 AND learner_id = $2`

	tag, err := tx.Exec(ctx, query, matchID, learnerID)
	if err != nil {
		return infra.ClassifyPgErr("failed to accept match", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("match not found", nil, infra.KindNotFound)
	}
	return nil
}
