package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/infra/db"
	"tarumbeta-server/internal/pkg/pgconv"
	"tarumbeta-server/internal/usecase/queries"
)

type MatchReadStore struct {
	db db.DBTX
}

func NewMatchReadStore(db db.DBTX) *MatchReadStore {
	return &MatchReadStore{db: db}
}

func (r *MatchReadStore) ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]*queries.MatchRecordView, error) {
	const query = `
		SELECT m.id, m.learner_id, m.instructor_id, u.full_name, m.match_score, m.status, m.created_at
		FROM instructor_matches m
		JOIN instructor_profiles p ON p.id = m.instructor_id
		JOIN users u ON u.id = p.user_id
		WHERE m.learner_id = $1
		ORDER BY m.created_at DESC`

	rows, err := r.db.Query(ctx, query, learnerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list match history", err)
	}
	defer rows.Close()

	views := make([]*queries.MatchRecordView, 0)
	for rows.Next() {
		var view queries.MatchRecordView
		var createdAt pgtype.Timestamptz
		err := rows.Scan(
			&view.ID, &view.LearnerID, &view.InstructorID, &view.InstructorName,
			&view.MatchScore, &view.Status, &createdAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan match record", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate match history", err)
	}
	return views, nil
}
