package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/infra/db"
	"tarumbeta-server/internal/pkg/pgconv"
	"tarumbeta-server/internal/usecase/queries"
)

const lessonColumns = `
	l.id, l.instructor_id, l.instructor_user_id, u.full_name, l.learner_id, l.rental_id,
	l.instrument, l.skill_level, l.session_type, l.scheduled_at, l.duration_minutes,
	l.hourly_rate_cents, l.price_cents, l.status, l.created_at, l.updated_at`

const lessonFrom = ` FROM lessons l JOIN users u ON u.id = l.instructor_user_id`

type LessonReadStore struct {
	db db.DBTX
}

func NewLessonReadStore(db db.DBTX) *LessonReadStore {
	return &LessonReadStore{db: db}
}

func (r *LessonReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LessonView, error) {
	query := `SELECT` + lessonColumns + lessonFrom + ` WHERE l.id = $1`

	view, err := scanLesson(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lesson not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lesson", err)
	}
	return view, nil
}

func (r *LessonReadStore) ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]*queries.LessonView, error) {
	query := `SELECT` + lessonColumns + lessonFrom + ` WHERE l.learner_id = $1 ORDER BY l.scheduled_at DESC`
	return r.list(ctx, query, learnerID)
}

func (r *LessonReadStore) ListByInstructorUser(ctx context.Context, instructorUserID uuid.UUID) ([]*queries.LessonView, error) {
	query := `SELECT` + lessonColumns + lessonFrom + ` WHERE l.instructor_user_id = $1 ORDER BY l.scheduled_at DESC`
	return r.list(ctx, query, instructorUserID)
}

func (r *LessonReadStore) SumCompletedByInstructorUser(ctx context.Context, instructorUserID uuid.UUID) (int64, error) {
	const query = `
		SELECT COALESCE(SUM(price_cents), 0)
		FROM lessons
		WHERE instructor_user_id = $1 AND status = 'completed'`

	var total int64
	if err := r.db.QueryRow(ctx, query, instructorUserID).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to sum instructor earnings", err)
	}
	return total, nil
}

func (r *LessonReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.LessonView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lessons", err)
	}
	defer rows.Close()

	views := make([]*queries.LessonView, 0)
	for rows.Next() {
		view, err := scanLesson(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan lesson", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate lessons", err)
	}
	return views, nil
}

func scanLesson(row pgx.Row) (*queries.LessonView, error) {
	var view queries.LessonView
	var rentalID pgtype.UUID
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(
		&view.ID, &view.InstructorID, &view.InstructorUserID, &view.InstructorName,
		&view.LearnerID, &rentalID,
		&view.Instrument, &view.SkillLevel, &view.SessionType,
		&view.ScheduledAt, &view.DurationMinutes,
		&view.HourlyRateCents, &view.PriceCents, &view.Status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.RentalID = pgconv.UUIDPtrFromPgtype(rentalID)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
