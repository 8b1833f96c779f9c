package repository

import (
	"context"
	"time"

	"tarumbeta-server/internal/domain/lesson"
	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/infra/db"
	"tarumbeta-server/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LessonRepository struct{}

func NewLessonRepository() *LessonRepository {
	return &LessonRepository{}
}

func (r *LessonRepository) Create(ctx context.Context, tx db.DBTX, l *lesson.Lesson) (uuid.UUID, error) {
	const query = `
		INSERT INTO lessons (
			id, instructor_id, instructor_user_id, learner_id, rental_id,
			instrument, skill_level, session_type, scheduled_at, duration_minutes,
			hourly_rate_cents, price_cents, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now())
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		l.ID(), l.InstructorID(), l.InstructorUserID(), l.LearnerID(),
		pgconv.UUIDPtrToPgtype(l.RentalID()),
		l.Instrument(), l.SkillLevel(), l.SessionType().String(),
		l.ScheduledAt(), l.DurationMinutes(),
		l.HourlyRateCents(), l.PriceCents(), l.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.ClassifyPgErr("failed to create lesson", err)
	}

	return id, nil
}

func (r *LessonRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to lesson.Status) error {
	const query = `
		UPDATE lessons
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status = $3`

	tag, err := tx.Exec(ctx, query, id, to.String(), from.String())
	if err != nil {
		return infra.ClassifyPgErr("failed to update lesson status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("lesson not in expected status", nil, infra.KindConflict)
	}
	return nil
}

// ExistsOverlapping reports whether the instructor already has a
// scheduled or approved lesson intersecting [start, end).
func (r *LessonRepository) ExistsOverlapping(ctx context.Context, tx db.DBTX, instructorID uuid.UUID, start, end time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM lessons
			WHERE instructor_id = $1
			  AND status = ANY($2)
			  AND scheduled_at < $4
			  AND scheduled_at + make_interval(mins => duration_minutes) > $3
		)`

	statuses := make([]string, 0, 2)
	for _, s := range lesson.BlockingStatuses() {
		statuses = append(statuses, s.String())
	}

	var exists bool
	err := tx.QueryRow(ctx, query, instructorID, statuses, start, end).Scan(&exists)
	if err != nil {
		return false, infra.ClassifyPgErr("failed to check lesson overlap", err)
	}
	return exists, nil
}
