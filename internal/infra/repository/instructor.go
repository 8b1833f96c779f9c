package repository

import (
	"context"
	"time"

	"tarumbeta-server/internal/domain/instructor"
	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/infra/db"

	"github.com/google/uuid"
)

type InstructorRepository struct{}

func NewInstructorRepository() *InstructorRepository {
	return &InstructorRepository{}
}

func (r *InstructorRepository) CreateApplication(ctx context.Context, tx db.DBTX, app *instructor.Application) (uuid.UUID, error) {
	const query = `
		INSERT INTO instructor_applications (
			id, user_id, instrument, bio, experience_years, hourly_rate_cents,
			genres, certifications, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		app.ID(), app.UserID(), app.Instrument(), app.Bio(),
		app.ExperienceYears(), app.HourlyRateCents(),
		app.Genres(), app.Certifications(), app.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.ClassifyPgErr("failed to create instructor application", err)
	}

	return id, nil
}

func (r *InstructorRepository) UpdateApplicationStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to instructor.ApplicationStatus, reviewedBy uuid.UUID, reviewedAt time.Time) error {
	const query = `
		UPDATE instructor_applications
		SET status = $2, reviewed_by = $4, reviewed_at = $5, updated_at = now()
		WHERE id = $1 AND status = $3`

	tag, err := tx.Exec(ctx, query, id, to.String(), from.String(), reviewedBy, reviewedAt)
	if err != nil {
		return infra.ClassifyPgErr("failed to update application status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("application not in expected status", nil, infra.KindConflict)
	}
	return nil
}

func (r *InstructorRepository) HasOpenApplication(ctx context.Context, tx db.DBTX, userID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM instructor_applications
			WHERE user_id = $1 AND status = 'pending'
		)`

	var exists bool
	if err := tx.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, infra.ClassifyPgErr("failed to check open application", err)
	}
	return exists, nil
}

func (r *InstructorRepository) CreateProfile(ctx context.Context, tx db.DBTX, p *instructor.Profile) (uuid.UUID, error) {
	const query = `
		INSERT INTO instructor_profiles (
			id, user_id, instrument, bio, experience_years, hourly_rate_cents,
			genres, certifications, is_verified, rating, total_students,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		p.ID(), p.UserID(), p.Instrument(), p.Bio(),
		p.ExperienceYears(), p.HourlyRateCents(),
		p.Genres(), p.Certifications(),
		p.IsVerified(), p.Rating(), p.TotalStudents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.ClassifyPgErr("failed to create instructor profile", err)
	}

	return id, nil
}

// LockProfile acquires the instructor profile row for the rest of the
// transaction, serializing lesson creators on the same calendar.
func (r *InstructorRepository) LockProfile(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `SELECT id FROM instructor_profiles WHERE id = $1 FOR UPDATE`

	var locked uuid.UUID
	if err := tx.QueryRow(ctx, query, id).Scan(&locked); err != nil {
		return infra.ClassifyPgErr("failed to lock instructor profile", err)
	}
	return nil
}

func (r *InstructorRepository) HasProfile(ctx context.Context, tx db.DBTX, userID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM instructor_profiles WHERE user_id = $1
		)`

	var exists bool
	if err := tx.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, infra.ClassifyPgErr("failed to check instructor profile", err)
	}
	return exists, nil
}
