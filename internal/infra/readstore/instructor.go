package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"tarumbeta-server/internal/domain/matching"
	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/infra/db"
	"tarumbeta-server/internal/pkg/pgconv"
	"tarumbeta-server/internal/usecase/queries"
)

const profileColumns = `
	p.id, p.user_id, u.full_name, p.instrument, p.bio, p.experience_years,
	p.hourly_rate_cents, COALESCE(p.genres, '{}'), p.certifications, p.is_verified,
	p.rating, p.total_students, p.created_at`

const profileFrom = ` FROM instructor_profiles p JOIN users u ON u.id = p.user_id`

type InstructorReadStore struct {
	db db.DBTX
}

func NewInstructorReadStore(db db.DBTX) *InstructorReadStore {
	return &InstructorReadStore{db: db}
}

func (r *InstructorReadStore) FindProfileByID(ctx context.Context, id uuid.UUID) (*queries.InstructorProfileView, error) {
	query := `SELECT` + profileColumns + profileFrom + ` WHERE p.id = $1`

	view, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("instructor profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find instructor profile", err)
	}
	return view, nil
}

func (r *InstructorReadStore) ListVerified(ctx context.Context, instrument string) ([]*queries.InstructorProfileView, error) {
	query := `SELECT` + profileColumns + profileFrom + ` WHERE p.is_verified = TRUE`
	args := []any{}
	if instrument != "" {
		args = append(args, instrument)
		query += ` AND p.instrument = $1`
	}
	query += ` ORDER BY p.rating DESC, p.total_students DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list instructor profiles", err)
	}
	defer rows.Close()

	views := make([]*queries.InstructorProfileView, 0)
	for rows.Next() {
		view, err := scanProfile(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan instructor profile", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate instructor profiles", err)
	}
	return views, nil
}

// ListCandidates loads the verified instructor pool for matching. The
// filters mirror what a learner can constrain: instrument and minimum
// rating. Location and budget stay scoring signals, not filters.
func (r *InstructorReadStore) ListCandidates(ctx context.Context, instrument string, minRating float64) ([]matching.Candidate, error) {
	query := `
		SELECT p.id, p.user_id, u.full_name, p.instrument, p.bio, p.experience_years,
		       p.hourly_rate_cents, COALESCE(p.genres, '{}'), COALESCE(p.location, ''),
		       COALESCE(p.languages, '{}'), p.rating, p.total_students
		FROM instructor_profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.is_verified = TRUE AND p.rating >= $1`
	args := []any{minRating}
	if instrument != "" {
		args = append(args, instrument)
		query += ` AND p.instrument = $2`
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list matching candidates", err)
	}
	defer rows.Close()

	candidates := make([]matching.Candidate, 0)
	for rows.Next() {
		var cand matching.Candidate
		err := rows.Scan(
			&cand.ProfileID, &cand.UserID, &cand.FullName, &cand.Instrument, &cand.Bio,
			&cand.ExperienceYears, &cand.HourlyRateCents, &cand.Genres, &cand.Location,
			&cand.Languages, &cand.Rating, &cand.TotalStudents,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan matching candidate", err)
		}
		candidates = append(candidates, cand)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate matching candidates", err)
	}
	return candidates, nil
}

func (r *InstructorReadStore) ListPendingApplications(ctx context.Context) ([]*queries.ApplicationView, error) {
	const query = `
		SELECT a.id, a.user_id, u.full_name, a.instrument, a.bio, a.experience_years,
		       a.hourly_rate_cents, COALESCE(a.genres, '{}'), a.certifications, a.status,
		       a.reviewed_by, a.reviewed_at, a.created_at
		FROM instructor_applications a
		JOIN users u ON u.id = a.user_id
		WHERE a.status = 'pending'
		ORDER BY a.created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending applications", err)
	}
	defer rows.Close()

	views := make([]*queries.ApplicationView, 0)
	for rows.Next() {
		view, err := scanApplication(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan application", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate applications", err)
	}
	return views, nil
}

// FindApplicationByID backs command-side snapshot reads.
func (r *InstructorReadStore) FindApplicationByID(ctx context.Context, id uuid.UUID) (*queries.ApplicationView, error) {
	const query = `
		SELECT a.id, a.user_id, u.full_name, a.instrument, a.bio, a.experience_years,
		       a.hourly_rate_cents, COALESCE(a.genres, '{}'), a.certifications, a.status,
		       a.reviewed_by, a.reviewed_at, a.created_at
		FROM instructor_applications a
		JOIN users u ON u.id = a.user_id
		WHERE a.id = $1`

	view, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("application not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find application", err)
	}
	return view, nil
}

func scanProfile(row pgx.Row) (*queries.InstructorProfileView, error) {
	var view queries.InstructorProfileView
	var genres []string
	var createdAt pgtype.Timestamptz

	err := row.Scan(
		&view.ID, &view.UserID, &view.FullName, &view.Instrument, &view.Bio,
		&view.ExperienceYears, &view.HourlyRateCents, &genres, &view.Certifications,
		&view.IsVerified, &view.Rating, &view.TotalStudents, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	view.Genres = genres
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}

func scanApplication(row pgx.Row) (*queries.ApplicationView, error) {
	var view queries.ApplicationView
	var genres []string
	var reviewedBy pgtype.UUID
	var reviewedAt, createdAt pgtype.Timestamptz

	err := row.Scan(
		&view.ID, &view.UserID, &view.ApplicantName, &view.Instrument, &view.Bio,
		&view.ExperienceYears, &view.HourlyRateCents, &genres, &view.Certifications,
		&view.Status, &reviewedBy, &reviewedAt, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	view.Genres = genres
	view.ReviewedBy = pgconv.UUIDPtrFromPgtype(reviewedBy)
	view.ReviewedAt = pgconv.TimePtrFromPgtype(reviewedAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
