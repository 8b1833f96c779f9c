package queries

import (
	"context"

	"github.com/google/uuid"

	"tarumbeta-server/internal/domain/matching"
	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/pkg/errs"
)

type InstructorQueries interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*InstructorProfileView, error)
	ListVerified(ctx context.Context, instrument string) ([]*InstructorProfileView, error)
}

type InstructorReadStore interface {
	FindProfileByID(ctx context.Context, id uuid.UUID) (*InstructorProfileView, error)
	ListVerified(ctx context.Context, instrument string) ([]*InstructorProfileView, error)
	// ListCandidates loads the verified instructor pool as scoring
	// candidates, optionally narrowed by instrument and minimum rating.
	ListCandidates(ctx context.Context, instrument string, minRating float64) ([]matching.Candidate, error)
	ListPendingApplications(ctx context.Context) ([]*ApplicationView, error)
}

type instructorQueriesImpl struct {
	readStore InstructorReadStore
}

func NewInstructorQueries(readStore InstructorReadStore) InstructorQueries {
	return &instructorQueriesImpl{
		readStore: readStore,
	}
}

func (q *instructorQueriesImpl) GetProfile(ctx context.Context, id uuid.UUID) (*InstructorProfileView, error) {
	profile, err := q.readStore.FindProfileByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInstructorNotFound)
		}
		return nil, err
	}
	return profile, nil
}

func (q *instructorQueriesImpl) ListVerified(ctx context.Context, instrument string) ([]*InstructorProfileView, error) {
	return q.readStore.ListVerified(ctx, instrument)
}
