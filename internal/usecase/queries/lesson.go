package queries

import (
	"context"

	"github.com/google/uuid"

	"tarumbeta-server/internal/domain/user"
	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/pkg/errs"
)

type LessonQueries interface {
	GetLesson(ctx context.Context, id, requesterID uuid.UUID, requesterRole user.Role) (*LessonView, error)
	ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]*LessonView, error)
	ListByInstructor(ctx context.Context, instructorUserID uuid.UUID) ([]*LessonView, error)
	InstructorEarnings(ctx context.Context, instructorUserID uuid.UUID) (int64, error)
}

type LessonReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LessonView, error)
	ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]*LessonView, error)
	ListByInstructorUser(ctx context.Context, instructorUserID uuid.UUID) ([]*LessonView, error)
	SumCompletedByInstructorUser(ctx context.Context, instructorUserID uuid.UUID) (int64, error)
}

type lessonQueriesImpl struct {
	readStore LessonReadStore
}

func NewLessonQueries(readStore LessonReadStore) LessonQueries {
	return &lessonQueriesImpl{
		readStore: readStore,
	}
}

func (q *lessonQueriesImpl) GetLesson(ctx context.Context, id, requesterID uuid.UUID, requesterRole user.Role) (*LessonView, error) {
	lesson, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrLessonNotFound)
		}
		return nil, err
	}

	if requesterRole != user.RoleAdmin && lesson.LearnerID != requesterID && lesson.InstructorUserID != requesterID {
		return nil, errs.ErrActorNotAllowed
	}

	return lesson, nil
}

func (q *lessonQueriesImpl) ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]*LessonView, error) {
	return q.readStore.ListByLearner(ctx, learnerID)
}

func (q *lessonQueriesImpl) ListByInstructor(ctx context.Context, instructorUserID uuid.UUID) ([]*LessonView, error) {
	return q.readStore.ListByInstructorUser(ctx, instructorUserID)
}

func (q *lessonQueriesImpl) InstructorEarnings(ctx context.Context, instructorUserID uuid.UUID) (int64, error) {
	return q.readStore.SumCompletedByInstructorUser(ctx, instructorUserID)
}
