package queries

import (
	"context"

	"github.com/google/uuid"
)

type MatchingQueries interface {
	History(ctx context.Context, learnerID uuid.UUID) ([]*MatchRecordView, error)
}

type MatchReadStore interface {
	ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]*MatchRecordView, error)
}

type matchingQueriesImpl struct {
	readStore MatchReadStore
}

func NewMatchingQueries(readStore MatchReadStore) MatchingQueries {
	return &matchingQueriesImpl{
		readStore: readStore,
	}
}

func (q *matchingQueriesImpl) History(ctx context.Context, learnerID uuid.UUID) ([]*MatchRecordView, error) {
	return q.readStore.ListByLearner(ctx, learnerID)
}
