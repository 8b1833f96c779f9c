//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"tarumbeta-server/internal/domain/matching"
	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/pkg/errs"
	"tarumbeta-server/internal/usecase/commands"
	"tarumbeta-server/internal/usecase/shared"
	"tarumbeta-server/tests/common/builder"
	commandsmock "tarumbeta-server/tests/mock/commands"
	sharedmock "tarumbeta-server/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MatchingUseCaseTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	matches   *sharedmock.MockMatchRepository
	source    *commandsmock.MockCandidateSource
	scorer    *commandsmock.MockCandidateScorer
	learnerID uuid.UUID
}

func (s *MatchingUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.matches = sharedmock.NewMockMatchRepository(s.mockCtrl)
	s.source = commandsmock.NewMockCandidateSource(s.mockCtrl)
	s.scorer = commandsmock.NewMockCandidateScorer(s.mockCtrl)

	s.tx.EXPECT().Matches().Return(s.matches).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.learnerID = uuid.New()
}

func (s *MatchingUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMatchingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(MatchingUseCaseTestSuite))
}

func (s *MatchingUseCaseTestSuite) expectTx() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).Times(1)
}

func (s *MatchingUseCaseTestSuite) TestFindMatches() {
	profile := builder.NewLearnerProfileBuilder().Build()

	s.Run("empty candidate pool yields an empty result", func() {
		uc := commands.NewMatchingUseCase(s.uow, s.source, s.scorer)

		s.source.EXPECT().ListCandidates(gomock.Any(), profile.Instrument, profile.MinRating).
			Return([]matching.Candidate{}, nil)

		matches, err := uc.FindMatches(context.Background(), s.learnerID, profile)
		s.Require().NoError(err)
		s.NotNil(matches)
		s.Empty(matches)
	})

	s.Run("scorer failure falls back to the local scorer", func() {
		uc := commands.NewMatchingUseCase(s.uow, s.source, s.scorer)

		strong := builder.NewCandidateBuilder().Build()
		weak := builder.NewCandidateBuilder().
			WithRating(3.0).
			WithExperienceYears(1).
			WithHourlyRate(5000).
			WithTotalStudents(2).
			WithLocation("Mombasa").
			Build()

		s.source.EXPECT().ListCandidates(gomock.Any(), profile.Instrument, profile.MinRating).
			Return([]matching.Candidate{weak, strong}, nil)
		s.scorer.EXPECT().Score(gomock.Any(), profile, gomock.Any()).
			Return(nil, errors.New("scoring service timeout"))
		s.matches.EXPECT().CreateSuggestions(gomock.Any(), gomock.Any(), s.learnerID, gomock.Any()).Return(nil)
		s.expectTx()

		matches, err := uc.FindMatches(context.Background(), s.learnerID, profile)
		s.Require().NoError(err)
		s.Require().Len(matches, 2)
		s.Equal(strong.ProfileID, matches[0].ProfileID)
		s.Greater(matches[0].Score, matches[1].Score)
		s.NotEmpty(matches[0].Reasons)
	})

	s.Run("nil scorer uses the local scorer directly", func() {
		uc := commands.NewMatchingUseCase(s.uow, s.source, nil)

		cand := builder.NewCandidateBuilder().Build()
		s.source.EXPECT().ListCandidates(gomock.Any(), profile.Instrument, profile.MinRating).
			Return([]matching.Candidate{cand}, nil)
		s.matches.EXPECT().CreateSuggestions(gomock.Any(), gomock.Any(), s.learnerID, gomock.Any()).Return(nil)
		s.expectTx()

		matches, err := uc.FindMatches(context.Background(), s.learnerID, profile)
		s.Require().NoError(err)
		s.Require().Len(matches, 1)
		s.Positive(matches[0].Score)
	})

	s.Run("caps the result at five suggestions", func() {
		uc := commands.NewMatchingUseCase(s.uow, s.source, nil)

		candidates := make([]matching.Candidate, 0, 7)
		for i := 0; i < 7; i++ {
			candidates = append(candidates, builder.NewCandidateBuilder().Build())
		}
		s.source.EXPECT().ListCandidates(gomock.Any(), profile.Instrument, profile.MinRating).
			Return(candidates, nil)
		s.matches.EXPECT().CreateSuggestions(gomock.Any(), gomock.Any(), s.learnerID, gomock.Len(5)).Return(nil)
		s.expectTx()

		matches, err := uc.FindMatches(context.Background(), s.learnerID, profile)
		s.Require().NoError(err)
		s.Len(matches, 5)
	})

	s.Run("failing to persist suggestions does not cost the response", func() {
		uc := commands.NewMatchingUseCase(s.uow, s.source, nil)

		cand := builder.NewCandidateBuilder().Build()
		s.source.EXPECT().ListCandidates(gomock.Any(), profile.Instrument, profile.MinRating).
			Return([]matching.Candidate{cand}, nil)
		s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("failed to create match suggestions", errors.New("connection reset")))

		matches, err := uc.FindMatches(context.Background(), s.learnerID, profile)
		s.Require().NoError(err)
		s.Len(matches, 1)
	})

	s.Run("invalid profile fails before listing candidates", func() {
		uc := commands.NewMatchingUseCase(s.uow, s.source, s.scorer)

		bad := profile
		bad.Instrument = ""
		_, err := uc.FindMatches(context.Background(), s.learnerID, bad)
		s.ErrorIs(err, errs.ErrDomainValidation)
	})
}

func (s *MatchingUseCaseTestSuite) TestAcceptMatch() {
	matchID := uuid.New()

	s.Run("accepts an owned suggestion", func() {
		uc := commands.NewMatchingUseCase(s.uow, s.source, s.scorer)

		s.matches.EXPECT().Accept(gomock.Any(), gomock.Any(), matchID, s.learnerID).Return(nil)
		s.expectTx()

		s.NoError(uc.AcceptMatch(context.Background(), s.learnerID, matchID))
	})

	s.Run("missing suggestion reports not found", func() {
		uc := commands.NewMatchingUseCase(s.uow, s.source, s.scorer)

		s.matches.EXPECT().Accept(gomock.Any(), gomock.Any(), matchID, s.learnerID).
			Return(infra.WrapRepoErr("match suggestion not found", nil, infra.KindNotFound))
		s.expectTx()

		err := uc.AcceptMatch(context.Background(), s.learnerID, matchID)
		s.ErrorIs(err, errs.ErrMatchNotFound)
	})
}
