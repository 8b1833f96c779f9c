//go:build unit

package commands_test

import (
	"context"
	"testing"

	dominstructor "tarumbeta-server/internal/domain/instructor"
	"tarumbeta-server/internal/domain/user"
	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/pkg/clock"
	"tarumbeta-server/internal/pkg/errs"
	"tarumbeta-server/internal/usecase/commands"
	"tarumbeta-server/internal/usecase/shared"
	"tarumbeta-server/tests/common/builder"
	sharedmock "tarumbeta-server/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ModerationUseCaseTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	instructors *sharedmock.MockInstructorRepository
	users       *sharedmock.MockUserRepository
	listings    *sharedmock.MockListingRepository
	clock       *clock.MockClock
	uc          commands.ModerationCommands
	adminID     uuid.UUID
}

func (s *ModerationUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.reads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.instructors = sharedmock.NewMockInstructorRepository(s.mockCtrl)
	s.users = sharedmock.NewMockUserRepository(s.mockCtrl)
	s.listings = sharedmock.NewMockListingRepository(s.mockCtrl)

	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Instructors().Return(s.instructors).AnyTimes()
	s.tx.EXPECT().Users().Return(s.users).AnyTimes()
	s.tx.EXPECT().Listings().Return(s.listings).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.clock = clock.NewMockClock(builder.NewLessonBuilder().Now)
	s.uc = commands.NewModerationUseCase(s.uow, s.clock)
	s.adminID = uuid.New()
}

func (s *ModerationUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestModerationUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ModerationUseCaseTestSuite))
}

func (s *ModerationUseCaseTestSuite) expectTx() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).Times(1)
}

func (s *ModerationUseCaseTestSuite) applicationSnapshot(status dominstructor.ApplicationStatus) *shared.ApplicationSnapshot {
	b := builder.NewApplicationBuilder()
	return &shared.ApplicationSnapshot{
		ID:              uuid.New(),
		UserID:          b.UserID,
		Instrument:      b.Instrument,
		Bio:             b.Bio,
		ExperienceYears: b.ExperienceYears,
		HourlyRateCents: b.HourlyRateCents,
		Genres:          b.Genres,
		Certifications:  b.Certifications,
		Status:          status.String(),
	}
}

func (s *ModerationUseCaseTestSuite) TestApproveInstructorApplication() {
	s.Run("stamps, creates the profile, and raises the role in one pass", func() {
		snap := s.applicationSnapshot(dominstructor.ApplicationPending)

		s.reads.EXPECT().ApplicationByID(gomock.Any(), snap.ID).Return(snap, nil)
		gomock.InOrder(
			s.instructors.EXPECT().UpdateApplicationStatus(gomock.Any(), gomock.Any(),
				snap.ID,
				dominstructor.ApplicationPending, dominstructor.ApplicationApproved,
				s.adminID, s.clock.Now(),
			).Return(nil),
			s.instructors.EXPECT().CreateProfile(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(uuid.New(), nil),
			s.users.EXPECT().UpdateRole(gomock.Any(), gomock.Any(), snap.UserID, user.RoleInstructor).
				Return(nil),
		)
		s.expectTx()

		s.NoError(s.uc.ApproveInstructorApplication(context.Background(), snap.ID, s.adminID))
	})

	s.Run("already reviewed application cannot be approved again", func() {
		snap := s.applicationSnapshot(dominstructor.ApplicationApproved)

		s.reads.EXPECT().ApplicationByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.expectTx()

		err := s.uc.ApproveInstructorApplication(context.Background(), snap.ID, s.adminID)
		s.ErrorIs(err, errs.ErrInvalidStateTransition)
	})

	s.Run("losing a concurrent review race maps to invalid transition", func() {
		snap := s.applicationSnapshot(dominstructor.ApplicationPending)

		s.reads.EXPECT().ApplicationByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.instructors.EXPECT().UpdateApplicationStatus(gomock.Any(), gomock.Any(),
			snap.ID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(infra.WrapRepoErr("application not in expected status", nil, infra.KindConflict))
		s.expectTx()

		err := s.uc.ApproveInstructorApplication(context.Background(), snap.ID, s.adminID)
		s.ErrorIs(err, errs.ErrInvalidStateTransition)
	})

	s.Run("existing profile behind a pending application surfaces as inconsistency", func() {
		snap := s.applicationSnapshot(dominstructor.ApplicationPending)

		s.reads.EXPECT().ApplicationByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.instructors.EXPECT().UpdateApplicationStatus(gomock.Any(), gomock.Any(),
			snap.ID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(nil)
		s.instructors.EXPECT().CreateProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create instructor profile", nil, infra.KindDuplicateKey))
		s.expectTx()

		err := s.uc.ApproveInstructorApplication(context.Background(), snap.ID, s.adminID)
		s.ErrorIs(err, errs.ErrConsistency)
	})

	s.Run("missing application reports not found", func() {
		applicationID := uuid.New()

		s.reads.EXPECT().ApplicationByID(gomock.Any(), applicationID).
			Return(nil, infra.WrapRepoErr("application not found", nil, infra.KindNotFound))
		s.expectTx()

		err := s.uc.ApproveInstructorApplication(context.Background(), applicationID, s.adminID)
		s.ErrorIs(err, errs.ErrApplicationNotFound)
	})
}

func (s *ModerationUseCaseTestSuite) TestSubmitInstructorApplication() {
	request := func(b *builder.ApplicationBuilder) commands.SubmitApplicationRequest {
		return commands.SubmitApplicationRequest{
			Instrument:      b.Instrument,
			Bio:             b.Bio,
			ExperienceYears: b.ExperienceYears,
			HourlyRateCents: b.HourlyRateCents,
			Genres:          b.Genres,
			Certifications:  b.Certifications,
		}
	}

	s.Run("accepts a first application", func() {
		b := builder.NewApplicationBuilder()
		applicationID := uuid.New()

		s.instructors.EXPECT().HasProfile(gomock.Any(), gomock.Any(), b.UserID).Return(false, nil)
		s.instructors.EXPECT().HasOpenApplication(gomock.Any(), gomock.Any(), b.UserID).Return(false, nil)
		s.instructors.EXPECT().CreateApplication(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(applicationID, nil)
		s.expectTx()

		result, err := s.uc.SubmitInstructorApplication(context.Background(), request(b), b.UserID)
		s.Require().NoError(err)
		s.Equal(applicationID, result.ApplicationID)
	})

	s.Run("instructors cannot apply again", func() {
		b := builder.NewApplicationBuilder()

		s.instructors.EXPECT().HasProfile(gomock.Any(), gomock.Any(), b.UserID).Return(true, nil)
		s.expectTx()

		_, err := s.uc.SubmitInstructorApplication(context.Background(), request(b), b.UserID)
		s.ErrorIs(err, commands.ErrAlreadyInstructor)
	})

	s.Run("one open application at a time", func() {
		b := builder.NewApplicationBuilder()

		s.instructors.EXPECT().HasProfile(gomock.Any(), gomock.Any(), b.UserID).Return(false, nil)
		s.instructors.EXPECT().HasOpenApplication(gomock.Any(), gomock.Any(), b.UserID).Return(true, nil)
		s.expectTx()

		_, err := s.uc.SubmitInstructorApplication(context.Background(), request(b), b.UserID)
		s.ErrorIs(err, commands.ErrDuplicateApplication)
	})
}

func (s *ModerationUseCaseTestSuite) TestModerateListing() {
	listingID := uuid.New()

	s.Run("approval flips the listing available", func() {
		s.listings.EXPECT().SetAvailability(gomock.Any(), gomock.Any(), listingID, true).Return(nil)
		s.expectTx()

		s.NoError(s.uc.ApproveInstrumentListing(context.Background(), listingID))
	})

	s.Run("rejection removes the listing", func() {
		s.listings.EXPECT().Delete(gomock.Any(), gomock.Any(), listingID).Return(nil)
		s.expectTx()

		s.NoError(s.uc.RejectInstrumentListing(context.Background(), listingID))
	})

	s.Run("missing listing reports not found", func() {
		s.listings.EXPECT().SetAvailability(gomock.Any(), gomock.Any(), listingID, true).
			Return(infra.WrapRepoErr("listing not found", nil, infra.KindNotFound))
		s.expectTx()

		err := s.uc.ApproveInstrumentListing(context.Background(), listingID)
		s.ErrorIs(err, errs.ErrListingNotFound)
	})
}
