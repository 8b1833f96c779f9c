//go:build unit

package commands_test

import (
	"context"
	"testing"

	domrental "tarumbeta-server/internal/domain/rental"
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

type RentalUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	listings *sharedmock.MockListingRepository
	rentals  *sharedmock.MockRentalRepository
	clock    *clock.MockClock
	uc       commands.RentalCommands
}

func (s *RentalUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.reads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.listings = sharedmock.NewMockListingRepository(s.mockCtrl)
	s.rentals = sharedmock.NewMockRentalRepository(s.mockCtrl)

	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Listings().Return(s.listings).AnyTimes()
	s.tx.EXPECT().Rentals().Return(s.rentals).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.clock = clock.NewMockClock(builder.NewRentalBuilder().Now)
	s.uc = commands.NewRentalUseCase(s.uow, s.clock)
}

func (s *RentalUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalUseCaseSuite(t *testing.T) {
	suite.Run(t, new(RentalUseCaseTestSuite))
}

// expectTx routes the unit-of-work closure onto the mocked transaction.
func (s *RentalUseCaseTestSuite) expectTx() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).Times(1)
}

func (s *RentalUseCaseTestSuite) createRequest(b *builder.RentalBuilder) commands.CreateRentalRequest {
	return commands.CreateRentalRequest{
		InstrumentID: b.InstrumentID,
		Period:       "daily",
		StartDate:    b.Start,
		EndDate:      b.End,
	}
}

func (s *RentalUseCaseTestSuite) listingSnapshot(b *builder.RentalBuilder) *shared.ListingSnapshot {
	return &shared.ListingSnapshot{
		ID:              b.InstrumentID,
		OwnerID:         b.OwnerID,
		DailyPriceCents: b.DailyCents,
		IsAvailable:     true,
	}
}

func (s *RentalUseCaseTestSuite) TestCreateRental() {
	s.Run("locks the listing row before the overlap check", func() {
		b := builder.NewRentalBuilder()
		rentalID := uuid.New()

		gomock.InOrder(
			s.listings.EXPECT().Lock(gomock.Any(), gomock.Any(), b.InstrumentID).Return(nil),
			s.reads.EXPECT().ListingByID(gomock.Any(), b.InstrumentID).Return(s.listingSnapshot(b), nil),
			s.rentals.EXPECT().ExistsOverlapping(gomock.Any(), gomock.Any(), b.InstrumentID, gomock.Any(), gomock.Any()).Return(false, nil),
			s.rentals.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(rentalID, nil),
		)
		s.expectTx()

		result, err := s.uc.CreateRental(context.Background(), s.createRequest(b), b.RenterID)
		s.Require().NoError(err)
		s.Equal(rentalID, result.RentalID)
		s.Equal(int64(1500), result.TotalPriceCents)
	})

	s.Run("rejects overlapping dates without creating", func() {
		b := builder.NewRentalBuilder()

		gomock.InOrder(
			s.listings.EXPECT().Lock(gomock.Any(), gomock.Any(), b.InstrumentID).Return(nil),
			s.reads.EXPECT().ListingByID(gomock.Any(), b.InstrumentID).Return(s.listingSnapshot(b), nil),
			s.rentals.EXPECT().ExistsOverlapping(gomock.Any(), gomock.Any(), b.InstrumentID, gomock.Any(), gomock.Any()).Return(true, nil),
		)
		s.expectTx()

		_, err := s.uc.CreateRental(context.Background(), s.createRequest(b), b.RenterID)
		s.ErrorIs(err, errs.ErrBookingConflict)
	})

	s.Run("lock on a missing listing reports not found", func() {
		b := builder.NewRentalBuilder()

		s.listings.EXPECT().Lock(gomock.Any(), gomock.Any(), b.InstrumentID).
			Return(infra.WrapRepoErr("failed to lock instrument listing", nil, infra.KindNotFound))
		s.expectTx()

		_, err := s.uc.CreateRental(context.Background(), s.createRequest(b), b.RenterID)
		s.ErrorIs(err, errs.ErrListingNotFound)
	})

	s.Run("unavailable listing cannot be rented", func() {
		b := builder.NewRentalBuilder()
		snap := s.listingSnapshot(b)
		snap.IsAvailable = false

		s.listings.EXPECT().Lock(gomock.Any(), gomock.Any(), b.InstrumentID).Return(nil)
		s.reads.EXPECT().ListingByID(gomock.Any(), b.InstrumentID).Return(snap, nil)
		s.expectTx()

		_, err := s.uc.CreateRental(context.Background(), s.createRequest(b), b.RenterID)
		s.ErrorIs(err, commands.ErrListingUnavailable)
	})

	s.Run("owner cannot rent their own instrument", func() {
		b := builder.NewRentalBuilder()

		s.listings.EXPECT().Lock(gomock.Any(), gomock.Any(), b.InstrumentID).Return(nil)
		s.reads.EXPECT().ListingByID(gomock.Any(), b.InstrumentID).Return(s.listingSnapshot(b), nil)
		s.expectTx()

		_, err := s.uc.CreateRental(context.Background(), s.createRequest(b), b.OwnerID)
		s.ErrorIs(err, commands.ErrOwnListingRental)
	})

	s.Run("unknown period fails before the transaction", func() {
		b := builder.NewRentalBuilder()
		req := s.createRequest(b)
		req.Period = "hourly"

		_, err := s.uc.CreateRental(context.Background(), req, b.RenterID)
		s.ErrorIs(err, errs.ErrDomainValidation)
	})
}

func (s *RentalUseCaseTestSuite) TestApproveRental() {
	rentalID := uuid.New()
	ownerID := uuid.New()
	renterID := uuid.New()

	snapshot := func(status string) *shared.RentalSnapshot {
		return &shared.RentalSnapshot{
			ID:       rentalID,
			RenterID: renterID,
			OwnerID:  ownerID,
			Status:   status,
		}
	}

	s.Run("owner confirms a pending rental", func() {
		s.reads.EXPECT().RentalByID(gomock.Any(), rentalID).Return(snapshot("pending"), nil)
		s.rentals.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), shared.RentalStatusUpdate{
			ID:   rentalID,
			From: domrental.StatusPending,
			To:   domrental.StatusConfirmed,
		}).Return(nil)
		s.expectTx()

		s.NoError(s.uc.ApproveRental(context.Background(), rentalID, ownerID))
	})

	s.Run("losing a concurrent status race maps to invalid transition", func() {
		s.reads.EXPECT().RentalByID(gomock.Any(), rentalID).Return(snapshot("pending"), nil)
		s.rentals.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("rental not in expected status", nil, infra.KindConflict))
		s.expectTx()

		err := s.uc.ApproveRental(context.Background(), rentalID, ownerID)
		s.ErrorIs(err, errs.ErrInvalidStateTransition)
	})

	s.Run("renter cannot approve", func() {
		s.reads.EXPECT().RentalByID(gomock.Any(), rentalID).Return(snapshot("pending"), nil)
		s.expectTx()

		err := s.uc.ApproveRental(context.Background(), rentalID, renterID)
		s.ErrorIs(err, errs.ErrActorNotAllowed)
	})

	s.Run("already confirmed rental cannot be approved again", func() {
		s.reads.EXPECT().RentalByID(gomock.Any(), rentalID).Return(snapshot("confirmed"), nil)
		s.expectTx()

		err := s.uc.ApproveRental(context.Background(), rentalID, ownerID)
		s.ErrorIs(err, errs.ErrInvalidStateTransition)
	})
}

func (s *RentalUseCaseTestSuite) TestCancelRental() {
	rentalID := uuid.New()
	ownerID := uuid.New()
	renterID := uuid.New()

	snapshot := func(status string) *shared.RentalSnapshot {
		return &shared.RentalSnapshot{
			ID:       rentalID,
			RenterID: renterID,
			OwnerID:  ownerID,
			Status:   status,
		}
	}

	s.Run("renter cancels a confirmed rental", func() {
		s.reads.EXPECT().RentalByID(gomock.Any(), rentalID).Return(snapshot("confirmed"), nil)
		s.rentals.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), shared.RentalStatusUpdate{
			ID:   rentalID,
			From: domrental.StatusConfirmed,
			To:   domrental.StatusCancelled,
		}).Return(nil)
		s.expectTx()

		s.NoError(s.uc.CancelRental(context.Background(), rentalID, renterID))
	})

	s.Run("active rental cannot be cancelled", func() {
		s.reads.EXPECT().RentalByID(gomock.Any(), rentalID).Return(snapshot("active"), nil)
		s.expectTx()

		err := s.uc.CancelRental(context.Background(), rentalID, renterID)
		s.ErrorIs(err, errs.ErrInvalidStateTransition)
	})

	s.Run("owner cannot cancel on the renter's behalf", func() {
		s.reads.EXPECT().RentalByID(gomock.Any(), rentalID).Return(snapshot("pending"), nil)
		s.expectTx()

		err := s.uc.CancelRental(context.Background(), rentalID, ownerID)
		s.ErrorIs(err, errs.ErrActorNotAllowed)
	})
}
