package commands

import (
	"context"
	"time"

	domrental "tarumbeta-server/internal/domain/rental"
	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/pkg/clock"
	"tarumbeta-server/internal/pkg/errs"
	"tarumbeta-server/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrListingUnavailable = errs.New("instrument listing is not available")
	ErrOwnListingRental   = errs.New("cannot rent your own instrument")
)

type CreateRentalRequest struct {
	InstrumentID uuid.UUID
	Period       string
	StartDate    time.Time
	EndDate      time.Time
}

type CreateRentalResult struct {
	RentalID        uuid.UUID
	TotalPriceCents int64
}

type RentalCommands interface {
	CreateRental(ctx context.Context, req CreateRentalRequest, renterID uuid.UUID) (*CreateRentalResult, error)
	ApproveRental(ctx context.Context, rentalID, actorID uuid.UUID) error
	RejectRental(ctx context.Context, rentalID, actorID uuid.UUID, reason string) error
	MarkPickedUp(ctx context.Context, rentalID, actorID uuid.UUID) error
	MarkReturned(ctx context.Context, rentalID, actorID uuid.UUID) error
	ConfirmReturn(ctx context.Context, rentalID, actorID uuid.UUID) error
	CancelRental(ctx context.Context, rentalID, actorID uuid.UUID) error
}

type rentalUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRentalUseCase(uow shared.UnitOfWork, clk clock.Clock) RentalCommands {
	return &rentalUseCaseImpl{uow: uow, clock: clk}
}

func (uc *rentalUseCaseImpl) CreateRental(ctx context.Context, req CreateRentalRequest, renterID uuid.UUID) (*CreateRentalResult, error) {
	period, err := domrental.NewPeriod(req.Period)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	dates, err := domrental.NewDateRange(req.StartDate, req.EndDate, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var result CreateRentalResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The listing row lock serializes racing creators; without it two
		// transactions at read committed both pass the overlap check
		// before either insert is visible.
		if derr := tx.Listings().Lock(ctx, tx.DB(), req.InstrumentID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrListingNotFound)
			}
			return derr
		}

		listing, derr := tx.Reads().ListingByID(ctx, req.InstrumentID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrListingNotFound)
			}
			return derr
		}
		if !listing.IsAvailable {
			return ErrListingUnavailable
		}
		if listing.OwnerID == renterID {
			return ErrOwnListingRental
		}

		overlap, derr := tx.Rentals().ExistsOverlapping(ctx, tx.DB(), req.InstrumentID, dates.Start(), dates.End())
		if derr != nil {
			return derr
		}
		if overlap {
			return errs.ErrBookingConflict
		}

		rent, derr := domrental.NewRental(req.InstrumentID, renterID, listing.OwnerID, period, dates, domrental.PriceSnapshot{
			DailyCents:   listing.DailyPriceCents,
			WeeklyCents:  listing.WeeklyPriceCents,
			MonthlyCents: listing.MonthlyPriceCents,
		})
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}

		id, derr := tx.Rentals().Create(ctx, tx.DB(), rent)
		if derr != nil {
			return derr
		}

		result = CreateRentalResult{RentalID: id, TotalPriceCents: rent.TotalPriceCents()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *rentalUseCaseImpl) ApproveRental(ctx context.Context, rentalID, actorID uuid.UUID) error {
	return uc.transition(ctx, rentalID, actorID, actorOwner, domrental.StatusPending, shared.RentalStatusUpdate{
		To: domrental.StatusConfirmed,
	})
}

func (uc *rentalUseCaseImpl) RejectRental(ctx context.Context, rentalID, actorID uuid.UUID, reason string) error {
	return uc.transition(ctx, rentalID, actorID, actorOwner, domrental.StatusPending, shared.RentalStatusUpdate{
		To:              domrental.StatusRejected,
		RejectionReason: &reason,
	})
}

func (uc *rentalUseCaseImpl) MarkPickedUp(ctx context.Context, rentalID, actorID uuid.UUID) error {
	now := uc.clock.Now()
	return uc.transition(ctx, rentalID, actorID, actorOwner, domrental.StatusConfirmed, shared.RentalStatusUpdate{
		To:         domrental.StatusActive,
		PickedUpAt: &now,
	})
}

func (uc *rentalUseCaseImpl) MarkReturned(ctx context.Context, rentalID, actorID uuid.UUID) error {
	now := uc.clock.Now()
	return uc.transition(ctx, rentalID, actorID, actorRenter, domrental.StatusActive, shared.RentalStatusUpdate{
		To:         domrental.StatusPendingReturn,
		ReturnedAt: &now,
	})
}

func (uc *rentalUseCaseImpl) ConfirmReturn(ctx context.Context, rentalID, actorID uuid.UUID) error {
	return uc.transition(ctx, rentalID, actorID, actorOwner, domrental.StatusPendingReturn, shared.RentalStatusUpdate{
		To: domrental.StatusCompleted,
	})
}

// CancelRental accepts either cancellable prior status; the expected
// status is whatever the renter last saw, so a concurrent approval
// still leaves exactly one winner.
func (uc *rentalUseCaseImpl) CancelRental(ctx context.Context, rentalID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().RentalByID(ctx, rentalID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrRentalNotFound)
			}
			return err
		}
		if snap.RenterID != actorID {
			return errs.ErrActorNotAllowed
		}

		from, err := domrental.NewStatus(snap.Status)
		if err != nil {
			return err
		}
		if from != domrental.StatusPending && from != domrental.StatusConfirmed {
			return errs.ErrInvalidStateTransition
		}

		return uc.applyStatus(ctx, tx, shared.RentalStatusUpdate{
			ID:   rentalID,
			From: from,
			To:   domrental.StatusCancelled,
		})
	})
}

type actorKind int

const (
	actorRenter actorKind = iota
	actorOwner
)

func (uc *rentalUseCaseImpl) transition(ctx context.Context, rentalID, actorID uuid.UUID, actor actorKind, from domrental.Status, upd shared.RentalStatusUpdate) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().RentalByID(ctx, rentalID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrRentalNotFound)
			}
			return err
		}

		switch actor {
		case actorRenter:
			if snap.RenterID != actorID {
				return errs.ErrActorNotAllowed
			}
		case actorOwner:
			if snap.OwnerID != actorID {
				return errs.ErrActorNotAllowed
			}
		}

		current, err := domrental.NewStatus(snap.Status)
		if err != nil {
			return err
		}
		if current != from || !domrental.CanTransition(from, upd.To) {
			return errs.ErrInvalidStateTransition
		}

		upd.ID = rentalID
		upd.From = from
		return uc.applyStatus(ctx, tx, upd)
	})
}

// applyStatus translates a compare-and-swap miss into the lifecycle
// error: the rental was already moved by a concurrent actor.
func (uc *rentalUseCaseImpl) applyStatus(ctx context.Context, tx shared.Tx, upd shared.RentalStatusUpdate) error {
	err := tx.Rentals().UpdateStatus(ctx, tx.DB(), upd)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, errs.ErrInvalidStateTransition)
		}
		return err
	}
	return nil
}
