package commands

import (
	"context"

	dominstrument "tarumbeta-server/internal/domain/instrument"
	"tarumbeta-server/internal/pkg/errs"
	"tarumbeta-server/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateListingRequest struct {
	Name              string
	InstrumentType    string
	Category          string
	Condition         string
	Description       string
	Location          string
	DailyPriceCents   int64
	WeeklyPriceCents  *int64
	MonthlyPriceCents *int64
}

type CreateListingResult struct {
	ListingID uuid.UUID
}

type ListingCommands interface {
	CreateListing(ctx context.Context, req CreateListingRequest, ownerID uuid.UUID) (*CreateListingResult, error)
}

type listingUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewListingUseCase(uow shared.UnitOfWork) ListingCommands {
	return &listingUseCaseImpl{uow: uow}
}

// CreateListing inserts the listing unavailable; it enters the public
// catalogue only after moderation approves it.
func (uc *listingUseCaseImpl) CreateListing(ctx context.Context, req CreateListingRequest, ownerID uuid.UUID) (*CreateListingResult, error) {
	condition, err := dominstrument.NewCondition(req.Condition)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	listing, err := dominstrument.NewListing(
		ownerID,
		req.Name, req.InstrumentType, req.Category,
		condition,
		req.Description, req.Location,
		req.DailyPriceCents,
		req.WeeklyPriceCents, req.MonthlyPriceCents,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var result CreateListingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Listings().Create(ctx, tx.DB(), listing)
		if derr != nil {
			return derr
		}
		result = CreateListingResult{ListingID: id}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
