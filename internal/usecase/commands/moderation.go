package commands

import (
	"context"
	"log/slog"

	dominstructor "tarumbeta-server/internal/domain/instructor"
	"tarumbeta-server/internal/domain/user"
	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/pkg/clock"
	"tarumbeta-server/internal/pkg/errs"
	"tarumbeta-server/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateApplication = errs.New("user already has a pending application")
	ErrAlreadyInstructor    = errs.New("user is already an instructor")
)

type SubmitApplicationRequest struct {
	Instrument      string
	Bio             string
	ExperienceYears int
	HourlyRateCents int64
	Genres          []string
	Certifications  string
}

type SubmitApplicationResult struct {
	ApplicationID uuid.UUID
}

type ModerationCommands interface {
	SubmitInstructorApplication(ctx context.Context, req SubmitApplicationRequest, userID uuid.UUID) (*SubmitApplicationResult, error)
	ApproveInstructorApplication(ctx context.Context, applicationID, adminID uuid.UUID) error
	RejectInstructorApplication(ctx context.Context, applicationID, adminID uuid.UUID) error
	ApproveInstrumentListing(ctx context.Context, listingID uuid.UUID) error
	RejectInstrumentListing(ctx context.Context, listingID uuid.UUID) error
}

type moderationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewModerationUseCase(uow shared.UnitOfWork, clk clock.Clock) ModerationCommands {
	return &moderationUseCaseImpl{uow: uow, clock: clk}
}

func (uc *moderationUseCaseImpl) SubmitInstructorApplication(ctx context.Context, req SubmitApplicationRequest, userID uuid.UUID) (*SubmitApplicationResult, error) {
	app, err := dominstructor.NewApplication(
		userID,
		req.Instrument, req.Bio,
		req.ExperienceYears, req.HourlyRateCents,
		req.Genres, req.Certifications,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var result SubmitApplicationResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		hasProfile, derr := tx.Instructors().HasProfile(ctx, tx.DB(), userID)
		if derr != nil {
			return derr
		}
		if hasProfile {
			return ErrAlreadyInstructor
		}

		open, derr := tx.Instructors().HasOpenApplication(ctx, tx.DB(), userID)
		if derr != nil {
			return derr
		}
		if open {
			return ErrDuplicateApplication
		}

		id, derr := tx.Instructors().CreateApplication(ctx, tx.DB(), app)
		if derr != nil {
			return derr
		}
		result = SubmitApplicationResult{ApplicationID: id}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ApproveInstructorApplication is the compound promotion: application
// stamped approved, profile created verified, user role raised. All
// three land in one transaction or none do.
func (uc *moderationUseCaseImpl) ApproveInstructorApplication(ctx context.Context, applicationID, adminID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ApplicationByID(ctx, applicationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrApplicationNotFound)
			}
			return err
		}
		if snap.Status != dominstructor.ApplicationPending.String() {
			return errs.ErrInvalidStateTransition
		}

		err = tx.Instructors().UpdateApplicationStatus(ctx, tx.DB(),
			applicationID,
			dominstructor.ApplicationPending, dominstructor.ApplicationApproved,
			adminID, uc.clock.Now(),
		)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrInvalidStateTransition)
			}
			return err
		}

		app := dominstructor.ReconstructApplication(
			snap.ID, snap.UserID,
			snap.Instrument, snap.Bio,
			snap.ExperienceYears, snap.HourlyRateCents,
			snap.Genres, snap.Certifications,
			dominstructor.ApplicationApproved,
			&adminID, nil,
			uc.clock.Now(), uc.clock.Now(),
		)

		profile := dominstructor.NewProfileFromApplication(app)
		if _, err = tx.Instructors().CreateProfile(ctx, tx.DB(), profile); err != nil {
			// A duplicate profile means an earlier approval applied
			// partially; surface it for manual reconciliation.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				slog.Error("instructor profile already exists for pending application",
					"application_id", applicationID,
					"user_id", snap.UserID)
				return errs.Mark(err, errs.ErrConsistency)
			}
			return err
		}

		return tx.Users().UpdateRole(ctx, tx.DB(), snap.UserID, user.RoleInstructor)
	})
}

func (uc *moderationUseCaseImpl) RejectInstructorApplication(ctx context.Context, applicationID, adminID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Instructors().UpdateApplicationStatus(ctx, tx.DB(),
			applicationID,
			dominstructor.ApplicationPending, dominstructor.ApplicationRejected,
			adminID, uc.clock.Now(),
		)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrInvalidStateTransition)
			}
			return err
		}
		return nil
	})
}

// ApproveInstrumentListing is an idempotent flag flip, not a
// compare-and-swap: approving twice is harmless.
func (uc *moderationUseCaseImpl) ApproveInstrumentListing(ctx context.Context, listingID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Listings().SetAvailability(ctx, tx.DB(), listingID, true)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrListingNotFound)
			}
			return err
		}
		return nil
	})
}

func (uc *moderationUseCaseImpl) RejectInstrumentListing(ctx context.Context, listingID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Listings().Delete(ctx, tx.DB(), listingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrListingNotFound)
			}
			return err
		}
		return nil
	})
}
