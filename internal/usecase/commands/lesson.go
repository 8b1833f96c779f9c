package commands

import (
	"context"
	"time"

	domlesson "tarumbeta-server/internal/domain/lesson"
	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/pkg/clock"
	"tarumbeta-server/internal/pkg/errs"
	"tarumbeta-server/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInstructorNotVerified = errs.New("instructor is not verified")

type CreateLessonRequest struct {
	InstructorProfileID uuid.UUID
	RentalID            *uuid.UUID
	Instrument          string
	SkillLevel          string
	SessionType         string
	ScheduledAt         time.Time
	DurationMinutes     int
}

type CreateLessonResult struct {
	LessonID   uuid.UUID
	PriceCents int64
}

type LessonCommands interface {
	CreateLesson(ctx context.Context, req CreateLessonRequest, learnerID uuid.UUID) (*CreateLessonResult, error)
	ApproveLesson(ctx context.Context, lessonID, actorID uuid.UUID) error
	RejectLesson(ctx context.Context, lessonID, actorID uuid.UUID) error
	CompleteLesson(ctx context.Context, lessonID, actorID uuid.UUID) error
	CancelLesson(ctx context.Context, lessonID, actorID uuid.UUID) error
}

type lessonUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLessonUseCase(uow shared.UnitOfWork, clk clock.Clock) LessonCommands {
	return &lessonUseCaseImpl{uow: uow, clock: clk}
}

func (uc *lessonUseCaseImpl) CreateLesson(ctx context.Context, req CreateLessonRequest, learnerID uuid.UUID) (*CreateLessonResult, error) {
	sessionType, err := domlesson.NewSessionType(req.SessionType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var result CreateLessonResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Row lock on the profile serializes racing bookings against the
		// instructor's calendar before the overlap check below.
		if derr := tx.Instructors().LockProfile(ctx, tx.DB(), req.InstructorProfileID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrInstructorNotFound)
			}
			return derr
		}

		profile, derr := tx.Reads().ProfileByID(ctx, req.InstructorProfileID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrInstructorNotFound)
			}
			return derr
		}
		if !profile.IsVerified {
			return ErrInstructorNotVerified
		}

		lsn, derr := domlesson.NewLesson(
			profile.ID, profile.UserID, learnerID,
			req.RentalID,
			req.Instrument, req.SkillLevel,
			sessionType,
			req.ScheduledAt, req.DurationMinutes,
			profile.HourlyRateCents,
			uc.clock.Now(),
		)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}

		overlap, derr := tx.Lessons().ExistsOverlapping(ctx, tx.DB(), profile.ID, lsn.ScheduledAt(), lsn.EndsAt())
		if derr != nil {
			return derr
		}
		if overlap {
			return errs.ErrBookingConflict
		}

		id, derr := tx.Lessons().Create(ctx, tx.DB(), lsn)
		if derr != nil {
			return derr
		}

		result = CreateLessonResult{LessonID: id, PriceCents: lsn.PriceCents()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *lessonUseCaseImpl) ApproveLesson(ctx context.Context, lessonID, actorID uuid.UUID) error {
	return uc.transition(ctx, lessonID, actorID, domlesson.StatusScheduled, domlesson.StatusApproved)
}

// RejectLesson is the instructor-side refusal of a booking request; it
// lands in cancelled like any other abandoned lesson.
func (uc *lessonUseCaseImpl) RejectLesson(ctx context.Context, lessonID, actorID uuid.UUID) error {
	return uc.transition(ctx, lessonID, actorID, domlesson.StatusScheduled, domlesson.StatusCancelled)
}

func (uc *lessonUseCaseImpl) CompleteLesson(ctx context.Context, lessonID, actorID uuid.UUID) error {
	return uc.transition(ctx, lessonID, actorID, domlesson.StatusApproved, domlesson.StatusCompleted)
}

func (uc *lessonUseCaseImpl) CancelLesson(ctx context.Context, lessonID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().LessonByID(ctx, lessonID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrLessonNotFound)
			}
			return err
		}
		if snap.LearnerID != actorID && snap.InstructorUserID != actorID {
			return errs.ErrActorNotAllowed
		}

		from, err := domlesson.NewStatus(snap.Status)
		if err != nil {
			return err
		}
		if !domlesson.CanTransition(from, domlesson.StatusCancelled) {
			return errs.ErrInvalidStateTransition
		}

		return uc.applyStatus(ctx, tx, lessonID, from, domlesson.StatusCancelled)
	})
}

// transition applies an instructor-only lifecycle edge; CancelLesson is
// the one move either party may make and has its own guard above.
func (uc *lessonUseCaseImpl) transition(ctx context.Context, lessonID, actorID uuid.UUID, from, to domlesson.Status) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().LessonByID(ctx, lessonID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrLessonNotFound)
			}
			return err
		}
		if snap.InstructorUserID != actorID {
			return errs.ErrActorNotAllowed
		}

		current, err := domlesson.NewStatus(snap.Status)
		if err != nil {
			return err
		}
		if current != from || !domlesson.CanTransition(from, to) {
			return errs.ErrInvalidStateTransition
		}

		return uc.applyStatus(ctx, tx, lessonID, from, to)
	})
}

func (uc *lessonUseCaseImpl) applyStatus(ctx context.Context, tx shared.Tx, lessonID uuid.UUID, from, to domlesson.Status) error {
	err := tx.Lessons().UpdateStatus(ctx, tx.DB(), lessonID, from, to)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(err, errs.ErrInvalidStateTransition)
		}
		return err
	}
	return nil
}
