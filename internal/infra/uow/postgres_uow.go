package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"tarumbeta-server/internal/infra/db"
	"tarumbeta-server/internal/infra/readstore"
	"tarumbeta-server/internal/infra/repository"
	"tarumbeta-server/internal/pkg/errs"
	"tarumbeta-server/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	userRepo       shared.UserRepository
	listingRepo    shared.ListingRepository
	rentalRepo     shared.RentalRepository
	lessonRepo     shared.LessonRepository
	instructorRepo shared.InstructorRepository
	matchRepo      shared.MatchRepository
	commandReads   shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository()
	}
	return t.userRepo
}

func (t *pgTx) Listings() shared.ListingRepository {
	if t.listingRepo == nil {
		t.listingRepo = repository.NewListingRepository()
	}
	return t.listingRepo
}

func (t *pgTx) Rentals() shared.RentalRepository {
	if t.rentalRepo == nil {
		t.rentalRepo = repository.NewRentalRepository()
	}
	return t.rentalRepo
}

func (t *pgTx) Lessons() shared.LessonRepository {
	if t.lessonRepo == nil {
		t.lessonRepo = repository.NewLessonRepository()
	}
	return t.lessonRepo
}

func (t *pgTx) Instructors() shared.InstructorRepository {
	if t.instructorRepo == nil {
		t.instructorRepo = repository.NewInstructorRepository()
	}
	return t.instructorRepo
}

func (t *pgTx) Matches() shared.MatchRepository {
	if t.matchRepo == nil {
		t.matchRepo = repository.NewMatchRepository()
	}
	return t.matchRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

// commandReads maps read-store views onto the minimal snapshots the
// write side validates against. Inside a transaction it reads through
// the transaction's connection so checks see uncommitted writes.
type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	userStore       *readstore.UserReadStore
	listingStore    *readstore.ListingReadStore
	rentalStore     *readstore.RentalReadStore
	lessonStore     *readstore.LessonReadStore
	instructorStore *readstore.InstructorReadStore
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.dbtx)
	}

	view, err := r.userStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.UserSnapshot{
		ID:       view.ID,
		Role:     view.Role,
		IsActive: view.IsActive,
	}, nil
}

func (r *commandReads) ListingByID(ctx context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	if r.listingStore == nil {
		r.listingStore = readstore.NewListingReadStore(r.dbtx)
	}

	view, err := r.listingStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.ListingSnapshot{
		ID:                view.ID,
		OwnerID:           view.OwnerID,
		DailyPriceCents:   view.DailyPriceCents,
		WeeklyPriceCents:  view.WeeklyPriceCents,
		MonthlyPriceCents: view.MonthlyPriceCents,
		IsAvailable:       view.IsAvailable,
	}, nil
}

func (r *commandReads) RentalByID(ctx context.Context, id uuid.UUID) (*shared.RentalSnapshot, error) {
	if r.rentalStore == nil {
		r.rentalStore = readstore.NewRentalReadStore(r.dbtx)
	}

	view, err := r.rentalStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.RentalSnapshot{
		ID:           view.ID,
		InstrumentID: view.InstrumentID,
		RenterID:     view.RenterID,
		OwnerID:      view.OwnerID,
		Status:       view.Status,
	}, nil
}

func (r *commandReads) LessonByID(ctx context.Context, id uuid.UUID) (*shared.LessonSnapshot, error) {
	if r.lessonStore == nil {
		r.lessonStore = readstore.NewLessonReadStore(r.dbtx)
	}

	view, err := r.lessonStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.LessonSnapshot{
		ID:               view.ID,
		InstructorID:     view.InstructorID,
		InstructorUserID: view.InstructorUserID,
		LearnerID:        view.LearnerID,
		Status:           view.Status,
		ScheduledAt:      view.ScheduledAt,
		DurationMinutes:  view.DurationMinutes,
	}, nil
}

func (r *commandReads) ProfileByID(ctx context.Context, id uuid.UUID) (*shared.ProfileSnapshot, error) {
	if r.instructorStore == nil {
		r.instructorStore = readstore.NewInstructorReadStore(r.dbtx)
	}

	view, err := r.instructorStore.FindProfileByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.ProfileSnapshot{
		ID:              view.ID,
		UserID:          view.UserID,
		HourlyRateCents: view.HourlyRateCents,
		IsVerified:      view.IsVerified,
	}, nil
}

func (r *commandReads) ApplicationByID(ctx context.Context, id uuid.UUID) (*shared.ApplicationSnapshot, error) {
	if r.instructorStore == nil {
		r.instructorStore = readstore.NewInstructorReadStore(r.dbtx)
	}

	view, err := r.instructorStore.FindApplicationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.ApplicationSnapshot{
		ID:              view.ID,
		UserID:          view.UserID,
		Instrument:      view.Instrument,
		Bio:             view.Bio,
		ExperienceYears: view.ExperienceYears,
		HourlyRateCents: view.HourlyRateCents,
		Genres:          view.Genres,
		Certifications:  view.Certifications,
		Status:          view.Status,
	}, nil
}
