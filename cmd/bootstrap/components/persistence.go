package components

import (
	"tarumbeta-server/internal/infra/db"
	"tarumbeta-server/internal/infra/readstore"
	"tarumbeta-server/internal/infra/scoring"
	"tarumbeta-server/internal/infra/uow"
	"tarumbeta-server/internal/pkg/config"
	"tarumbeta-server/internal/usecase/commands"
	"tarumbeta-server/internal/usecase/queries"
	"tarumbeta-server/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// External scoring model, optional
		NewCandidateScorer,
	),
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Listing
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingReadStore)),
		),
		// Rental
		fx.Annotate(
			readstore.NewRentalReadStore,
			fx.As(new(queries.RentalReadStore)),
		),
		// Lesson
		fx.Annotate(
			readstore.NewLessonReadStore,
			fx.As(new(queries.LessonReadStore)),
		),
		// Instructor doubles as the matching candidate pool
		fx.Annotate(
			readstore.NewInstructorReadStore,
			fx.As(new(queries.InstructorReadStore)),
			fx.As(new(commands.CandidateSource)),
		),
		// Match
		fx.Annotate(
			readstore.NewMatchReadStore,
			fx.As(new(queries.MatchReadStore)),
		),
		// Stats
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewCandidateScorer returns nil when no scoring service is configured;
// the matching usecase treats a nil scorer as local-only.
func NewCandidateScorer(cfg config.Config) commands.CandidateScorer {
	if !cfg.Scoring.Enabled() {
		return nil
	}
	return scoring.NewClient(cfg.Scoring)
}
