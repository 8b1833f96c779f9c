package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tarumbeta-server/internal/domain/user"
	"tarumbeta-server/internal/handler/api"
	"tarumbeta-server/internal/handler/middleware"
	"tarumbeta-server/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	instrumentHandler *api.InstrumentHandler,
	rentalHandler *api.RentalHandler,
	lessonHandler *api.LessonHandler,
	instructorHandler *api.InstructorHandler,
	matchingHandler *api.MatchingHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, instrumentHandler, rentalHandler, lessonHandler, instructorHandler, matchingHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	instrumentHandler *api.InstrumentHandler,
	rentalHandler *api.RentalHandler,
	lessonHandler *api.LessonHandler,
	instructorHandler *api.InstructorHandler,
	matchingHandler *api.MatchingHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		listings := apiGroup.Group("/listings")
		{
			addRoutes(listings, []route{
				{Method: http.MethodGet, Path: "", Handler: instrumentHandler.List},
			})

			listingsAuth := listings.Group("")
			listingsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(listingsAuth, []route{
				{Method: http.MethodPost, Path: "", Handler: instrumentHandler.Create,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOwner, user.RoleAdmin)}},
				{Method: http.MethodGet, Path: "/mine", Handler: instrumentHandler.ListMine},
			})

			// Parameterized route registered last so /mine wins
			addRoutes(listings, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: instrumentHandler.Get},
			})
		}

		rentals := apiGroup.Group("/rentals")
		rentals.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rentals, []route{
				{Method: http.MethodPost, Path: "", Handler: rentalHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: rentalHandler.ListMine},
				{Method: http.MethodGet, Path: "/owner", Handler: rentalHandler.ListOwned},
				{Method: http.MethodGet, Path: "/earnings", Handler: rentalHandler.Earnings},
				{Method: http.MethodGet, Path: "/:id", Handler: rentalHandler.Get},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: rentalHandler.Approve},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: rentalHandler.Reject},
				{Method: http.MethodPost, Path: "/:id/pickup", Handler: rentalHandler.MarkPickedUp},
				{Method: http.MethodPost, Path: "/:id/return", Handler: rentalHandler.MarkReturned},
				{Method: http.MethodPost, Path: "/:id/confirm-return", Handler: rentalHandler.ConfirmReturn},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: rentalHandler.Cancel},
			})
		}

		lessons := apiGroup.Group("/lessons")
		lessons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(lessons, []route{
				{Method: http.MethodPost, Path: "", Handler: lessonHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: lessonHandler.ListMine},
				{Method: http.MethodGet, Path: "/teaching", Handler: lessonHandler.ListTeaching},
				{Method: http.MethodGet, Path: "/earnings", Handler: lessonHandler.Earnings},
				{Method: http.MethodGet, Path: "/:id", Handler: lessonHandler.Get},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: lessonHandler.Approve},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: lessonHandler.Reject},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: lessonHandler.Complete},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: lessonHandler.Cancel},
			})
		}

		instructors := apiGroup.Group("/instructors")
		{
			addRoutes(instructors, []route{
				{Method: http.MethodGet, Path: "", Handler: instructorHandler.List},
			})

			instructorsAuth := instructors.Group("")
			instructorsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(instructorsAuth, []route{
				{Method: http.MethodPost, Path: "/apply", Handler: instructorHandler.Apply},
			})

			addRoutes(instructors, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: instructorHandler.Get},
			})
		}

		matches := apiGroup.Group("/matches")
		matches.Use(authMiddleware.RequireAuth())
		{
			addRoutes(matches, []route{
				{Method: http.MethodPost, Path: "/find", Handler: matchingHandler.Find},
				{Method: http.MethodGet, Path: "/history", Handler: matchingHandler.History},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: matchingHandler.Accept},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/applications", Handler: adminHandler.ListApplications},
				{Method: http.MethodPost, Path: "/applications/:id/approve", Handler: adminHandler.ApproveApplication},
				{Method: http.MethodPost, Path: "/applications/:id/reject", Handler: adminHandler.RejectApplication},
				{Method: http.MethodGet, Path: "/listings/pending", Handler: adminHandler.ListPendingListings},
				{Method: http.MethodPost, Path: "/listings/:id/approve", Handler: adminHandler.ApproveListing},
				{Method: http.MethodPost, Path: "/listings/:id/reject", Handler: adminHandler.RejectListing},
				{Method: http.MethodGet, Path: "/stats", Handler: adminHandler.Stats},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
