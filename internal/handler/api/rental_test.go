//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"tarumbeta-server/internal/domain/user"
	"tarumbeta-server/internal/handler/api"
	resdto "tarumbeta-server/internal/handler/dto/response"
	"tarumbeta-server/internal/pkg/errs"
	"tarumbeta-server/internal/usecase/commands"
	"tarumbeta-server/internal/usecase/queries"
	"tarumbeta-server/tests/common/builder"
	"tarumbeta-server/tests/common/httptest"
	commandsmock "tarumbeta-server/tests/mock/commands"
	queriesmock "tarumbeta-server/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RentalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRentalCommands
	mockQueries  *queriesmock.MockRentalQueries
	handler      *api.RentalHandler
	userID       uuid.UUID
	userRole     user.Role
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRentalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRentalQueries(s.mockCtrl)
	s.handler = api.NewRentalHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()
	s.userRole = user.RoleLearner

	// Mock middleware behavior: inject the authenticated user
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", s.userRole)
	})

	s.router.POST("/rentals", s.handler.Create)
	s.router.GET("/rentals", s.handler.ListMine)
	s.router.GET("/rentals/owner", s.handler.ListOwned)
	s.router.GET("/rentals/earnings", s.handler.Earnings)
	s.router.GET("/rentals/:id", s.handler.Get)
	s.router.POST("/rentals/:id/approve", s.handler.Approve)
	s.router.POST("/rentals/:id/reject", s.handler.Reject)
	s.router.POST("/rentals/:id/pickup", s.handler.MarkPickedUp)
	s.router.POST("/rentals/:id/return", s.handler.MarkReturned)
	s.router.POST("/rentals/:id/confirm-return", s.handler.ConfirmReturn)
	s.router.POST("/rentals/:id/cancel", s.handler.Cancel)
}

func (s *RentalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

func (s *RentalHandlerTestSuite) rentalView(id uuid.UUID) *queries.RentalView {
	now := time.Now()
	return &queries.RentalView{
		ID:              id,
		InstrumentID:    uuid.New(),
		InstrumentName:  "Yamaha FG800 Acoustic Guitar",
		RenterID:        s.userID,
		OwnerID:         uuid.New(),
		Period:          "daily",
		StartDate:       now.AddDate(0, 0, 1),
		EndDate:         now.AddDate(0, 0, 4),
		TotalPriceCents: 1500,
		Status:          "pending",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (s *RentalHandlerTestSuite) TestCreate() {
	url := "/rentals"
	b := builder.NewRentalBuilder()
	reqBody := map[string]any{
		"instrument_id": b.InstrumentID,
		"period":        "daily",
		"start_date":    b.Start.Format(time.RFC3339),
		"end_date":      b.End.Format(time.RFC3339),
	}

	s.Run("success: returns 201 Created with price", func() {
		rentalID := uuid.New()
		s.mockCommands.EXPECT().CreateRental(gomock.Any(), gomock.Any(), s.userID).
			Return(&commands.CreateRentalResult{RentalID: rentalID, TotalPriceCents: 1500}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateRentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(rentalID, response.RentalID)
		s.Equal(int64(1500), response.TotalPriceCents)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing instrument id", body: map[string]any{"period": "daily", "start_date": reqBody["start_date"], "end_date": reqBody["end_date"]}},
			{name: "unknown period", body: map[string]any{"instrument_id": b.InstrumentID, "period": "hourly", "start_date": reqBody["start_date"], "end_date": reqBody["end_date"]}},
			{name: "missing dates", body: map[string]any{"instrument_id": b.InstrumentID, "period": "daily"}},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "listing not found",
				commandsError:  errs.ErrListingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Listing not found",
			},
			{
				name:           "listing unavailable",
				commandsError:  commands.ErrListingUnavailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid rental request",
			},
			{
				name:           "own listing",
				commandsError:  commands.ErrOwnListingRental,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid rental request",
			},
			{
				name:           "booking conflict",
				commandsError:  errs.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Instrument already booked for these dates",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Create rental failed",
			},
			{
				name:           "store unreachable",
				commandsError:  errs.Mark(errors.New("connection refused"), errs.ErrUpstreamUnavailable),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Service temporarily unavailable",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateRental(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *RentalHandlerTestSuite) TestGet() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String()

	s.Run("success: returns 200 OK with rental", func() {
		view := s.rentalView(rentalID)
		s.mockQueries.EXPECT().GetRental(gomock.Any(), rentalID, s.userID, s.userRole).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(rentalID, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "rental not found",
				queriesError:   errs.ErrRentalNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Rental not found",
			},
			{
				name:           "not a party",
				queriesError:   errs.ErrActorNotAllowed,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to load rental",
			},
			{
				name:           "store unreachable",
				queriesError:   errs.Mark(errors.New("connection refused"), errs.ErrUpstreamUnavailable),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Service temporarily unavailable",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetRental(gomock.Any(), rentalID, s.userID, s.userRole).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *RentalHandlerTestSuite) TestListMine() {
	s.Run("success: returns renter's rentals", func() {
		views := []*queries.RentalView{s.rentalView(uuid.New()), s.rentalView(uuid.New())}
		s.mockQueries.EXPECT().ListByRenter(gomock.Any(), s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals", nil, "")

		var response []resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})
}

func (s *RentalHandlerTestSuite) TestListOwned() {
	s.Run("success: forwards the status filter", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, status *string) ([]*queries.RentalView, error) {
				s.Require().NotNil(status)
				s.Equal("pending", *status)
				return []*queries.RentalView{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/owner?status=pending", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: no filter means nil status", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.userID, gomock.Nil()).
			Return([]*queries.RentalView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/owner", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *RentalHandlerTestSuite) TestEarnings() {
	s.Run("success: returns completed rental earnings", func() {
		s.mockQueries.EXPECT().OwnerEarnings(gomock.Any(), s.userID).
			Return(int64(45000), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/earnings", nil, "")

		var response resdto.OwnerEarningsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(45000), response.TotalEarningsCents)
	})
}

func (s *RentalHandlerTestSuite) TestTransitions() {
	rentalID := uuid.New()

	type expectFn func() *gomock.Call
	transitions := []struct {
		name   string
		path   string
		expect expectFn
	}{
		{
			name: "approve",
			path: "approve",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().ApproveRental(gomock.Any(), rentalID, s.userID)
			},
		},
		{
			name: "pickup",
			path: "pickup",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().MarkPickedUp(gomock.Any(), rentalID, s.userID)
			},
		},
		{
			name: "return",
			path: "return",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().MarkReturned(gomock.Any(), rentalID, s.userID)
			},
		},
		{
			name: "confirm return",
			path: "confirm-return",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().ConfirmReturn(gomock.Any(), rentalID, s.userID)
			},
		},
		{
			name: "cancel",
			path: "cancel",
			expect: func() *gomock.Call {
				return s.mockCommands.EXPECT().CancelRental(gomock.Any(), rentalID, s.userID)
			},
		},
	}

	for _, tr := range transitions {
		url := fmt.Sprintf("/rentals/%s/%s", rentalID, tr.path)

		s.Run(tr.name+": returns 204 No Content", func() {
			tr.expect().Return(nil).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
			s.Equal(http.StatusNoContent, rec.Code)
		})

		s.Run(tr.name+": maps lifecycle errors", func() {
			cases := []struct {
				name           string
				commandsError  error
				expectedStatus int
			}{
				{name: "not found", commandsError: errs.ErrRentalNotFound, expectedStatus: http.StatusNotFound},
				{name: "wrong actor", commandsError: errs.ErrActorNotAllowed, expectedStatus: http.StatusForbidden},
				{name: "invalid transition", commandsError: errs.ErrInvalidStateTransition, expectedStatus: http.StatusConflict},
			}
			for _, tc := range cases {
				s.Run(tc.name, func() {
					tr.expect().Return(tc.commandsError).Times(1)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
					httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
				})
			}
		})
	}
}

func (s *RentalHandlerTestSuite) TestReject() {
	rentalID := uuid.New()
	url := fmt.Sprintf("/rentals/%s/reject", rentalID)

	s.Run("success: passes the reason through", func() {
		s.mockCommands.EXPECT().RejectRental(gomock.Any(), rentalID, s.userID, "instrument damaged").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reason": "instrument damaged"}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request when reason is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
