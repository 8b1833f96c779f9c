//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"tarumbeta-server/internal/handler/api"
	resdto "tarumbeta-server/internal/handler/dto/response"
	"tarumbeta-server/internal/pkg/config"
	"tarumbeta-server/internal/pkg/cookie"
	"tarumbeta-server/internal/pkg/errs"
	"tarumbeta-server/internal/pkg/jwt"
	"tarumbeta-server/internal/usecase/commands"
	"tarumbeta-server/tests/common/builder"
	"tarumbeta-server/tests/common/httptest"
	"tarumbeta-server/tests/common/testutil"
	commandsmock "tarumbeta-server/tests/mock/commands"
	queriesmock "tarumbeta-server/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, &jwt.Service{}, config.NewTestConfig())

	s.router.POST("/auth/signup", s.handler.Signup)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

// the auth endpoints answer with a flat error string
func (s *AuthHandlerTestSuite) assertAuthError(body string, expectedMsg string) {
	var response map[string]any
	s.Require().NoError(json.Unmarshal([]byte(body), &response))
	s.Equal(expectedMsg, response["error"])
}

func (s *AuthHandlerTestSuite) TestSignup() {
	url := "/auth/signup"
	reqBody := builder.NewAuthBuilder().BuildSignupDTO()

	s.Run("success: returns 201 Created with the new user id", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Signup(gomock.Any(), reqBody).
			Return(&commands.SignupResult{UserID: newID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.SignupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(newID, response.UserID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
			{name: "short password", mutate: testutil.Field("password", strings.Repeat("a", 7))},
			{name: "missing full name", mutate: testutil.Field("full_name", nil)},
			{name: "admin role rejected by binding", mutate: testutil.Field("role", "admin")},
			{name: "instructor role rejected by binding", mutate: testutil.Field("role", "instructor")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(http.StatusBadRequest, rec.Code)
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
				name:           "email taken",
				commandsError:  commands.ErrEmailTaken,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Email already registered",
			},
			{
				name:           "role not allowed",
				commandsError:  commands.ErrRoleNotAllowed,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Role not allowed at signup",
			},
			{
				name:           "domain validation",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid request data",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
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
				s.mockCommands.EXPECT().Signup(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				s.Equal(tc.expectedStatus, rec.Code)
				s.assertAuthError(rec.Body.String(), tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().BuildReadModel()
	expectedToken := "test-jwt-token"
	expectedRefresh := "test-refresh-token"

	s.Run("success: returns 200 OK and sets token cookies", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{
				UserID:    returnUser.ID,
				TokenPair: &commands.TokenPair{AccessToken: expectedToken, RefreshToken: expectedRefresh},
			}, nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(expectedToken, response.AccessToken)
		s.Equal(returnUser.Email, response.User.Email)

		accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(accessCookie)
		s.Equal(expectedToken, accessCookie.Value)
		refreshCookie := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(refreshCookie)
		s.Equal(expectedRefresh, refreshCookie.Value)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email")},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "short password", mutate: testutil.Field("password", strings.Repeat("a", 7))},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(http.StatusBadRequest, rec.Code)
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
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "user not found",
				commandsError:  errs.ErrUserNotFound,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "user inactive",
				commandsError:  commands.ErrUserInactive,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Account is inactive",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				s.Equal(tc.expectedStatus, rec.Code)
				s.assertAuthError(rec.Body.String(), tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and clears cookies", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(accessCookie)
		s.Empty(accessCookie.Value)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns current user info", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response["email"])
	})

	s.Run("error: 401 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "user not found",
				queriesError:   errs.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				s.Equal(tc.expectedStatus, rec.Code)
				s.assertAuthError(rec.Body.String(), tc.expectedMsg)
			})
		}
	})
}
