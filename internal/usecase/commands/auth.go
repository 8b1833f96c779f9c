package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"tarumbeta-server/internal/domain/user"
	reqdto "tarumbeta-server/internal/handler/dto/request"
	"tarumbeta-server/internal/infra"
	"tarumbeta-server/internal/pkg/errs"
	"tarumbeta-server/internal/pkg/jwt"
	"tarumbeta-server/internal/pkg/password"
	"tarumbeta-server/internal/usecase/queries"
	"tarumbeta-server/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
	ErrEmailTaken           = errs.New("email already registered")
	ErrRoleNotAllowed       = errs.New("role not allowed at signup")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type SignupResult struct {
	UserID uuid.UUID
}

type AuthCommands interface {
	Signup(ctx context.Context, req reqdto.SignupRequest) (*SignupResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, req reqdto.SignupRequest) (*SignupResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	pwd, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	// Instructor and admin are earned through moderation, never claimed
	// at signup.
	if !role.IsSignupRole() {
		return nil, ErrRoleNotAllowed
	}

	hash, err := password.HashPassword(pwd.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	newUser, err := user.NewUser(email, hash, req.FullName, role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var result SignupResult
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), newUser)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrEmailTaken)
			}
			return derr
		}
		result = SignupResult{UserID: id}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(userReadModel.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userReadModel.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), userReadModel.ID)
		if updateErr != nil {
			slog.Warn("failed to update last login", "user_id", userReadModel.ID, "error", updateErr.Error())
			// Continue without failing - this is not critical
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", userReadModel.ID, "error", err.Error())
		// Continue without failing - login was successful, only last_login update failed
	}

	return &LoginResult{
		UserID: userReadModel.ID,
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate user still exists and is active
	userReadModel, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || userReadModel == nil {
		return nil, errs.ErrUserNotFound
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	newRefreshToken, err := a.jwtService.GenerateRefreshToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	userReadModel, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, ErrInvalidCredentials
	}

	if userReadModel == nil {
		return nil, errs.ErrUserNotFound
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	err = password.ComparePassword(hashedPassword, credentials.Password().Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return userReadModel, nil
}
