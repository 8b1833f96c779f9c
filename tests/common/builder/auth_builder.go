//go:build unit || e2e

package builder

import (
	reqdto "tarumbeta-server/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	FullName string
	Role     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
		FullName: "Test User",
		Role:     "learner",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Email:    a.Email,
		Password: a.Password,
		FullName: a.FullName,
		Role:     a.Role,
	}
}

// Fluent builder methods
func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) WithRole(role string) *AuthBuilder {
	a.Role = role
	return a
}
