package response

import (
	"tarumbeta-server/internal/usecase/queries"

	"github.com/google/uuid"
)

type SignupResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}
