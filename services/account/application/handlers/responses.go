package handlers

import (
	"github.com/google/uuid"

	"github.com/wardrobecapital/wardrobe/services/account/domain/models"
)

// CredentialsRequest is the body of register and login.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,max=64" example:"alice"`
	Password string `json:"password" validate:"required,max=72" example:"correct horse"`
} // @name CredentialsRequest

// AccountResponse identifies the logged-in account.
type AccountResponse struct {
	ID       uuid.UUID `json:"id"       example:"123e4567-e89b-12d3-a456-426614174000"`
	Username string    `json:"username" example:"alice"`
} // @name Account

// MessageResponse is returned by operations without a body of their own.
type MessageResponse struct {
	Message string `json:"message" example:"Logged out"`
} // @name AccountMessageResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid username or password"`
} // @name AccountErrorResponse

func toAccountResponse(a *models.Account) AccountResponse {
	return AccountResponse{ID: a.ID, Username: a.Username}
}
