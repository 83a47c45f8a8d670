package api

import "go-todo/internal/domain/model"

// AuthGateway defines the authentication calls against the external API.
type AuthGateway interface {
	// Login exchanges credentials for a bearer token.
	Login(dto model.LoginDTO) (string, error)

	// Register creates a new account.
	Register(dto model.RegisterDTO) error
}
