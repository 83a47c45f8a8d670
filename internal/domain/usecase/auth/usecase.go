package auth

import "go-todo/internal/domain/model"

// UseCase drives the login/registration flow and owns the session lifecycle.
type UseCase interface {
	// Login authenticates and persists the returned bearer token.
	Login(dto model.LoginDTO) error

	// Register creates a new account; it does not log in.
	Register(dto model.RegisterDTO) error

	// Logout discards the stored session token.
	Logout() error

	// LoggedIn reports whether a session token is currently stored.
	LoggedIn() bool
}
