package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-todo/internal/domain/model"
	"go-todo/internal/session"
)

// fakeAuthGateway records calls and serves canned results.
type fakeAuthGateway struct {
	token    string
	loginErr error
	logins   int
}

func (g *fakeAuthGateway) Login(dto model.LoginDTO) (string, error) {
	g.logins++
	if g.loginErr != nil {
		return "", g.loginErr
	}
	return g.token, nil
}

func (g *fakeAuthGateway) Register(dto model.RegisterDTO) error {
	return nil
}

func TestLoginSavesToken(t *testing.T) {
	gateway := &fakeAuthGateway{token: "issued-token"}
	store := session.NewMemStore("")
	useCase := NewAuthUseCase(gateway, store)

	require.NoError(t, useCase.Login(model.LoginDTO{Username: "user", Password: "pw"}))

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
	assert.True(t, useCase.LoggedIn())
}

func TestLoginEmptyCredentialsSkipsGateway(t *testing.T) {
	gateway := &fakeAuthGateway{token: "unused"}
	useCase := NewAuthUseCase(gateway, session.NewMemStore(""))

	assert.Error(t, useCase.Login(model.LoginDTO{Username: "  ", Password: "pw"}))
	assert.Error(t, useCase.Login(model.LoginDTO{Username: "user", Password: ""}))
	assert.Zero(t, gateway.logins)
}

func TestLoginFailureKeepsStoreEmpty(t *testing.T) {
	gateway := &fakeAuthGateway{loginErr: errors.New("bad credentials")}
	store := session.NewMemStore("")
	useCase := NewAuthUseCase(gateway, store)

	require.Error(t, useCase.Login(model.LoginDTO{Username: "user", Password: "pw"}))

	_, err := store.Token()
	assert.ErrorIs(t, err, session.ErrNoToken)
	assert.False(t, useCase.LoggedIn())
}

func TestRegisterValidatesFields(t *testing.T) {
	useCase := NewAuthUseCase(&fakeAuthGateway{}, session.NewMemStore(""))

	assert.Error(t, useCase.Register(model.RegisterDTO{Username: "u", Email: "", Password: "pw"}))
	assert.NoError(t, useCase.Register(model.RegisterDTO{Username: "u", Email: "u@example.com", Password: "pw"}))
}

func TestLogout(t *testing.T) {
	store := session.NewMemStore("active")
	useCase := NewAuthUseCase(&fakeAuthGateway{}, store)

	assert.True(t, useCase.LoggedIn())
	require.NoError(t, useCase.Logout())
	assert.False(t, useCase.LoggedIn())

	// Logging out twice stays a no-op.
	assert.NoError(t, useCase.Logout())
}
