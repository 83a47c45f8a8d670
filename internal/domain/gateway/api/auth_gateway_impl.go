package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-todo/internal/domain/model"
	"go-todo/pkg/http"
	"go-todo/pkg/msg"
)

// authGatewayImpl implements AuthGateway over the REST backend.
type authGatewayImpl struct {
	httpClient *http.Client
}

// NewAuthGateway creates a new AuthGateway against the given base URL.
func NewAuthGateway(baseURL string, clientOptions http.ClientOptions) AuthGateway {
	return &authGatewayImpl{
		httpClient: http.NewHttpClient(baseURL, clientOptions),
	}
}

// Login exchanges credentials for a bearer token. The token is accepted from
// `token` or `access_token`, nested under a data envelope or bare.
func (gateway *authGatewayImpl) Login(dto model.LoginDTO) (string, error) {
	var raw json.RawMessage
	_, errResp, _, err := gateway.httpClient.Request().
		WithMethod(http.POST).
		WithPath("/auth/login").
		WithBody(dto).
		WithSuccessResp(&raw).
		WithErrorResp(&model.APIError{}).
		Execute()

	if err != nil {
		return "", backendError("auth.error.login-failed", errResp, err)
	}

	var tokenResp model.TokenResponse
	if err := model.UnwrapEnvelope(raw, &tokenResp); err != nil {
		return "", fmt.Errorf("%s: %w", msg.GetMessage("auth.error.login-failed"), err)
	}

	token := tokenResp.BearerToken()
	if token == "" {
		return "", errors.New(msg.GetMessage("auth.error.login-failed"))
	}
	return token, nil
}

// Register creates a new account.
func (gateway *authGatewayImpl) Register(dto model.RegisterDTO) error {
	_, errResp, _, err := gateway.httpClient.Request().
		WithMethod(http.POST).
		WithPath("/auth/register").
		WithBody(dto).
		WithErrorResp(&model.APIError{}).
		Execute()

	if err != nil {
		return backendError("auth.error.register-failed", errResp, err)
	}
	return nil
}

// backendError surfaces the backend's message field when present, falling
// back to the catalog default for the attempted action.
func backendError(defaultKey string, errResp any, err error) error {
	if apiErr, ok := errResp.(*model.APIError); ok && apiErr != nil && apiErr.Message != "" {
		return errors.New(apiErr.Message)
	}
	return fmt.Errorf("%s: %w", msg.GetMessage(defaultKey), err)
}
