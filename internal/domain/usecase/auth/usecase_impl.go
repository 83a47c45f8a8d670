package auth

import (
	"errors"
	"strings"

	"go-todo/internal/domain/gateway/api"
	"go-todo/internal/domain/model"
	"go-todo/internal/session"
	"go-todo/pkg/msg"
)

type authUseCase struct {
	gateway api.AuthGateway
	session session.Store
}

func NewAuthUseCase(gateway api.AuthGateway, sessionStore session.Store) UseCase {
	return &authUseCase{
		gateway: gateway,
		session: sessionStore,
	}
}

func (uc *authUseCase) Login(dto model.LoginDTO) error {
	dto.Username = strings.TrimSpace(dto.Username)
	if dto.Username == "" || dto.Password == "" {
		return errors.New(msg.GetMessage("auth.error.empty-credentials"))
	}

	token, err := uc.gateway.Login(dto)
	if err != nil {
		return err
	}

	return uc.session.Save(token)
}

func (uc *authUseCase) Register(dto model.RegisterDTO) error {
	dto.Username = strings.TrimSpace(dto.Username)
	dto.Email = strings.TrimSpace(dto.Email)
	if dto.Username == "" || dto.Email == "" || dto.Password == "" {
		return errors.New(msg.GetMessage("auth.error.empty-fields"))
	}

	return uc.gateway.Register(dto)
}

func (uc *authUseCase) Logout() error {
	return uc.session.Clear()
}

func (uc *authUseCase) LoggedIn() bool {
	_, err := uc.session.Token()
	return err == nil
}
