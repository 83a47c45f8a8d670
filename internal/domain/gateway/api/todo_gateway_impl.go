package api

import (
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"go-todo/internal/domain/entity"
	"go-todo/internal/domain/model"
	"go-todo/internal/session"
	"go-todo/pkg/http"
	"go-todo/pkg/msg"
)

// todoAPIGatewayImpl implements TodoAPIGateway over pkg/http. The session
// store is an explicit constructor dependency, never a global lookup.
type todoAPIGatewayImpl struct {
	httpClient *http.Client
	session    session.Store
}

// NewTodoAPIGateway creates a new TodoAPIGateway against the given base URL,
// authenticating every call with the token held by sessionStore.
func NewTodoAPIGateway(baseURL string, clientOptions http.ClientOptions, sessionStore session.Store) TodoAPIGateway {
	return &todoAPIGatewayImpl{
		httpClient: http.NewHttpClient(baseURL, clientOptions),
		session:    sessionStore,
	}
}

func (gateway *todoAPIGatewayImpl) List() ([]entity.Todo, error) {
	raw, _, err := gateway.call(http.GET, "/todos/", nil, "todo.error.load-failed")
	if err != nil {
		return nil, err
	}

	var todos []entity.Todo
	if err := model.UnwrapEnvelope(raw, &todos); err != nil {
		return nil, fmt.Errorf("%s: %w", msg.GetMessage("todo.error.load-failed"), err)
	}
	if todos == nil {
		todos = []entity.Todo{}
	}
	return todos, nil
}

func (gateway *todoAPIGatewayImpl) Create(dto model.CreateTodoDTO) (*entity.Todo, error) {
	raw, _, err := gateway.call(http.POST, "/todos/", dto, "todo.error.add-failed")
	if err != nil {
		return nil, err
	}

	var todo entity.Todo
	if err := model.UnwrapEnvelope(raw, &todo); err != nil {
		return nil, fmt.Errorf("%s: %w", msg.GetMessage("todo.error.add-failed"), err)
	}
	return &todo, nil
}

func (gateway *todoAPIGatewayImpl) Update(id string, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	raw, _, err := gateway.call(http.PUT, "/todos/"+id, dto, "todo.error.update-failed")
	if err != nil {
		return nil, err
	}

	var todo entity.Todo
	if err := model.UnwrapEnvelope(raw, &todo); err != nil {
		return nil, fmt.Errorf("%s: %w", msg.GetMessage("todo.error.update-failed"), err)
	}
	return &todo, nil
}

// Delete is idempotent over the wire: a 404 for an already-gone task is
// treated as success.
func (gateway *todoAPIGatewayImpl) Delete(id string) error {
	_, status, err := gateway.call(http.DELETE, "/todos/"+id, nil, "todo.error.delete-failed")
	if status == nethttp.StatusNotFound {
		return nil
	}
	return err
}

// GetPublic does not require a session; a 404 yields (nil, nil).
func (gateway *todoAPIGatewayImpl) GetPublic(id string) (*entity.Todo, error) {
	var raw json.RawMessage
	_, errResp, status, err := gateway.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/todos/public/" + id).
		WithSuccessResp(&raw).
		WithErrorResp(&model.APIError{}).
		Execute()

	if status == nethttp.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, backendError("todo.error.load-failed", errResp, err)
	}

	var todo entity.Todo
	if err := model.UnwrapEnvelope(raw, &todo); err != nil {
		return nil, fmt.Errorf("%s: %w", msg.GetMessage("todo.error.load-failed"), err)
	}
	return &todo, nil
}

// call performs one authenticated exchange and returns the raw response body
// for envelope unwrapping, plus the HTTP status. It enforces the session
// contract: no token means no network call, and a 401 clears the stored
// token.
func (gateway *todoAPIGatewayImpl) call(method http.RequestMethod, path string, body any, errorKey string) (json.RawMessage, int, error) {
	token, err := gateway.session.Token()
	if err != nil {
		return nil, 0, session.ErrNoToken
	}

	var raw json.RawMessage
	request := gateway.httpClient.Request().
		WithMethod(method).
		WithPath(path).
		WithHeaders(map[string]string{"Authorization": "Bearer " + token}).
		WithSuccessResp(&raw).
		WithErrorResp(&model.APIError{})
	if body != nil {
		request = request.WithBody(body)
	}

	_, errResp, status, err := request.Execute()

	if status == nethttp.StatusUnauthorized {
		_ = gateway.session.Clear()
		return nil, status, session.ErrExpired
	}
	if err != nil {
		return nil, status, backendError(errorKey, errResp, err)
	}
	return raw, status, nil
}
