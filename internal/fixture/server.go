// Package fixture is an in-memory stand-in for the external todo API. It
// implements the consumed REST contract so the CLI and the gateway tests can
// run against a real HTTP surface without the production backend. Tokens are
// opaque uuids; credentials are only checked for presence.
package fixture

import (
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"go-todo/internal/domain/entity"
	"go-todo/internal/domain/model"
)

// response is the backend's envelope shape.
type response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Server holds the in-memory state behind the fixture routes.
type Server struct {
	echo *echo.Echo

	mu     sync.Mutex
	todos  []entity.Todo
	tokens map[string]bool
	users  map[string]string
}

func NewServer() *Server {
	server := &Server{
		echo:   echo.New(),
		todos:  []entity.Todo{},
		tokens: map[string]bool{},
		users:  map[string]string{},
	}
	server.echo.HideBanner = true
	server.initRoutes()
	return server
}

func (s *Server) initRoutes() {
	s.echo.POST("/auth/login", s.Login)
	s.echo.POST("/auth/register", s.Register)

	s.echo.GET("/todos/", s.FindAll, s.requireBearer)
	s.echo.POST("/todos/", s.Create, s.requireBearer)
	s.echo.PUT("/todos/:id", s.Update, s.requireBearer)
	s.echo.DELETE("/todos/:id", s.Delete, s.requireBearer)
	s.echo.GET("/todos/public/:id", s.FindPublic)
}

// Handler exposes the routes for httptest mounting.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves the fixture on the given address, blocking until shutdown.
func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

// requireBearer rejects requests without a token the fixture issued.
func (s *Server) requireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return c.JSON(http.StatusUnauthorized, response{Status: "error", Message: "Authorization header required"})
		}

		s.mu.Lock()
		valid := s.tokens[token]
		s.mu.Unlock()
		if !valid {
			return c.JSON(http.StatusUnauthorized, response{Status: "error", Message: "Invalid or expired token"})
		}

		return next(c)
	}
}

func (s *Server) Login(c echo.Context) error {
	var dto model.LoginDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, response{Status: "error", Message: "Invalid request body"})
	}
	if dto.Username == "" || dto.Password == "" {
		return c.JSON(http.StatusBadRequest, response{Status: "error", Message: "Username and password are required"})
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = true
	s.mu.Unlock()

	return c.JSON(http.StatusOK, response{
		Status:  "success",
		Message: "Login successful",
		Data:    map[string]string{"token": token},
	})
}

func (s *Server) Register(c echo.Context) error {
	var dto model.RegisterDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, response{Status: "error", Message: "Invalid request body"})
	}
	if dto.Username == "" || dto.Email == "" || dto.Password == "" {
		return c.JSON(http.StatusBadRequest, response{Status: "error", Message: "Username, email and password are required"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[dto.Username]; exists {
		return c.JSON(http.StatusConflict, response{Status: "error", Message: "Username already taken"})
	}
	s.users[dto.Username] = dto.Email

	return c.JSON(http.StatusCreated, response{Status: "success", Message: "Registration successful"})
}

// FindAll returns the collection as a bare array: the contract allows both
// the enveloped and the bare shape, and the fixture deliberately serves one
// of each so clients exercise both decode paths.
func (s *Server) FindAll(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]entity.Todo, len(s.todos))
	copy(list, s.todos)
	return c.JSON(http.StatusOK, list)
}

func (s *Server) Create(c echo.Context) error {
	var dto model.CreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, response{Status: "error", Message: "Invalid request body"})
	}
	if strings.TrimSpace(dto.Title) == "" {
		return c.JSON(http.StatusUnprocessableEntity, response{Status: "error", Message: "Title is required"})
	}

	todo := entity.NewTodo(entity.Todo{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(dto.Title),
		Description: dto.Description,
		Priority:    dto.Priority,
		Category:    dto.Category,
		DueDate:     dto.DueDate,
	})

	s.mu.Lock()
	s.todos = append([]entity.Todo{todo}, s.todos...)
	s.mu.Unlock()

	return c.JSON(http.StatusCreated, response{
		Status:  "success",
		Message: "Todo created successfully",
		Data:    todo,
	})
}

func (s *Server) Update(c echo.Context) error {
	id := c.Param("id")

	var dto model.UpdateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, response{Status: "error", Message: "Invalid request body"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID != id {
			continue
		}

		todo := &s.todos[i]
		if strings.TrimSpace(dto.Title) != "" {
			todo.Title = strings.TrimSpace(dto.Title)
		}
		todo.Description = dto.Description
		if dto.Priority != "" {
			todo.Priority = dto.Priority
		}
		if dto.Category != "" {
			todo.Category = dto.Category
		}
		if dto.Status != "" {
			todo.Status = dto.Status
		}
		todo.DueDate = dto.DueDate
		if dto.Subtasks != nil {
			todo.Subtasks = dto.Subtasks
		}
		todo.Touch()

		return c.JSON(http.StatusOK, response{
			Status:  "success",
			Message: "Todo updated successfully",
			Data:    *todo,
		})
	}

	return c.JSON(http.StatusNotFound, response{Status: "error", Message: "Todo not found"})
}

func (s *Server) Delete(c echo.Context) error {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return c.JSON(http.StatusOK, response{Status: "success", Message: "Todo deleted successfully"})
		}
	}

	return c.JSON(http.StatusNotFound, response{Status: "error", Message: "Todo not found"})
}

func (s *Server) FindPublic(c echo.Context) error {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, todo := range s.todos {
		if todo.ID == id {
			return c.JSON(http.StatusOK, response{
				Status:  "success",
				Message: "Todo retrieved successfully",
				Data:    todo,
			})
		}
	}

	return c.JSON(http.StatusNotFound, response{Status: "error", Message: "Todo not found"})
}
