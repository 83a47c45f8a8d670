// Command go-todo is a task list client working against a local store
// (file, sqlite, redis) or a remote REST backend, selected by configuration.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"go-todo/configs"
	"go-todo/internal/domain/gateway/api"
	"go-todo/internal/domain/gateway/db"
	"go-todo/internal/domain/usecase/auth"
	"go-todo/internal/domain/usecase/todo"
	"go-todo/internal/session"
	"go-todo/pkg/http"
	"go-todo/pkg/redis"
	"go-todo/pkg/resource"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "go-todo",
	Short:         "go-todo - manage your task list from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd)
	rootCmd.AddCommand(addCmd, listCmd, showCmd, toggleCmd, editCmd, updateCmd, deleteCmd, clearCmd)
	rootCmd.AddCommand(subtaskCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the go-todo version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("go-todo " + version)
	},
}

const version = "1.2.0"

// sessionStore returns the file-backed session shared by every command.
func sessionStore() session.Store {
	return session.NewFileStore(configs.Env.DataDir)
}

func clientOptions() http.ClientOptions {
	return http.ClientOptions{
		ReadTimeout:       resource.GetDurationOrDefault("app.api.read-timeout", 0),
		ConnectionTimeout: resource.GetDurationOrDefault("app.api.connection-timeout", 0),
		Logger:            http.NewZapLogger(),
	}
}

func apiBaseURL() string {
	return resource.GetStringOrDefault("app.api.base-url", "http://localhost:8080")
}

func newAuthUseCase() auth.UseCase {
	gateway := api.NewAuthGateway(apiBaseURL(), clientOptions())
	return auth.NewAuthUseCase(gateway, sessionStore())
}

func newTodoAPIGateway() api.TodoAPIGateway {
	return api.NewTodoAPIGateway(apiBaseURL(), clientOptions(), sessionStore())
}

// newTodoGateway selects the storage strategy from configuration. The remote
// backend is wrapped in the optimistic cache so failed calls roll back.
func newTodoGateway() (db.TodoGateway, *db.CachedTodoGateway, error) {
	backend := resource.GetStringOrDefault("app.storage.backend", "file")
	dataDir := configs.Env.DataDir

	switch backend {
	case "file":
		return db.NewFileTodoGateway(dataDir), nil, nil

	case "sqlite":
		sqliteFile := resource.GetStringOrDefault("app.storage.sqlite-file", "todos.db")
		gateway, err := db.NewGormTodoGateway(filepath.Join(dataDir, sqliteFile))
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return gateway, nil, nil

	case "redis":
		client, err := redis.NewClient(&redis.Config{
			Host:     resource.GetStringOrDefault("app.redis.host", "localhost"),
			Port:     resource.GetIntOrDefault("app.redis.port", 6379),
			Password: resource.GetString("app.redis.password"),
			Database: resource.GetInt("app.redis.database"),
		})
		if err != nil {
			return nil, nil, err
		}
		return db.NewRedisTodoGateway(context.Background(), client), nil, nil

	case "remote":
		cache := db.NewCachedTodoGateway(api.NewRemoteTodoGateway(newTodoAPIGateway()))
		return cache, cache, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func newTodoUseCase() (todo.UseCase, error) {
	gateway, _, err := newTodoGateway()
	if err != nil {
		return nil, err
	}
	return todo.NewTodoUseCase(gateway), nil
}
