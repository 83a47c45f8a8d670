package main

import (
	"fmt"

	"go-todo/internal/fixture"
	"go-todo/pkg/log"
	"go-todo/pkg/resource"
)

// todo-fixture runs the in-memory backend double on a local port, so the CLI
// can be pointed at it with TODO_API_URL during development.
func main() {
	port := resource.GetIntOrDefault("app.fixture.port", 8080)
	address := fmt.Sprintf(":%d", port)

	log.Infof("fixture backend listening on %s", address)
	if err := fixture.NewServer().Start(address); err != nil {
		log.Fatalf("fixture backend stopped: %v", err)
	}
}
