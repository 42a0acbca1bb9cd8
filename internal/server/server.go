/*
Package server implements the application's network transport layer.
It initializes the HTTP server, configures timeouts, and carries the
plan generator dependency into the request handlers.
*/
package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"fitplan-api/internal/planner"

	_ "github.com/joho/godotenv/autoload"
)

// Server defines the configuration and dependencies for the HTTP service.
type Server struct {
	// port specifies the TCP port the server will listen on.
	port int

	// generator runs the plan-generation pipeline for each request.
	generator *planner.Generator

	// modelReady records at startup whether a model API key was present;
	// without one every generation falls back to the deterministic plans.
	modelReady bool
}

// NewServer wires the generator into a configured *http.Server.
// It reads the port from the environment and sets production-ready
// network timeouts.
func NewServer(generator *planner.Generator) *http.Server {
	// Attempt to parse port from environment; fallback to 8080 if not set or invalid.
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port == 0 {
		port = 8080
	}

	newApp := &Server{
		port:       port,
		generator:  generator,
		modelReady: os.Getenv("GROQ_API_KEY") != "",
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", newApp.port),
		Handler:      newApp.RegisterRoutes(), // Injected from routes.go
		IdleTimeout:  time.Minute,             // Time to wait for the next request on keep-alive connections.
		ReadTimeout:  10 * time.Second,        // Maximum duration for reading the entire request.
		WriteTimeout: 120 * time.Second,       // Generation holds the response open while the model call runs.
	}

	return server
}
