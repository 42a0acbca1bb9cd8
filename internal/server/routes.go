package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Fully open CORS: the browser clients of this API are served from
	// arbitrary origins.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"*"},
		AllowHeaders: []string{"*"},
	}))

	e.Use(LoggerMiddleware)

	e.GET("/", s.rootHandler)
	e.GET("/health", s.healthHandler)
	e.POST("/api/fitness_generator", s.generatePlanHandler)

	return e
}

// generatePlanHandler parses the request body, runs the pipeline, and wraps
// the outcome in the response envelope. Profile errors and anything escaping
// the pipeline come back as a bare error response; everything else is a
// best-effort result with its own success flag and error list.
func (s *Server) generatePlanHandler(c echo.Context) error {
	var payload map[string]interface{}
	if err := c.Bind(&payload); err != nil {
		log.Warn().Err(err).Msg("generatePlanHandler: could not parse request body")
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success": false,
			"error":   "invalid request body: " + err.Error(),
		})
	}

	result, err := s.generator.Generate(c.Request().Context(), payload)
	if err != nil {
		log.Error().Err(err).Msg("generatePlanHandler: plan generation failed")
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    result,
	})
}

// LoggerMiddleware attaches a request-scoped logger carrying a request ID.
func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().Str("request_id", requestID).Logger()

		c.Set("logger", &logger)

		return next(c)
	}
}
