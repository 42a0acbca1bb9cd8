package server

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// rootHandler is the liveness marker. Static body, no side effects.
func (s *Server) rootHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Fitness API is running.",
	})
}

// healthHandler reports process and host health for dashboards and probes.
func (s *Server) healthHandler(c echo.Context) error {
	v, _ := mem.VirtualMemory()
	cpuPercent, _ := cpu.Percent(0, false)

	cpuLoad := 0.0
	if len(cpuPercent) > 0 {
		cpuLoad = cpuPercent[0]
	}
	ramUsage := 0.0
	if v != nil {
		ramUsage = v.UsedPercent
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "up",
		"server_health": map[string]interface{}{
			"cpu_load":         fmt.Sprintf("%.1f%%", cpuLoad),
			"ram_usage":        fmt.Sprintf("%.1f%%", ramUsage),
			"goroutines":       runtime.NumGoroutine(),
			"model_configured": s.modelReady,
		},
	})
}
