package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

var appStart = time.Now()

type (
	// HealthCheck reports whether a dependency is reachable.
	HealthCheck func(ctx context.Context) error

	HealthHandler interface {
		Health(c *fiber.Ctx) error
	}

	healthHandler struct {
		checks map[string]HealthCheck
	}

	checkResult struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}
)

func NewHealthHandler(checks map[string]HealthCheck) HealthHandler {
	return &healthHandler{checks: checks}
}

func (h *healthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 800*time.Millisecond)
	defer cancel()

	allOK := true
	results := make(map[string]checkResult, len(h.checks))
	for name, check := range h.checks {
		result := checkResult{OK: true}
		if err := check(ctx); err != nil {
			allOK = false
			result = checkResult{OK: false, Err: err.Error()}
		}
		results[name] = result
	}

	status := fiber.StatusOK
	if !allOK {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{
		"status":     fiber.Map{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     results,
		"time":       time.Now().Format(time.RFC3339),
	})
}
