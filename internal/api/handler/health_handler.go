package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether the database connection is alive.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a plain function to the Pinger interface.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler handles GET /api/health. It always answers 200; the body
// reports the live MongoDB connection state.
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	MongoDB string `json:"mongodb"`
}

// Check reports service and database status.
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c echo.Context) error {
	state := "Connected"
	if err := h.db.Ping(c.Request().Context()); err != nil {
		state = "Disconnected"
	}

	return c.JSON(http.StatusOK, healthResponse{
		Success: true,
		Message: "API Running",
		MongoDB: state,
	})
}
