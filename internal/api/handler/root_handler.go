package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RootHandler serves the static service descriptor at GET /.
type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

type rootResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

func (h *RootHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{
		Message: "FreelanceHub API",
		Endpoints: map[string]string{
			"health":   "/api/health",
			"register": "POST /api/auth/register",
			"login":    "POST /api/auth/login",
			"jobs":     "/api/jobs",
		},
	})
}
