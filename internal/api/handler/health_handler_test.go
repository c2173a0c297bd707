package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHealthHandler_Connected(t *testing.T) {
	e := echo.New()
	handler := NewHealthHandler(PingerFunc(func(ctx context.Context) error { return nil }))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Check(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["mongodb"] != "Connected" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestHealthHandler_Disconnected(t *testing.T) {
	e := echo.New()
	handler := NewHealthHandler(PingerFunc(func(ctx context.Context) error {
		return errors.New("server selection timeout")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Check(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// Health stays 200 even with the database down; the body carries the state.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["mongodb"] != "Disconnected" {
		t.Fatalf("expected Disconnected, got %v", resp["mongodb"])
	}
}
