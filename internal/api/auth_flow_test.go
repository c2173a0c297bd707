package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freelancehub/job-board/internal/api/handler"
	"github.com/freelancehub/job-board/internal/core/domain"
	"github.com/freelancehub/job-board/internal/core/service"
)

// memUserRepo is an in-memory AuthRepository mirroring the unique-email
// behaviour of the mongo implementation.
type memUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.seq++
	created := *user
	created.ID = "user_" + string(rune('0'+r.seq))
	stored := created
	r.users[created.Email] = &stored
	return &created, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// newAuthTestServer wires real handlers, validator, and error handler around
// an in-memory repository, so responses match production byte for byte.
func newAuthTestServer() (*echo.Echo, *memUserRepo) {
	repo := newMemUserRepo()
	svc := service.NewAuthService(repo, "test-secret", 7*24*time.Hour)
	h := handler.NewAuthHandler(svc)

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)
	return e, repo
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterThenLoginFlow(t *testing.T) {
	e, _ := newAuthTestServer()

	rec := postJSON(e, "/api/auth/register", `{"name":"Ana","email":"ana@x.com","password":"pw12345"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var reg map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &reg); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if reg["success"] != true {
		t.Fatalf("expected success true")
	}
	if token, _ := reg["token"].(string); token == "" {
		t.Fatalf("expected non-empty token")
	}
	user := reg["user"].(map[string]any)
	if user["email"] != "ana@x.com" {
		t.Fatalf("unexpected user email: %v", user["email"])
	}

	rec = postJSON(e, "/api/auth/login", `{"email":"ana@x.com","password":"pw12345"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var login map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if token, _ := login["token"].(string); token == "" {
		t.Fatalf("expected login token")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	e, repo := newAuthTestServer()

	rec := postJSON(e, "/api/auth/register", `{"name":"Ana","email":"ana@x.com","password":"pw12345"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", rec.Code)
	}

	rec = postJSON(e, "/api/auth/register", `{"name":"Impostor","email":"ana@x.com","password":"other99"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", rec.Code)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected a single user record, got %d", len(repo.users))
	}
}

func TestLogin_WrongPasswordAndUnknownEmail_IdenticalBodies(t *testing.T) {
	e, _ := newAuthTestServer()

	postJSON(e, "/api/auth/register", `{"name":"Ana","email":"ana@x.com","password":"pw12345"}`)

	wrongPassword := postJSON(e, "/api/auth/login", `{"email":"ana@x.com","password":"wrong1"}`)
	unknownEmail := postJSON(e, "/api/auth/login", `{"email":"ghost@x.com","password":"pw12345"}`)

	if wrongPassword.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPassword.Code, unknownEmail.Code)
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Fatalf("bodies differ:\n%s\n%s", wrongPassword.Body.String(), unknownEmail.Body.String())
	}
	want := `{"success":false,"message":"Invalid credentials"}` + "\n"
	if wrongPassword.Body.String() != want {
		t.Fatalf("unexpected body: %s", wrongPassword.Body.String())
	}
}

func TestRegister_PasswordNeverSerialized(t *testing.T) {
	e, _ := newAuthTestServer()

	rec := postJSON(e, "/api/auth/register", `{"name":"Ana","email":"ana@x.com","password":"pw12345"}`)
	body := rec.Body.String()
	if strings.Contains(body, "pw12345") || strings.Contains(body, "$2a$") || strings.Contains(body, "password") {
		t.Fatalf("password material leaked into response: %s", body)
	}

	rec = postJSON(e, "/api/auth/login", `{"email":"ana@x.com","password":"pw12345"}`)
	body = rec.Body.String()
	if strings.Contains(body, "pw12345") || strings.Contains(body, "$2a$") || strings.Contains(body, "password") {
		t.Fatalf("password material leaked into response: %s", body)
	}
}
