package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	appmw "github.com/bazarhub/marketplace-api/internal/api/middleware"
	"github.com/bazarhub/marketplace-api/internal/core/domain"
	"github.com/bazarhub/marketplace-api/internal/core/ports"
)

// stubUserService overrides only the operations a given test exercises.
type stubUserService struct {
	ports.UserService
	registerFn     func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	authenticateFn func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) Authenticate(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.authenticateFn(ctx, email, password)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// withSession runs h behind the cookie-session middleware the real router
// installs, since login and logout write session values.
func withSession(h echo.HandlerFunc) echo.HandlerFunc {
	store := sessions.NewCookieStore([]byte("test-secret"))
	return session.Middleware(store)(h)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.FirstName != "Alice" || input.Email != "a@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "user_1", FirstName: input.FirstName, Email: input.Email, Role: domain.RoleUser}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"first_name":"Alice","email":"a@example.com","password":"secret12"}`)
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["first_name"] != "Alice" || user["role"] != domain.RoleUser {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"first_name":"Bob","email":"b@example.com","password":"secret12"}`)
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"email":"x@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		authenticateFn: func(_ context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.AuthResult{
				Token: "token123",
				User:  &domain.User{ID: "user_1", FirstName: "Alice", Email: email, Role: domain.RoleAdmin},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"alice@example.com","password":"secret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := withSession(handler.Login)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}

	// Login must establish the browser session the guards read.
	found := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == appmw.SessionName {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected session cookie %q to be set", appmw.SessionName)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		authenticateFn: func(context.Context, string, string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"alice@example.com","password":"bad"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := withSession(handler.Login)(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_LockedAccount(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		authenticateFn: func(context.Context, string, string) (*ports.AuthResult, error) {
			return nil, domain.ErrAccountLocked
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"banned@example.com","password":"pwd"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := withSession(handler.Login)(c); !errors.Is(err, domain.ErrAccountLocked) {
		t.Fatalf("expected ErrAccountLocked, got %v", err)
	}
}

func TestAuthHandler_Logout_ClearsSession(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := withSession(handler.Logout)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == appmw.SessionName && cookie.MaxAge >= 0 {
			t.Fatalf("expected session cookie to be expired, got MaxAge=%d", cookie.MaxAge)
		}
	}
}
