package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/bazarhub/marketplace-api/internal/api/metrics"
	appmw "github.com/bazarhub/marketplace-api/internal/api/middleware"
	"github.com/bazarhub/marketplace-api/internal/core/domain"
	"github.com/bazarhub/marketplace-api/internal/core/ports"
)

// AuthHandler handles registration, login and logout. Login is the only place
// the session identity values are written; the guards only ever read them.
type AuthHandler struct {
	users ports.UserService
}

func NewAuthHandler(users ports.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Register(c.Request().Context(), toRegisterInput(req))
	if err != nil {
		return err
	}

	kind := "user"
	if user.IsClient() {
		kind = "client"
	}
	metrics.RegistrationsTotal.WithLabelValues(kind).Inc()

	return c.JSON(http.StatusCreated, authResponse{User: toUserResponse(user)})
}

// Login verifies credentials, establishes the browser session and returns a
// bearer token for the JSON API.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.users.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrAccountLocked):
			metrics.LoginsTotal.WithLabelValues("locked").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	sess, err := session.Get(appmw.SessionName, c)
	if err != nil {
		return err
	}
	sess.Values[appmw.SessionUserIDKey] = result.User.ID
	sess.Values[appmw.SessionRoleKey] = result.User.Role
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: result.Token, User: toUserResponse(result.User)})
}

// Logout clears the session identity.
//
// @Summary      Logout
// @Tags         auth
// @Success      204  "No Content"
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := session.Get(appmw.SessionName, c)
	if err != nil {
		return err
	}
	delete(sess.Values, appmw.SessionUserIDKey)
	delete(sess.Values, appmw.SessionRoleKey)
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
