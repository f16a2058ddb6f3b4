package middleware

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/bazarhub/marketplace-api/internal/api/metrics"
	"github.com/bazarhub/marketplace-api/internal/core/domain"
)

const (
	// SessionName is the cookie session consumed by the guards.
	SessionName = "marketplace_session"

	// Session value keys. Guards read these, only the login handler writes them.
	SessionUserIDKey = "userId"
	SessionRoleKey   = "role"

	// FlashKey is the one-shot notice slot the view layer reads and clears.
	FlashKey = "error_msg"

	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// SessionUserID returns the logged-in user's identifier claim, if any.
func SessionUserID(c echo.Context) (string, bool) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return "", false
	}
	id, ok := sess.Values[SessionUserIDKey].(string)
	return id, ok && id != ""
}

// SessionRole returns the session's role claim, if any.
func SessionRole(c echo.Context) (string, bool) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return "", false
	}
	role, ok := sess.Values[SessionRoleKey].(string)
	return role, ok && role != ""
}

// RequireLogin lets the request through when the session carries a user
// identifier. Otherwise it leaves a flash notice and redirects to the login
// page. A missing login is expected control flow, not an error: the guard
// never touches the identifier or role values.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := SessionUserID(c); ok {
				return next(c)
			}
			return redirectWithNotice(c, "login", LoginPath, "Please log in first.")
		}
	}
}

// RequireAdmin lets the request through when the session role is "admin".
// It checks the role only, not login: compose it after RequireLogin on any
// route needing both. An unauthenticated session has no role claim and falls
// through to the redirect safely.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role, ok := SessionRole(c); ok && role == domain.RoleAdmin {
				return next(c)
			}
			return redirectWithNotice(c, "admin", DashboardPath, "Unauthorized access.")
		}
	}
}

func redirectWithNotice(c echo.Context, guard, target, notice string) error {
	if sess, err := session.Get(SessionName, c); err == nil {
		sess.AddFlash(notice, FlashKey)
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			c.Logger().Warnf("guard: flash save failed: %v", err)
		}
	}
	metrics.GuardRedirectsTotal.WithLabelValues(guard).Inc()
	return c.Redirect(http.StatusSeeOther, target)
}
