package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Raffi85/NetDash-Website/internal/errors"
	"github.com/Raffi85/NetDash-Website/internal/model"
	"github.com/Raffi85/NetDash-Website/internal/repository"
	"github.com/Raffi85/NetDash-Website/internal/session"
)

// ResolveSession reads the session cookie and, when it maps to a live
// session, attaches the claims to the request context. Requests without a
// valid session pass through anonymously; the guards below decide access.
func ResolveSession(sessions session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			sess, err := sessions.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				return next(c)
			}

			session.StoreInContext(c, sess.ID, &sess.Claims)
			return next(c)
		}
	}
}

// RequireAuth rejects requests without resolved session claims.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := session.FromContext(c); !ok {
			return c.JSON(http.StatusUnauthorized, apperrors.Error("Authentication required"))
		}
		return next(c)
	}
}

// RequireAdmin rejects requests whose session does not carry the platform
// admin role. It implies RequireAuth.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := session.FromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, apperrors.Error("Authentication required"))
		}
		if claims.Role != model.RolePlatformAdmin {
			return c.JSON(http.StatusForbidden, apperrors.Error("Admin access required"))
		}
		return next(c)
	}
}

// RecheckSuspension re-reads the user row on each authenticated request and
// cuts off sessions whose account was suspended after login. Claims are
// fixed at login time, so without this guard a suspension only takes effect
// on the next login.
func RecheckSuspension(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := session.FromContext(c)
			if !ok {
				return next(c)
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apperrors.Error("Authentication required"))
			}
			if user.IsSuspended {
				return c.JSON(http.StatusForbidden, apperrors.Error("Account is suspended"))
			}
			return next(c)
		}
	}
}
