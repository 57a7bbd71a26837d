package session

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	claimsContextKey    = "session_claims"
	sessionIDContextKey = "session_id"
)

// StoreInContext attaches resolved claims and the session identifier to the
// request context so handlers and guards read an explicit request-scoped
// value rather than ambient global state.
func StoreInContext(c echo.Context, sessionID string, claims *Claims) {
	c.Set(claimsContextKey, claims)
	c.Set(sessionIDContextKey, sessionID)
}

// FromContext returns the claims resolved for the current request, if any.
func FromContext(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	return claims, ok && claims != nil
}

// IDFromContext returns the current request's session identifier, if any.
func IDFromContext(c echo.Context) (string, bool) {
	id, ok := c.Get(sessionIDContextKey).(string)
	return id, ok && id != ""
}

// WriteCookie sets the session cookie. remember controls whether the cookie
// persists for the extended lifetime or ends with the browser session.
func WriteCookie(c echo.Context, sessionID string, remember, secure bool) {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	if remember {
		cookie.MaxAge = int(RememberMeTTL.Seconds())
	}
	c.SetCookie(cookie)
}

// ClearCookie expires the session cookie.
func ClearCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
