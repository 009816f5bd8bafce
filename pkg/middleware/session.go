package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cropadvisor/entities"
)

const (
	SessionCookie = "session"
	accountKey    = "account"
)

// SessionGate restores the account behind a session token. It returns an
// error for any token that does not name a live session.
type SessionGate interface {
	RequireSession(ctx context.Context, token string) (*entities.Account, error)
}

// Session attaches the logged-in account, if any, to the request. A stale
// cookie is cleared and the request continues anonymously.
func Session(gate SessionGate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(SessionCookie)
			if err != nil || ck.Value == "" {
				return next(c)
			}
			acc, err := gate.RequireSession(c.Request().Context(), ck.Value)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					ClearSessionCookie(c)
				}
				return next(c)
			}
			c.Set(accountKey, acc)
			return next(c)
		}
	}
}

// RequireLogin redirects anonymous requests to loginPath.
func RequireLogin(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := CurrentAccount(c); !ok {
				return c.Redirect(http.StatusSeeOther, WithLang(c, loginPath))
			}
			return next(c)
		}
	}
}

func CurrentAccount(c echo.Context) (*entities.Account, bool) {
	acc, ok := c.Get(accountKey).(*entities.Account)
	return acc, ok && acc != nil
}

func SessionToken(c echo.Context) string {
	if ck, err := c.Cookie(SessionCookie); err == nil {
		return ck.Value
	}
	return ""
}

func SetSessionCookie(c echo.Context, token string, ttl time.Duration, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true, SameSite: http.SameSiteLaxMode})
}
