package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cropadvisor/pkg/auth/controller"
	"cropadvisor/pkg/auth/service"
	"cropadvisor/pkg/forms"
	"cropadvisor/pkg/middleware"
	"cropadvisor/web"
)

type authCtrl struct {
	svc          service.AuthService
	ttl          time.Duration
	secureCookie bool
	log          *zap.Logger
}

func NewAuthController(svc service.AuthService, ttl time.Duration, secureCookie bool, log *zap.Logger) controller.AuthController {
	return &authCtrl{svc: svc, ttl: ttl, secureCookie: secureCookie, log: log}
}

func (h *authCtrl) SignupForm(c echo.Context) error {
	return c.Render(http.StatusOK, "signup", web.NewPage(c, "Sign up"))
}

func (h *authCtrl) Signup(c echo.Context) error {
	var f forms.Signup
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bad form")
	}
	res := f.Validate()
	if res.OK() {
		_, err := h.svc.Register(c.Request().Context(), f.Name, f.Email, f.Password)
		switch {
		case errors.Is(err, service.ErrDuplicateEmail):
			res.Add("email", "That email is already taken. Please choose a different one.")
		case errors.Is(err, service.ErrPasswordTooLong):
			res.Add("password", "Field is too long.")
		case err != nil:
			return err
		default:
			return c.Redirect(http.StatusSeeOther, middleware.WithLang(c, "/login"))
		}
	}

	p := web.NewPage(c, "Sign up")
	p.Values = map[string]string{"name": f.Name, "email": f.Email}
	p.Errors = res.Errors
	return c.Render(http.StatusUnprocessableEntity, "signup", p)
}

func (h *authCtrl) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login", web.NewPage(c, "Log in"))
}

// Login never says why credentials were refused.
func (h *authCtrl) Login(c echo.Context) error {
	var f forms.Login
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bad form")
	}
	p := web.NewPage(c, "Log in")
	p.Values = map[string]string{"email": f.Email}

	res := f.Validate()
	if !res.OK() {
		p.Errors = res.Errors
		return c.Render(http.StatusUnprocessableEntity, "login", p)
	}

	token, acc, err := h.svc.Authenticate(c.Request().Context(), f.Email, f.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		h.log.Info("login refused", zap.String("email", f.Email))
		return c.Render(http.StatusUnauthorized, "login", p)
	}
	if err != nil {
		return err
	}

	middleware.SetSessionCookie(c, token, h.ttl, h.secureCookie)
	h.log.Info("login", zap.Uint("account_id", acc.ID))
	return c.Redirect(http.StatusSeeOther, middleware.WithLang(c, "/"))
}

func (h *authCtrl) Logout(c echo.Context) error {
	if err := h.svc.EndSession(c.Request().Context(), middleware.SessionToken(c)); err != nil {
		h.log.Warn("end session", zap.Error(err))
	}
	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, middleware.WithLang(c, "/"))
}

func (h *authCtrl) Dashboard(c echo.Context) error {
	return c.Render(http.StatusOK, "dashboard", web.NewPage(c, "Dashboard"))
}
