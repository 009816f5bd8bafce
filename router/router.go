package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"cropadvisor/pkg/middleware"
	"cropadvisor/web"
)

type Options struct {
	DefaultLang string
	// StaticDir serves assets from disk instead of the embedded copy.
	StaticDir string
	Log       *zap.Logger
}

func New(
	e *echo.Echo,
	opts Options,
	gate middleware.SessionGate,
	pagesCtrl interface {
		Home(echo.Context) error
		Disease(echo.Context) error
		DiseasePredictor(echo.Context) error
	},
	authCtrl interface {
		SignupForm(echo.Context) error
		Signup(echo.Context) error
		LoginForm(echo.Context) error
		Login(echo.Context) error
		Logout(echo.Context) error
		Dashboard(echo.Context) error
	},
	cropCtrl interface {
		Form(echo.Context) error
		Result(echo.Context) error
	},
	fertCtrl interface {
		Form(echo.Context) error
		Required(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.HTTPErrorHandler = errorPage(opts.Log)
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(middleware.RequestLogger(opts.Log))

	e.GET("/health", healthCtrl.Health)
	if opts.StaticDir != "" {
		e.Static("/static", opts.StaticDir)
	} else {
		e.StaticFS("/static", web.StaticFS())
	}

	site := e.Group("", middleware.Lang(opts.DefaultLang), middleware.Session(gate))

	site.GET("/", pagesCtrl.Home)
	site.GET("/crops", cropCtrl.Form)
	site.GET("/fertilizers", fertCtrl.Form)
	site.GET("/disease", pagesCtrl.Disease)

	site.GET("/signup", authCtrl.SignupForm)
	site.POST("/signup", authCtrl.Signup)
	site.GET("/login", authCtrl.LoginForm)
	site.POST("/login", authCtrl.Login)

	getPost := []string{http.MethodGet, http.MethodPost}
	requireLogin := middleware.RequireLogin("/login")
	site.Match(getPost, "/logout", authCtrl.Logout, requireLogin)
	site.Match(getPost, "/dashboard", authCtrl.Dashboard, requireLogin)

	site.POST("/cropsResult", cropCtrl.Result)
	site.POST("/fertilizersRequired", fertCtrl.Required)
	site.Match(getPost, "/diseasePredictor", pagesCtrl.DiseasePredictor)

	return e
}

// errorPage renders HTML for page routes and JSON for /health.
func errorPage(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := "Something went wrong on our side."
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = http.StatusText(code)
			if s, ok := he.Message.(string); ok && code < http.StatusInternalServerError {
				msg = s
			}
		}
		if code >= http.StatusInternalServerError {
			log.Error("handler error", zap.String("path", c.Request().URL.Path), zap.Error(err))
		}

		if c.Request().URL.Path == "/health" {
			_ = c.JSON(code, map[string]string{"error": msg})
			return
		}
		if rerr := web.RenderError(c, code, msg); rerr != nil {
			log.Error("render error page", zap.Error(rerr))
			_ = c.String(code, msg)
		}
	}
}
