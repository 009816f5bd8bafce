package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	SignupForm(c echo.Context) error
	Signup(c echo.Context) error
	LoginForm(c echo.Context) error
	Login(c echo.Context) error
	Logout(c echo.Context) error
	Dashboard(c echo.Context) error
}
