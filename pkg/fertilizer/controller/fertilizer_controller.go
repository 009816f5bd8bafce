package controller

import "github.com/labstack/echo/v4"

type FertilizerController interface {
	Form(c echo.Context) error
	Required(c echo.Context) error
}
