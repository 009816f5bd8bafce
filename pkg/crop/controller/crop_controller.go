package controller

import "github.com/labstack/echo/v4"

type CropController interface {
	Form(c echo.Context) error
	Result(c echo.Context) error
}
