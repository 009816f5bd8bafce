package controller

import "github.com/labstack/echo/v4"

// PagesController serves the pages that carry no form logic.
type PagesController interface {
	Home(c echo.Context) error
	Disease(c echo.Context) error
	DiseasePredictor(c echo.Context) error
}
