package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropadvisor/pkg/pages/controller"
	"cropadvisor/web"
)

type pagesCtrl struct{}

func New() controller.PagesController { return &pagesCtrl{} }

func (h *pagesCtrl) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "index", web.NewPage(c, "Home"))
}

func (h *pagesCtrl) Disease(c echo.Context) error {
	return c.Render(http.StatusOK, "disease", web.NewPage(c, "Disease detection"))
}

// DiseasePredictor accepts the form but has no model behind it yet.
func (h *pagesCtrl) DiseasePredictor(c echo.Context) error {
	n := 0
	if c.Request().Method == http.MethodPost {
		params, err := c.FormParams()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "bad form")
		}
		for k, v := range params {
			if k != "lang" && len(v) > 0 && v[0] != "" {
				n++
			}
		}
	}
	p := web.NewPage(c, "Disease detection")
	p.Data = n
	return c.Render(http.StatusOK, "disease_result", p)
}
