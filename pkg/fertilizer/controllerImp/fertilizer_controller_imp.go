package controllerImp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropadvisor/pkg/fertilizer/controller"
	"cropadvisor/pkg/fertilizer/service"
	"cropadvisor/pkg/forms"
	"cropadvisor/web"
)

type FertilizerCtrl struct {
	svc service.FertilizerService
}

func New(svc service.FertilizerService) controller.FertilizerController {
	return &FertilizerCtrl{svc: svc}
}

func (h *FertilizerCtrl) Form(c echo.Context) error {
	p := web.NewPage(c, "Fertilizer advice")
	p.Data = h.svc.Crops()
	return c.Render(http.StatusOK, "fertilizers", p)
}

func (h *FertilizerCtrl) Required(c echo.Context) error {
	var f forms.Fertilizer
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bad form")
	}
	in, res := f.Validate()
	if !res.OK() {
		p := web.NewPage(c, "Fertilizer advice")
		p.Data = h.svc.Crops()
		p.Values = f.Values()
		p.Errors = res.Errors
		return c.Render(http.StatusUnprocessableEntity, "fertilizers", p)
	}

	adv, err := h.svc.Advise(c.Request().Context(), in.Nitrogen, in.Phosphorus, in.Potassium, in.Crop)
	if errors.Is(err, service.ErrUnknownCrop) {
		return web.RenderError(c, http.StatusNotFound, fmt.Sprintf("We have no reference values for %q.", in.Crop))
	}
	if err != nil {
		return err
	}

	p := web.NewPage(c, "Fertilizer advice")
	p.Data = adv
	return c.Render(http.StatusOK, "fertilizer_result", p)
}
