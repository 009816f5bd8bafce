package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cropadvisor/pkg/crop/controller"
	"cropadvisor/pkg/crop/service"
	"cropadvisor/pkg/forms"
	"cropadvisor/web"
)

type CropCtrl struct {
	svc service.CropService
	log *zap.Logger
}

func New(svc service.CropService, log *zap.Logger) controller.CropController {
	return &CropCtrl{svc: svc, log: log}
}

func (h *CropCtrl) Form(c echo.Context) error {
	p := web.NewPage(c, "Crop recommendation")
	p.Data = web.SoilFields
	return c.Render(http.StatusOK, "crops", p)
}

func (h *CropCtrl) Result(c echo.Context) error {
	var f forms.Soil
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bad form")
	}
	sample, res := f.Validate()
	if !res.OK() {
		p := web.NewPage(c, "Crop recommendation")
		p.Data = web.SoilFields
		p.Values = f.Values()
		p.Errors = res.Errors
		return c.Render(http.StatusUnprocessableEntity, "crops", p)
	}

	rec, err := h.svc.Recommend(c.Request().Context(), sample)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPrediction) || errors.Is(err, service.ErrUnknownLabel) {
			h.log.Error("recommend", zap.Error(err))
			return web.RenderError(c, http.StatusInternalServerError, "We could not work out a crop for these values.")
		}
		return err
	}

	p := web.NewPage(c, "Recommended crop")
	p.Data = rec
	return c.Render(http.StatusOK, "crop_result", p)
}
