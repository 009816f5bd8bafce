package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropadvisor/pkg/crop/classifier"
	"cropadvisor/pkg/health/controller"
)

var appStart = time.Now()

// Sizer reports how many rows a loaded table holds.
type Sizer interface {
	Len() int
}

type HealthCtrl struct {
	db        *gorm.DB
	reference Sizer
	model     classifier.Classifier
}

func NewHealthCtrl(db *gorm.DB, reference Sizer, model classifier.Classifier) controller.HealthController {
	return &HealthCtrl{db: db, reference: reference, model: model}
}

type sub struct {
	OK   bool   `json:"ok"`
	Err  string `json:"err,omitempty"`
	Rows int    `json:"rows,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := sub{OK: true}
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			db = sub{Err: "db.DB(): " + err.Error()}
		} else if err := sqlDB.PingContext(ctx); err != nil {
			db = sub{Err: "ping: " + err.Error()}
		}
	} else {
		db = sub{Err: "gorm db is nil"}
	}

	ref := sub{Err: "reference table not loaded"}
	if h.reference != nil && h.reference.Len() > 0 {
		ref = sub{OK: true, Rows: h.reference.Len()}
	}

	model := sub{OK: h.model != nil}
	if !model.OK {
		model.Err = "classifier not loaded"
	}

	allOK := db.OK && ref.OK && model.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database":   db,
			"reference":  ref,
			"classifier": model,
		},
		"time": time.Now().Format(time.RFC3339),
	}
	return c.JSON(status, resp)
}
