package main

import (
	"context"
	"crypto/rand"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cropadvisor/config"
	"cropadvisor/database"
	"cropadvisor/pkg/logging"
	"cropadvisor/router"
	"cropadvisor/web"

	// Auth
	authCtrlImp "cropadvisor/pkg/auth/controllerImp"
	authRepoImp "cropadvisor/pkg/auth/repositoryImp"
	authSvcImp "cropadvisor/pkg/auth/serviceImp"
	"cropadvisor/pkg/auth/session"

	// Crop
	"cropadvisor/pkg/crop/classifier"
	cropCtrlImp "cropadvisor/pkg/crop/controllerImp"
	cropSvcImp "cropadvisor/pkg/crop/serviceImp"

	// Fertilizer
	fertCtrlImp "cropadvisor/pkg/fertilizer/controllerImp"
	"cropadvisor/pkg/fertilizer/reference"
	fertSvcImp "cropadvisor/pkg/fertilizer/serviceImp"

	// Pages + Health
	healthCtrlImp "cropadvisor/pkg/health/controllerImp"
	pagesCtrlImp "cropadvisor/pkg/pages/controllerImp"
)

func main() {
	// 1) Config + logger
	cfg := config.Load()
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	if cfg.EnvFileErr != nil {
		log.Debug("no .env loaded", zap.Error(cfg.EnvFileErr))
	}
	log.Info("config", zap.Any("config", cfg.Redacted()))

	// 2) DB (sqlite) + migrations
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal("open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}

	// 3) Reference table + classifier
	table, err := reference.Load(cfg.FertilizerTable)
	if err != nil {
		log.Fatal("load fertilizer table", zap.String("path", cfg.FertilizerTable), zap.Error(err))
	}
	model, err := classifier.Load(cfg.CropModel)
	if err != nil {
		log.Fatal("load crop model", zap.String("path", cfg.CropModel), zap.Error(err))
	}
	log.Info("tables loaded", zap.Int("reference_rows", table.Len()))

	// 4) Sessions
	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		if cfg.IsProduction() {
			log.Fatal("SESSION_SECRET must be set in production")
		}
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			log.Fatal("generate session secret", zap.Error(err))
		}
		log.Warn("SESSION_SECRET not set; using a random secret, sessions end on restart")
	}
	sessions := session.NewManager(secret, cfg.SessionTTL)

	// 5) Services + controllers
	authSvc, err := authSvcImp.NewAuthService(authRepoImp.New(db), sessions, 0, log)
	if err != nil {
		log.Fatal("auth service", zap.Error(err))
	}
	authCtrl := authCtrlImp.NewAuthController(authSvc, cfg.SessionTTL, cfg.IsProduction(), log)
	cropCtrl := cropCtrlImp.New(cropSvcImp.NewCropService(model, log), log)
	fertCtrl := fertCtrlImp.New(fertSvcImp.NewFertilizerService(table, log))
	hCtrl := healthCtrlImp.NewHealthCtrl(db, table, model)

	// 6) Echo
	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal("parse templates", zap.Error(err))
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	r := router.New(
		e,
		router.Options{DefaultLang: cfg.DefaultLang, StaticDir: cfg.StaticDir, Log: log},
		authSvc,
		pagesCtrlImp.New(),
		authCtrl,
		cropCtrl,
		fertCtrl,
		hCtrl,
	)

	// 7) Start + graceful shutdown
	go func() {
		log.Info("listening", zap.String("addr", ":"+cfg.Port))
		if err := r.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("stopped")
}
