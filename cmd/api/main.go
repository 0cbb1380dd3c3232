package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/elitekutzdev/elitekutz-sms/internal/api/http"
	"github.com/elitekutzdev/elitekutz-sms/internal/api/http/handlers"
	"github.com/elitekutzdev/elitekutz-sms/internal/auth"
	"github.com/elitekutzdev/elitekutz-sms/internal/config"
	"github.com/elitekutzdev/elitekutz-sms/internal/observability"
	"github.com/elitekutzdev/elitekutz-sms/internal/roster"
	"github.com/elitekutzdev/elitekutz-sms/internal/service"
	"github.com/elitekutzdev/elitekutz-sms/internal/sms"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	members, err := roster.Load(cfg.Roster.Path, cfg.Roster.Inline)
	if err != nil {
		logger.Fatal("failed to load roster", zap.Error(err))
	}
	store := roster.NewStore(members)
	logger.Info("roster loaded", zap.Int("staff", len(members)))

	metrics := observability.NewMetrics()
	sender := sms.NewSenderFromConfig(cfg.Twilio, logger)

	notificationService := service.NewNotificationService(service.NotificationDependencies{
		Store:   store,
		Sender:  sender,
		Logger:  logger,
		Metrics: metrics,
	})
	inboundService := service.NewInboundService(service.InboundDependencies{
		Store:  store,
		Sender: sender,
		Logger: logger,
	})
	staffService := service.NewStaffService(store, logger)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	kioskAuth := auth.NewKioskAuth(tokens, cfg.Auth.APIKeyHash)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, staffService),
		Events:    handlers.NewEventsHandler(notificationService),
		Inbound:   handlers.NewInboundHandler(inboundService, cfg.Twilio, logger),
		Staff:     handlers.NewStaffHandler(staffService),
		KioskAuth: kioskAuth,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
