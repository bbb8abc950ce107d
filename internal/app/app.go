package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cambio/internal/account"
	accounthandler "cambio/internal/account/handler"
	"cambio/internal/adapters/cache"
	"cambio/internal/adapters/postgres"
	"cambio/internal/alert"
	alerthandler "cambio/internal/alert/handler"
	"cambio/internal/api"
	"cambio/internal/auth"
	"cambio/internal/config"
	"cambio/internal/domain"
	"cambio/internal/exchange"
	exchangehandler "cambio/internal/exchange/handler"
	"cambio/internal/operation"
	operationhandler "cambio/internal/operation/handler"
	"cambio/internal/platform/db"
	httpserver "cambio/internal/platform/http"
	"cambio/internal/platform/metrics"
	"cambio/internal/profile"
	profilehandler "cambio/internal/profile/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	if appCfg.DbServer.AutoMigrate {
		if err = db.Migrate(startupCtx, pool); err != nil {
			logrus.WithError(err).Error("Failed to apply migrations")
			return err
		}
		logrus.Info("✅ Migrations applied")
	}

	// Rates and minimum policy are fixed for the process lifetime
	rates, err := domain.NewRateTable(appCfg.Rates.Buy, appCfg.Rates.Sell)
	if err != nil {
		logrus.WithError(err).Error("Invalid rate table")
		return err
	}
	policy, err := exchange.NewMinimumPolicy(appCfg.Limits.MinimumPolicy, appCfg.Limits.BaseMinimum)
	if err != nil {
		logrus.WithError(err).Error("Invalid minimum policy")
		return err
	}
	calculator := exchange.NewCalculator(rates, policy)
	logrus.WithFields(logrus.Fields{
		"buy":    rates.Buy.String(),
		"sell":   rates.Sell.String(),
		"policy": policy.Name(),
	}).Info("✅ Rate table loaded")

	wizardStore, err := cache.NewWizardStore(appCfg.Wizard.MaxItems, time.Duration(appCfg.Wizard.TTLSeconds)*time.Second)
	if err != nil {
		logrus.WithError(err).Error("Failed to create wizard store")
		return err
	}
	defer wizardStore.Close()

	exchangeMetrics := metrics.NewExchangeMetrics()

	// Repositories
	accountRepo := postgres.NewAccountRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	operationRepo := postgres.NewOperationRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)

	// Services
	exchangeService := exchange.NewService(calculator, wizardStore, accountRepo, operationRepo, exchangeMetrics)
	accountService := account.NewService(accountRepo)
	alertService := alert.NewService(alertRepo)
	operationService := operation.NewService(operationRepo)
	profileService := profile.NewService(profileRepo)

	scheduler := alert.NewScheduler(alertRepo, rates, exchangeMetrics, time.Duration(appCfg.Scheduler.AlertsIntervalSec)*time.Second)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	verifier := auth.NewVerifier(appCfg.Auth.JWTSecret, appCfg.Auth.Issuer, appCfg.Auth.Audience)
	router := api.NewRouter(api.Handlers{
		Exchange:   exchangehandler.NewExchangeHandler(exchangeService),
		Accounts:   accounthandler.NewAccountHandler(accountService),
		Alerts:     alerthandler.NewAlertHandler(alertService),
		Operations: operationhandler.NewOperationHandler(operationService),
		Profile:    profilehandler.NewProfileHandler(profileService),
		Metrics:    exchangeMetrics.Handler(),
	}, auth.Middleware(verifier))

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
