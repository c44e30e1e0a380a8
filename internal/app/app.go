package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goldrates/internal/adapters"
	"goldrates/internal/adapters/cache"
	"goldrates/internal/adapters/httpclient"
	"goldrates/internal/adapters/postgres"
	"goldrates/internal/api"
	"goldrates/internal/config"
	"goldrates/internal/platform/db"
	httpserver "goldrates/internal/platform/http"
	"goldrates/internal/portfolio"
	portfoliohandler "goldrates/internal/portfolio/handler"
	"goldrates/internal/prices"
	priceshandler "goldrates/internal/prices/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and the
// snapshot recorder.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	if appCfg.RapidAPI.Key == "" {
		// Authenticated feeds will fail and sources will serve fallback data.
		logrus.Warn("RAPIDAPI_KEY is empty, live price feeds will be unavailable")
	}

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool and migrations
	if err = db.Migrate(startupCtx, appCfg.DbServer); err != nil {
		logrus.WithError(err).Error("Error applying migrations")
		return err
	}
	logrus.Info("✅ Migrations applied")

	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Base HTTP client (configurable timeout, 10s default)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// Supplementary rate client with a short-lived table cache
	rateCache, err := cache.NewRateTableCache(16, time.Duration(appCfg.ExchangeRate.CacheTTLSeconds)*time.Second)
	if err != nil {
		return err
	}
	defer rateCache.Close()

	rateClient := httpclient.NewExchangeRateClient(baseHTTPClient, appCfg.ExchangeRate.BaseURL)
	augmenter := prices.NewAugmenter(rateClient, rateCache, time.Duration(appCfg.ExchangeRate.TimeoutSeconds)*time.Second)

	// Price source strategy
	source, err := buildPriceSource(appCfg, baseHTTPClient, augmenter)
	if err != nil {
		return err
	}
	logrus.Infof("✅ Price source %q selected", source.Name())

	// Repositories
	portfolioRepo := postgres.NewPortfolioRepository(pool)
	historyRepo := postgres.NewHistoryRepository(pool)

	// Services
	priceService := prices.NewService(source, historyRepo)
	portfolioService := portfolio.NewService(portfolioRepo)

	// Snapshot recorder
	if appCfg.Recorder.Enabled {
		recorder := prices.NewRecorder(priceService, historyRepo, time.Duration(appCfg.Recorder.IntervalSeconds)*time.Second)
		// Ensure recorder stops before DB pool closes
		defer func() {
			if shutDownErr := recorder.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Recorder shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := recorder.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start snapshot recorder")
			return startErr
		}
		logrus.Info("✅ Snapshot recorder activation successful")
	}

	// Handlers and router
	priceHandler := priceshandler.NewPriceHandler(priceService)
	portfolioHandler := portfoliohandler.NewPortfolioHandler(portfolioService)
	router := api.NewRouter(priceHandler, portfolioHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

func buildPriceSource(cfg *config.AppConfig, httpClient *http.Client, augmenter *prices.Augmenter) (adapters.PriceSource, error) {
	switch cfg.PriceSource.Provider {
	case "harem":
		client := httpclient.NewHaremClient(httpClient, cfg.RapidAPI.HaremHost, cfg.RapidAPI.Key)
		return prices.NewHaremSource(client, augmenter), nil
	case "goldfx":
		client := httpclient.NewGoldFXClient(httpClient, cfg.RapidAPI.GoldFXHost, cfg.RapidAPI.Key)
		return prices.NewGoldFXSource(client), nil
	default:
		return nil, fmt.Errorf("unknown price source provider %q", cfg.PriceSource.Provider)
	}
}
