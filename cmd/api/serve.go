package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/urfave/cli/v2"

	"portfolio-api/api"
	"portfolio-api/api/handlers"
	"portfolio-api/pkg/featureflags"
)

const idleTimeout = 60 * time.Second

const banner = `
    ____             __  ____      ___          ___    ____  ____
   / __ \____  _____/ /_/ __/___  / (_)___     /   |  / __ \/  _/
  / /_/ / __ \/ ___/ __/ /_/ __ \/ / / __ \   / /| | / /_/ // /
 / ____/ /_/ / /  / /_/ __/ /_/ / / / /_/ /  / ___ |/ ____// /
/_/    \____/_/   \__/_/  \____/_/_/\____/  /_/  |_/_/   /___/
`

func serve(c *cli.Context) error {
	app, err := loadApplication(c)
	if err != nil {
		return err
	}
	defer app.Close()

	fmt.Print(banner + "\n")

	router := app.router()
	cfg := app.cfg.Server

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  idleTimeout,
	}

	app.logger.Info("Starting portfolio API", map[string]interface{}{
		"port":               cfg.Port,
		"cache_type":         app.cfg.Cache.Type,
		"content_configured": app.content.Configured(),
		"chat_configured":    app.chat.Configured(),
		"environment":        cfg.Environment,
	})

	if refresher := app.refresher(); refresher != nil {
		if err := refresher.Start(); err != nil {
			return cli.Exit(fmt.Sprintf("Failed to start cache refresher: %v", err), ExitGeneralError)
		}
		defer refresher.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		app.logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return cli.Exit(fmt.Sprintf("Server failed to start: %v", err), ExitGeneralError)
	case <-ctx.Done():
	}

	app.logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return cli.Exit(fmt.Sprintf("Server forced to shutdown: %v", err), ExitGeneralError)
	}

	app.logger.Info("Server stopped", nil)
	return nil
}

// router builds the API and registers handlers according to the feature flags
func (a *application) router() chi.Router {
	ctx := context.Background()

	apiConfig := api.APIConfig{
		Logger:         a.logger,
		AllowedOrigins: a.cfg.Server.AllowedOrigins,
		EnableMetrics:  a.flags.IsEnabled(ctx, featureflags.MetricsEnabled),
		TrustProxy:     a.cfg.Server.TrustProxy,
	}
	if a.flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = a.cfg.RateLimit.Requests
		apiConfig.RateWindow = a.cfg.RateLimit.Window
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewContentHandler(a.content).RegisterRoutes(humaAPI)
	handlers.NewPostsHandler(a.feed, a.feed.Username()).RegisterRoutes(humaAPI)

	if a.flags.IsEnabled(ctx, featureflags.ChatEnabled) {
		handlers.NewChatHandler(a.chat).RegisterRoutes(humaAPI)
	}

	var diagnoser handlers.ContentDiagnoser
	if a.flags.IsEnabled(ctx, featureflags.DiagnosticsEnabled) {
		diagnoser = a.content
	}
	handlers.NewStatusHandler(diagnoser).RegisterRoutes(humaAPI)

	return router
}
