// Command api runs the cliprelay HTTP server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mandalnilabja/cliprelay/internal/app"
	"github.com/mandalnilabja/cliprelay/internal/config"
	"github.com/mandalnilabja/cliprelay/internal/provider"
	"github.com/mandalnilabja/cliprelay/internal/relay"
	"github.com/mandalnilabja/cliprelay/internal/tokenizer"
	"github.com/mandalnilabja/cliprelay/internal/transport/http/handler"
	"github.com/mandalnilabja/cliprelay/internal/transport/http/handler/webui"
)

func main() {
	if err := config.EnsureConfigFile(); err != nil {
		slog.Warn("could not create default config file", "error", err)
	}

	cfg := config.Load()
	logger := setupLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	counter := tokenizer.New()
	go func() {
		if err := counter.Warm(); err != nil {
			logger.Warn("token estimates disabled", "error", err)
		}
	}()

	providers := provider.NewProviders(cfg.Providers)
	r := relay.New(providers, cfg.Credentials, relay.Options{
		Client:  &http.Client{},
		Timeout: cfg.UpstreamTimeout,
		Counter: counter,
		Logger:  logger,
	})

	var ui *webui.Handlers
	if cfg.EnableWebUI {
		var err error
		ui, err = webui.New(cfg.WebRoot)
		if err != nil {
			logger.Error("failed to load web UI", "error", err)
			os.Exit(1)
		}
	}

	repo := handler.NewRepo(r, ui, logger)
	router := app.NewRouter(repo, &app.RouterOptions{Logger: logger})

	printStartupBanner(cfg, providers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.NewServer(cfg, router, logger).Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
