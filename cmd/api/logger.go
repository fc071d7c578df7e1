package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mandalnilabja/cliprelay/internal/config"
	"github.com/mandalnilabja/cliprelay/internal/provider"
	"github.com/mandalnilabja/cliprelay/internal/version"
)

func setupLogger(level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

func printStartupBanner(cfg *config.Config, providers map[string]provider.Provider) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "cliprelay %s - Gemini / Grok relay\n", version.Version)
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════")
	if cfg.EnableWebUI {
		fmt.Fprintf(os.Stderr, "Web UI:     http://localhost%s/\n", cfg.ServerPort)
	}
	for _, id := range provider.Names(providers) {
		status := "missing " + config.CredentialName(id)
		if _, ok := cfg.Credentials.Lookup(id); ok {
			status = "configured"
		}
		fmt.Fprintf(os.Stderr, "Relay:      http://localhost%s/api/%s (%s)\n", cfg.ServerPort, id, status)
	}
	fmt.Fprintf(os.Stderr, "Config:     %s\n", config.ConfigPath())
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════")
	fmt.Fprintf(os.Stderr, "\n")
}
