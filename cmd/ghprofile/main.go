package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"ghprofile/internal/config"
	"ghprofile/internal/fetch"
	"ghprofile/internal/github"
	"ghprofile/internal/trace"
	"ghprofile/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// setupLogging routes log output to path. The TUI owns stdout, so without
// a log file logs are discarded.
func setupLogging(path string) (closeFn func(), err error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "ghprofile")
	if err != nil {
		return nil, fmt.Errorf("log file %q: %w", path, err)
	}
	return func() { _ = f.Close() }, nil
}

func run(cfg *config.Config) error {
	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := context.Background()
	tp, err := trace.Setup(ctx, os.Getenv)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("trace: shutdown: %v", err)
		}
	}()

	log.Printf("config: base-url=%s user=%q timeout=%s tracing=%v",
		cfg.BaseURL, cfg.User, cfg.Timeout, tp.Enabled())

	client := github.NewClient(http.DefaultClient, github.WithTracerProvider(tp.TracerProvider()))
	controller := fetch.New(client, cfg.InitialLocator(),
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithContext(ctx),
	)
	model := ui.NewAppModel(ui.NewSearchView(controller, cfg.BaseURL)).AsTeaModel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	controller.Close()
	return err
}

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ghprofile: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "ghprofile: %v\n", err)
		os.Exit(1)
	}
}
