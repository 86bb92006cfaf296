package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/app"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/model"
	"github.com/AdeShaq/SUPERSCHEDULER/internal/store"
)

func main() {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "echotrack: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := setupLogger(cfg.Log.Level, cfg.Log.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "echotrack: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	st, err := store.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "echotrack: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	program := tea.NewProgram(app.New(st, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Error().Err(err).Msg("program exited with error")
		fmt.Fprintf(os.Stderr, "echotrack: %v\n", err)
		os.Exit(1)
	}
}

// setupLogger routes the global zerolog logger to the configured file.
// Logging can never go to the terminal while the TUI owns it.
func setupLogger(level string, path string) (func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	log.Logger = zerolog.New(f).With().Timestamp().Logger().Level(lvl)
	return func() { _ = f.Close() }, nil
}
