package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/focusboard/internal/config"
	"github.com/sadopc/focusboard/internal/logging"
	"github.com/sadopc/focusboard/internal/store"
	"github.com/sadopc/focusboard/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err == nil {
		if f, err := tea.LogToFile(cfg.LogFile, "focusboard"); err == nil {
			defer f.Close()
		}
	}
	logging.SetDebug(cfg.Debug)

	kv, backend := store.Open(store.Options{Driver: cfg.Driver, Dir: cfg.DataDir})
	s := store.New(kv, store.WithKey(cfg.StorageKey))
	defer s.Close()
	logging.Info("main", "started with %s storage, key %q", backend, cfg.StorageKey)

	app := tui.NewApp(s)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
