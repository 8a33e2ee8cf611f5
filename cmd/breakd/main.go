package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/breakd/internal/model"
	"github.com/sandeepkv93/breakd/internal/store"
	"github.com/sandeepkv93/breakd/internal/update"
)

func main() {
	cfg := update.DefaultRuntimeConfig()
	if path := strings.TrimSpace(os.Getenv("BREAKD_CONFIG")); path != "" {
		loaded, err := update.LoadRuntimeConfigFile(path, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "breakd: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg = update.RuntimeConfigFromEnv(cfg)

	catalog, err := loadCatalog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "breakd: load catalog: %v\n", err)
		os.Exit(1)
	}

	backend, err := openBackend(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "breakd: open store: %v\n", err)
		os.Exit(1)
	}
	hub := store.NewHub(backend)
	defer hub.Close()
	conn := hub.Conn()

	notifier := update.DesktopNotifier(update.NoopDesktopNotifier{})
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	m := update.NewModelWithConfig(conn, catalog, notifier, cfg)
	m.Engine.Start()
	defer m.Engine.Stop()

	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "breakd failed: %v\n", err)
		os.Exit(1)
	}
}

func loadCatalog(cfg update.RuntimeConfig) ([]model.Activity, error) {
	if cfg.CatalogPath != "" {
		return model.LoadCatalog(cfg.CatalogPath)
	}
	return model.DefaultCatalog()
}

// openBackend uses SQLite when a data path is configured and falls back to
// the in-memory store otherwise, so the app runs without any setup.
func openBackend(cfg update.RuntimeConfig) (store.Backend, error) {
	if cfg.DataPath == "" {
		return store.NewMemoryBackend(), nil
	}
	return store.OpenSQLite(cfg.DataPath)
}
