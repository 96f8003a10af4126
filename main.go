package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavify/internal/app"
	"github.com/llehouerou/wavify/internal/catalog"
	"github.com/llehouerou/wavify/internal/config"
	"github.com/llehouerou/wavify/internal/errmsg"
	"github.com/llehouerou/wavify/internal/icons"
	"github.com/llehouerou/wavify/internal/logging"
	"github.com/llehouerou/wavify/internal/playback"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logger, logFile, err := logging.Setup(cfg.GetLogFile(), cfg.GetLogLevel())
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogSetup, err))
	}
	defer logFile.Close()

	icons.Init(cfg.Icons)

	c, err := loadCatalog(cfg)
	if err != nil {
		logger.Error("catalog", "error", err)
		return errors.New(errmsg.FormatWith(errmsg.OpCatalogLoad, cfg.CatalogFile, err))
	}

	initial := playback.NewState(cfg.InitialVolume())
	if mode, err := playback.ParseRepeatMode(cfg.Repeat); err != nil {
		logger.Warn("ignoring repeat setting", "error", err)
	} else {
		initial.Repeat = mode
	}

	store := playback.NewStore(initial, logger)
	defer store.Close()

	logger.Info("starting", "tracks", len(c.Tracks()), "playlists", len(c.Playlists()))

	p := tea.NewProgram(app.New(c, store, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.HasCatalogFile() {
		return catalog.LoadFile(cfg.CatalogFile)
	}
	return catalog.Default()
}
