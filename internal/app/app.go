package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/enlace/internal/config"
	"github.com/five82/enlace/internal/logging"
	"github.com/five82/enlace/internal/prefs"
	"github.com/five82/enlace/internal/ui"
)

// Options configure the Enlace application.
type Options struct {
	ConfigPath string // empty uses ~/.config/enlace/config.toml
	PrefsPath  string // empty uses the config's prefs_file
	Verbose    bool
}

// Run boots the Enlace TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogFile, opts.Verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = cfg.PrefsFile
	}
	userPrefs := prefs.Load(prefsPath)

	logger.Info("starting enlace",
		zap.String("prefs", prefsPath),
		zap.String("layout", string(userPrefs.MenuLayout)),
		zap.String("theme", userPrefs.Theme),
		zap.Duration("navigation_delay", cfg.NavigationDelay),
		zap.Duration("login_delay", cfg.LoginDelay))

	model := ui.New(ui.Options{
		Context:         ctx,
		Logger:          logger,
		Prefs:           userPrefs,
		PrefsPath:       prefsPath,
		NavigationDelay: cfg.NavigationDelay,
		LoginDelay:      cfg.LoginDelay,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if err := supervise(ctx, p); err != nil {
		logger.Error("ui exited", zap.Error(err))
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("enlace stopped")
	return nil
}
