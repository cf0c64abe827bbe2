// Package cli provides the command-line interface for winassocguard.
package cli

import (
	"context"
	"os"

	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/sherlock-488/WinAssocGuard/config"
	"github.com/sherlock-488/WinAssocGuard/core/baseline"
	"github.com/sherlock-488/WinAssocGuard/internal/version"
	"github.com/sherlock-488/WinAssocGuard/storage"
	"github.com/sherlock-488/WinAssocGuard/tui"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Paths     *config.Paths
	Baselines *baseline.Store
	Presenter tui.Presenter
	Store     storage.Store
}

// NewApp creates a new App with the given configuration.
func NewApp(cfg *config.Config) *App {
	paths := config.ResolvePaths()

	baselines := baseline.NewStore()
	baselines.Replace(cfg.BaselineEntries())

	presenter := tui.NewPresenter(tui.FormatTable, tui.PresenterOptions{
		Writer:    os.Stdout,
		UseColors: cfg.ShouldUseColors(),
	})

	return &App{
		Config:    cfg,
		Paths:     paths,
		Baselines: baselines,
		Presenter: presenter,
	}
}

// InitStore initializes the database store.
func (a *App) InitStore(ctx context.Context) error {
	dbPath := a.Config.GetDatabasePath()
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return err
	}
	if err := store.Init(ctx); err != nil {
		return err
	}
	a.Store = store
	return nil
}

// Close closes the application resources.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// ConfigFilePath returns the config file in use, honoring the --config flag.
func (a *App) ConfigFilePath() string {
	if globalFlags.ConfigPath != "" {
		return globalFlags.ConfigPath
	}
	return a.Paths.ConfigFile
}

// Manager returns a config manager bound to the active config file.
func (a *App) Manager() (*config.Manager, error) {
	return config.NewManager(a.ConfigFilePath())
}

// GlobalFlags holds the global command flags.
type GlobalFlags struct {
	ConfigPath string
	NoColor    bool
}

var globalFlags GlobalFlags

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "winassocguard",
		Short: "Per-user file association guard for Windows",
		Long: `WinAssocGuard watches per-user file associations in the Windows
registry and restores them when another program hijacks a guarded
extension.

Baselines map extensions to the ProgID that should handle them. The
watch loop polls the effective handler for each guarded extension and,
when it drifts from the baseline, writes the baseline back and clears
the per-extension UserChoice override.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Handle NO_COLOR environment variable
			if os.Getenv("NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			if os.Getenv("WINASSOCGUARD_NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			setupInternalLogger()

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.NoColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(
		NewWatchCmd(),
		NewStatusCmd(),
		NewLogsCmd(),
		NewAddCmd(),
		NewRemoveCmd(),
		NewListCmd(),
		NewCaptureCmd(),
		NewImportCmd(),
		NewCandidatesCmd(),
		NewRestoreCmd(),
		NewDiffCmd(),
		NewConfigCmd(),
		NewRetentionCmd(),
		NewAutostartCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setupInternalLogger sets up the DRY logger.
func setupInternalLogger() {
	// Always skip the stdout logger since we are running in a CLI context
	// with our own TUI.
	_ = os.Setenv("APP_LOG_SKIP_STDOUT_LOGGER", "true")

	log.Init("winassocguard", "cli")
}

// loadApp loads the application with configuration.
func loadApp() (*App, error) {
	cfg, err := config.Load(globalFlags.ConfigPath)
	if err != nil {
		return nil, ErrConfig("failed to load configuration", err)
	}

	// Override with flags
	if globalFlags.NoColor {
		cfg.Display.Colors = config.ColorNever
	}

	return NewApp(cfg), nil
}

// getFormat returns the output format from flags or default.
func getFormat(format string) tui.Format {
	switch format {
	case "json":
		return tui.FormatJSON
	case "jsonl":
		return tui.FormatJSONL
	case "csv":
		return tui.FormatCSV
	default:
		return tui.FormatTable
	}
}

// usePresenter swaps the app presenter for the requested format.
func (a *App) usePresenter(cmd *cobra.Command, format string) {
	a.Presenter = tui.NewPresenter(getFormat(format), tui.PresenterOptions{
		Writer:    cmd.OutOrStdout(),
		UseColors: a.Config.ShouldUseColors(),
	})
}
