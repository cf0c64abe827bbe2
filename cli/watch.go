package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/sherlock-488/WinAssocGuard/config"
	"github.com/sherlock-488/WinAssocGuard/core/eventlog"
	"github.com/sherlock-488/WinAssocGuard/core/monitor"
	"github.com/sherlock-488/WinAssocGuard/notify"
	"github.com/sherlock-488/WinAssocGuard/registry"
)

// NewWatchCmd creates the watch command.
func NewWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the association guard loop",
		Long: `Run the association guard loop.

Polls the effective handler for every guarded extension and restores
the baseline when drift is detected. Configuration is re-read at every
tick, so edits to the config file take effect without a restart.

Runs until interrupted.`,
		Example: `  winassocguard watch
  winassocguard watch --config C:\path\to\config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.InitStore(ctx); err != nil {
				return ErrDatabase("failed to open database", err)
			}
			defer func() {
				if err := app.Close(); err != nil {
					log.Errorf("failed to close app: %v", err)
				}
			}()

			events := eventlog.NewLog(eventlog.DefaultCapacity)

			// Settings are re-read from disk at every tick so config
			// edits take effect on the next cycle.
			var mu sync.Mutex
			current := app.Config.MonitorSettings()
			settings := func() monitor.Settings {
				cfg, err := config.Load(globalFlags.ConfigPath)
				if err != nil {
					log.Warnf("config reload failed, keeping previous settings: %v", err)
					mu.Lock()
					defer mu.Unlock()
					return current
				}

				app.Baselines.Replace(cfg.BaselineEntries())

				mu.Lock()
				current = cfg.MonitorSettings()
				snapshot := current
				mu.Unlock()
				return snapshot
			}

			notifier := notify.NewDesktop()
			unsubscribe := events.Subscribe(func(e eventlog.Event) {
				mu.Lock()
				enabled := current.Notifications
				mu.Unlock()
				if !enabled {
					return
				}

				title, message, ok := notify.ForEvent(e)
				if !ok {
					return
				}
				if err := notifier.Notify(title, message); err != nil {
					log.Warnf("notification failed: %v", err)
				}
			})
			defer unsubscribe()

			mon := monitor.New(
				app.Baselines,
				registry.NewReader(),
				registry.NewRestorer(),
				events,
				settings,
				monitor.WithSink(app.Store),
			)

			log.Infof("guarding %d extensions", app.Baselines.Len())

			if err := mon.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	return cmd
}
