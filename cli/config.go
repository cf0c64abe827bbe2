package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sherlock-488/WinAssocGuard/config"
	"github.com/sherlock-488/WinAssocGuard/tui"
)

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or modify configuration",
		Long: `View or modify configuration.

Subcommands allow viewing and modifying configuration values in the
YAML config file. The watch loop picks up changes on its next tick.`,
	}

	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
		newConfigResetCmd(),
		newConfigPathCmd(),
	)

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			app.usePresenter(cmd, format)

			manager, err := app.Manager()
			if err != nil {
				return ErrConfig("failed to open config", err)
			}

			view := &tui.ConfigView{
				Location: manager.ConfigPath(),
				Values:   manager.AllSettings(),
			}

			return app.Presenter.RenderConfig(view)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json")

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get specific config value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			app, err := loadApp()
			if err != nil {
				return err
			}

			manager, err := app.Manager()
			if err != nil {
				return ErrConfig("failed to open config", err)
			}

			value := manager.Get(key)
			if value == nil {
				return fmt.Errorf("key not found: %s", key)
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set config value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := config.ParseValue(args[1])

			app, err := loadApp()
			if err != nil {
				return err
			}

			manager, err := app.Manager()
			if err != nil {
				return ErrConfig("failed to open config", err)
			}

			if err := manager.Set(key, value); err != nil {
				return ErrConfig("failed to save config", err)
			}

			// Reject values the config layer cannot parse back.
			if _, err := manager.Config(); err != nil {
				return ErrConfig(fmt.Sprintf("invalid value for %s", key), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, value)
			return nil
		},
	}

	return cmd
}

func newConfigResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset to default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			manager, err := app.Manager()
			if err != nil {
				return ErrConfig("failed to open config", err)
			}

			if err := manager.Reset(); err != nil {
				return ErrConfig("failed to reset config", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset to defaults.")
			return nil
		},
	}

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), app.ConfigFilePath())
			return nil
		},
	}

	return cmd
}
