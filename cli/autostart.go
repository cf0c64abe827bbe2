package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sherlock-488/WinAssocGuard/registry"
)

// NewAutostartCmd creates the autostart command.
func NewAutostartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Manage launch at logon",
		Long: `Manage launch at logon.

Registers or removes a per-user Run key entry that starts
'winassocguard watch' when the user logs on.`,
	}

	cmd.AddCommand(
		newAutostartEnableCmd(),
		newAutostartDisableCmd(),
		newAutostartStatusCmd(),
	)

	return cmd
}

func newAutostartEnableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enable",
		Short: "Start the guard at logon",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := registry.EnableAutostart(); err != nil {
				return ErrRegistry("failed to enable autostart", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Autostart enabled.")
			return nil
		},
	}

	return cmd
}

func newAutostartDisableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disable",
		Short: "Do not start the guard at logon",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := registry.DisableAutostart(); err != nil {
				return ErrRegistry("failed to disable autostart", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Autostart disabled.")
			return nil
		},
	}

	return cmd
}

func newAutostartStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the guard starts at logon",
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := registry.AutostartEnabled()
			if err != nil {
				return ErrRegistry("failed to read autostart state", err)
			}
			if enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Autostart is enabled.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Autostart is disabled.")
			}
			return nil
		},
	}

	return cmd
}
