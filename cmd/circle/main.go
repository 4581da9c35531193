package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/circle/internal/cli"
	"github.com/example/circle/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "circle",
		Short:   "circle - personal SOS emergency alerts",
		Version: version.String(),
		Long: `circle is a personal safety tool. Its SOS screen counts down before
raising an emergency alert, shares your location and can fake an
incoming call to get you out of an uncomfortable situation.`,
		SilenceUsage: true,
	}

	// Emergency screen
	rootCmd.AddCommand(cli.SOSCmd())
	rootCmd.AddCommand(cli.SimulateCmd())

	// Records
	rootCmd.AddCommand(cli.ContactCmd())
	rootCmd.AddCommand(cli.NotificationsCmd())
	rootCmd.AddCommand(cli.OutboxCmd())

	// Setup
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
