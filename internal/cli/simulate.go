package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/circle/internal/adapters/cli"
	"github.com/example/circle/internal/wire"
)

// SimulateCmd returns the scripted SOS screen command.
func SimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <step>...",
		Short: "Drive the SOS screen with a scripted sequence of steps",
		Long: `Mount the SOS screen without a UI and run steps in order.

Steps:
  press        Press the SOS button
  wait:<dur>   Sleep, letting timers fire (e.g. wait:5s, wait:1500ms)
  share        Share my location
  decoy        Start a fake call
  accept       Accept the ringing fake call
  decline      Decline the ringing fake call
  phase        Print the screen state

Examples:
  circle simulate press wait:5s phase          # countdown reaches Active
  circle simulate press wait:2s press phase    # cancel during countdown
  circle simulate decoy wait:2s accept`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := cliadapter.ParseSteps(args)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			service, sessionID := wire.MountEmergency(ctx, out, cliadapter.NewToastPrinter(out))
			defer service.Close()

			fmt.Fprintf(out, "Session %s\n", sessionID)
			return cliadapter.NewEmergencyAdapter(service, out).Run(ctx, steps)
		},
	}
}
