package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/circle/internal/adapters/tui"
	"github.com/example/circle/internal/wire"
)

// SOSCmd returns the interactive SOS screen command.
func SOSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sos",
		Short: "Open the SOS emergency screen",
		Long: `Open the interactive SOS screen.

Keys:
  space, enter  Press the SOS button (start, cancel or deactivate)
  l             Share my location
  f             Fake call
  a / d         Accept / decline the fake call
  q             Quit (cancels any pending countdown)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			term, release := wire.Terminal()
			defer release()

			queue := tui.NewToastQueue()
			service, sessionID := wire.MountEmergency(ctx, term, queue)
			defer service.Close()

			if err := tui.Run(ctx, service, queue); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session %s closed. History: circle notifications list --session %s\n", sessionID, sessionID)
			return nil
		},
	}
}
