package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/circle/internal/wire"
)

// NotificationsCmd returns the notification history command group.
func NotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif"},
		Short:   "Browse notification history",
	}
	cmd.AddCommand(notificationsListCmd())
	cmd.AddCommand(notificationsClearCmd())
	return cmd
}

func notificationsListCmd() *cobra.Command {
	var (
		session string
		kind    string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.NotificationAdapterWithOutput(cmd.OutOrStdout()).List(cmd.Context(), session, kind, limit)
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "Only show one screen session")
	cmd.Flags().StringVar(&kind, "kind", "", "Only show one kind (e.g. alert_activated)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum rows (0 for all)")
	return cmd
}

func notificationsClearCmd() *cobra.Command {
	var olderThan int

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete old notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.NotificationAdapterWithOutput(cmd.OutOrStdout()).Clear(cmd.Context(), olderThan)
		},
	}
	cmd.Flags().IntVar(&olderThan, "older-than", 30, "Age in days; 0 clears everything")
	return cmd
}

// OutboxCmd returns the contact alert outbox command group.
func OutboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outbox",
		Short: "Inspect contact alerts queued by SOS activations",
	}
	cmd.AddCommand(outboxListCmd())
	cmd.AddCommand(outboxMarkCmd())
	return cmd
}

func outboxListCmd() *cobra.Command {
	var (
		status string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List queued contact alerts, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.NotificationAdapterWithOutput(cmd.OutOrStdout()).Outbox(cmd.Context(), status, limit)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending, sent, failed)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum rows (0 for all)")
	return cmd
}

func outboxMarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "mark <alert-id> <sent|failed>",
		Short:     "Record the delivery outcome of a contact alert",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"sent", "failed"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.NotificationAdapterWithOutput(cmd.OutOrStdout()).Mark(cmd.Context(), args[0], args[1])
		},
	}
}
