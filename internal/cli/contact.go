package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/circle/internal/wire"
)

// ContactCmd returns the contact command group.
func ContactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage emergency contacts",
		Long:  "Emergency contacts get an outbox entry each time an SOS alert activates.",
	}
	cmd.AddCommand(contactAddCmd())
	cmd.AddCommand(contactListCmd())
	cmd.AddCommand(contactRemoveCmd())
	return cmd
}

func contactAddCmd() *cobra.Command {
	var relation string

	cmd := &cobra.Command{
		Use:   "add <name> <phone>",
		Short: "Add an emergency contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ContactAdapterWithOutput(cmd.OutOrStdout()).Add(cmd.Context(), args[0], args[1], relation)
		},
	}
	cmd.Flags().StringVarP(&relation, "relation", "r", "", "How the contact relates to you (e.g. sister)")
	return cmd
}

func contactListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List emergency contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ContactAdapterWithOutput(cmd.OutOrStdout()).List(cmd.Context())
		},
	}
}

func contactRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <contact-id>",
		Short: "Remove an emergency contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ContactAdapterWithOutput(cmd.OutOrStdout()).Remove(cmd.Context(), args[0])
		},
	}
}
