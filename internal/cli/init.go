package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/circle/internal/config"
	"github.com/example/circle/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the circle home directory",
		Long: `Create ~/.circle (or $CIRCLE_HOME) with a default config.json and the
circle database. An existing config is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			dir, err := config.HomeDir()
			if err != nil {
				return err
			}

			path := config.Path(dir)
			if _, err := os.Stat(path); err == nil && !force {
				fmt.Fprintf(out, "✓ Keeping existing config at %s\n", path)
			} else {
				if err := config.SaveConfig(dir, config.DefaultConfig()); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ Wrote default config to %s\n", path)
			}

			if _, err := db.GetDB(); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			dbPath, _ := db.GetDBPath()
			fmt.Fprintf(out, "✓ Database ready at %s\n", dbPath)

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  circle contact add \"Asha\" \"+1 555 0100\" --relation sister")
			fmt.Fprintln(out, "  circle doctor")
			fmt.Fprintln(out, "  circle sos")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config with defaults")
	return cmd
}
