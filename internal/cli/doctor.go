package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/circle/internal/adapters/platform"
	"github.com/example/circle/internal/adapters/tmux"
	"github.com/example/circle/internal/config"
	"github.com/example/circle/internal/core/alert"
	"github.com/example/circle/internal/db"
	"github.com/example/circle/internal/version"
)

// Check statuses
const (
	StatusOK   = "✓"
	StatusWarn = "⚠"
	StatusFail = "✗"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Report which SOS capabilities work on this device",
		Long: `Check the circle home, config, database and the platform capabilities
the SOS screen relies on: location, sharing and the alert sound.

Warnings mean a capability falls back or will fail at use time;
failures mean the SOS screen cannot start.

Examples:
  circle doctor              # Full report
  circle doctor --quiet      # Exit code only (0=healthy, 1=failures)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := runChecks()

			if !quiet {
				printResults(cmd.OutOrStdout(), results)
			}
			for _, r := range results {
				if r.Status == StatusFail {
					return fmt.Errorf("environment validation failed")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

func runChecks() []CheckResult {
	dir, err := config.HomeDir()
	if err != nil {
		return []CheckResult{{Name: "Home", Status: StatusFail, Details: "  " + err.Error()}}
	}

	cfg, cfgResult := checkConfig(dir)
	return []CheckResult{
		checkHome(dir),
		cfgResult,
		checkDatabase(),
		checkLocation(cfg),
		checkShare(cfg, exec.LookPath),
		checkSound(cfg, dir, exec.LookPath),
	}
}

func printResults(out io.Writer, results []CheckResult) {
	fmt.Fprintf(out, "\n%s\n\n", version.String())
	fmt.Fprintln(out, "Check      Status")
	fmt.Fprintln(out, "─────────────────")
	for _, r := range results {
		fmt.Fprintf(out, "%-10s %s\n", r.Name, colorStatus(r.Status))
	}
	fmt.Fprintln(out)

	hasDetails := false
	for _, r := range results {
		if r.Status != StatusOK && r.Details != "" {
			if !hasDetails {
				fmt.Fprintln(out, "Details:")
				hasDetails = true
			}
			fmt.Fprintf(out, "\n%s:\n%s\n", r.Name, r.Details)
		}
	}
	if !hasDetails {
		fmt.Fprintln(out, "All checks passed.")
	}
}

func colorStatus(status string) string {
	switch status {
	case StatusOK:
		return color.GreenString(status)
	case StatusWarn:
		return color.YellowString(status)
	default:
		return color.RedString(status)
	}
}

func checkHome(dir string) CheckResult {
	if _, err := os.Stat(dir); err != nil {
		return CheckResult{Name: "Home", Status: StatusWarn, Details: fmt.Sprintf("  %s missing\n  Run: circle init", dir)}
	}
	return CheckResult{Name: "Home", Status: StatusOK}
}

// checkConfig returns the config the SOS screen would run with.
func checkConfig(dir string) (*config.Config, CheckResult) {
	cfg, err := config.LoadConfig(dir)
	switch {
	case err == nil:
		return cfg, CheckResult{Name: "Config", Status: StatusOK}
	case errors.Is(err, os.ErrNotExist):
		return config.DefaultConfig(), CheckResult{Name: "Config", Status: StatusWarn, Details: "  No config.json, using defaults\n  Run: circle init"}
	default:
		return config.DefaultConfig(), CheckResult{Name: "Config", Status: StatusFail, Details: "  " + err.Error()}
	}
}

func checkDatabase() CheckResult {
	conn, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Database", Status: StatusFail, Details: "  " + err.Error()}
	}
	v, err := db.CurrentVersion(conn)
	if err != nil {
		return CheckResult{Name: "Database", Status: StatusFail, Details: "  " + err.Error()}
	}
	if v != db.SchemaVersion {
		return CheckResult{Name: "Database", Status: StatusWarn, Details: fmt.Sprintf("  Schema version %d, expected %d", v, db.SchemaVersion)}
	}
	return CheckResult{Name: "Database", Status: StatusOK}
}

func checkLocation(cfg *config.Config) CheckResult {
	if !cfg.HasLocation() {
		return CheckResult{
			Name:    "Location",
			Status:  StatusWarn,
			Details: "  " + platform.ErrGeolocationUnsupported.Error() + "\n  Set latitude and longitude in config.json",
		}
	}
	return CheckResult{Name: "Location", Status: StatusOK}
}

func checkShare(cfg *config.Config, lookPath func(string) (string, error)) CheckResult {
	argv := strings.Fields(cfg.ShareCommand)
	if len(argv) == 0 {
		details := "  No share_command, sharing copies to the clipboard (OSC 52)"
		if tmux.Inside() {
			details += "\n  Inside tmux: needs 'set -g allow-passthrough on'"
		}
		return CheckResult{Name: "Share", Status: StatusWarn, Details: details}
	}
	if _, err := lookPath(argv[0]); err != nil {
		return CheckResult{
			Name:    "Share",
			Status:  StatusWarn,
			Details: fmt.Sprintf("  %s not found on PATH, falling back to the clipboard", argv[0]),
		}
	}
	return CheckResult{Name: "Share", Status: StatusOK}
}

func checkSound(cfg *config.Config, dir string, lookPath func(string) (string, error)) CheckResult {
	argv := strings.Fields(cfg.AudioCommand)
	if len(argv) == 0 {
		return CheckResult{Name: "Sound", Status: StatusWarn, Details: "  No audio_command, activation rings the terminal bell"}
	}
	if _, err := lookPath(argv[0]); err != nil {
		return CheckResult{Name: "Sound", Status: StatusWarn, Details: fmt.Sprintf("  %s not found on PATH, activation will be silent", argv[0])}
	}

	resource := cfg.SoundPath
	if resource == "" {
		resource = alert.AlertSoundResource
	}
	path := platform.ResolveResource(dir, resource)
	if _, err := os.Stat(path); err != nil {
		return CheckResult{Name: "Sound", Status: StatusWarn, Details: fmt.Sprintf("  %s missing, activation will be silent", path)}
	}
	return CheckResult{Name: "Sound", Status: StatusOK}
}
