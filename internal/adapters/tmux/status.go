// Package tmux contains TMux adapter implementations.
package tmux

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/example/circle/internal/ports/secondary"
)

// DefaultDisplayTime is how long a toast stays on the status line.
const DefaultDisplayTime = 4 * time.Second

// runFunc runs a tmux subcommand.
type runFunc func(ctx context.Context, args ...string) error

// StatusLine implements secondary.ToastSink by flashing toasts on the
// tmux status line of the current client.
type StatusLine struct {
	display time.Duration
	run     runFunc
}

// NewStatusLine creates a StatusLine. Callers check Inside first.
func NewStatusLine() *StatusLine {
	return &StatusLine{display: DefaultDisplayTime, run: runTmux}
}

// Inside reports whether the process runs inside a tmux client.
func Inside() bool {
	return os.Getenv("TMUX") != ""
}

// Show displays the toast. Failures are dropped; the toast is informational.
func (s *StatusLine) Show(ctx context.Context, toast secondary.Toast) {
	_ = s.run(ctx, "display-message", "-d", fmt.Sprint(s.display.Milliseconds()), FormatMessage(toast))
}

// FormatMessage renders a toast as one status-line message.
// '#' is doubled since tmux expands formats in display-message.
func FormatMessage(toast secondary.Toast) string {
	msg := toast.Title
	if toast.Description != "" {
		msg += ": " + toast.Description
	}
	if toast.Variant == secondary.ToastDestructive {
		msg = "SOS! " + msg
	}
	return strings.ReplaceAll(msg, "#", "##")
}

func runTmux(ctx context.Context, args ...string) error {
	return exec.CommandContext(ctx, "tmux", args...).Run()
}

// Ensure StatusLine implements the interface
var _ secondary.ToastSink = (*StatusLine)(nil)
