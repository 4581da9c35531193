package platform

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/example/circle/internal/ports/secondary"
)

// OSC52Clipboard implements secondary.Clipboard by writing an OSC 52
// escape sequence, which terminals (and SSH sessions) turn into a
// clipboard write on the user's machine.
type OSC52Clipboard struct {
	mu   sync.Mutex
	out  io.Writer
	tmux bool
}

// NewOSC52Clipboard creates a clipboard writing to out. Inside tmux the
// sequence is wrapped for passthrough.
func NewOSC52Clipboard(out io.Writer) *OSC52Clipboard {
	return &OSC52Clipboard{out: out, tmux: insideTmux()}
}

// Copy writes text to the terminal clipboard.
func (c *OSC52Clipboard) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	seq := osc52.New(text)
	if c.tmux {
		seq = seq.Tmux()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := seq.WriteTo(c.out); err != nil {
		return fmt.Errorf("failed to write clipboard sequence: %w", err)
	}
	return nil
}

func insideTmux() bool {
	term := os.Getenv("TERM")
	return os.Getenv("TMUX") != "" || strings.HasPrefix(term, "tmux") || strings.HasPrefix(term, "screen")
}

// Ensure OSC52Clipboard implements the interface
var _ secondary.Clipboard = (*OSC52Clipboard)(nil)
