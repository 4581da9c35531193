package platform

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/example/circle/internal/ports/secondary"
)

// CommandAudioPlayer plays sounds with an external player such as afplay
// or paplay. Relative resources are resolved against baseDir.
type CommandAudioPlayer struct {
	argv    []string
	baseDir string
	logger  *slog.Logger
}

// NewCommandAudioPlayer creates a player from a command line split on whitespace.
func NewCommandAudioPlayer(command, baseDir string, logger *slog.Logger) *CommandAudioPlayer {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommandAudioPlayer{argv: strings.Fields(command), baseDir: baseDir, logger: logger}
}

// Play starts the player and returns without waiting for playback.
func (p *CommandAudioPlayer) Play(ctx context.Context, resource string) error {
	if len(p.argv) == 0 {
		return fmt.Errorf("no audio command configured")
	}

	path := ResolveResource(p.baseDir, resource)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("sound resource unavailable: %w", err)
	}

	args := append(append([]string{}, p.argv[1:]...), path)
	// Not tied to ctx: playback outlives the call that started it.
	cmd := exec.Command(p.argv[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start audio command: %w", err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			p.logger.Warn("audio command exited with error", "command", p.argv[0], "error", err)
		}
	}()
	return nil
}

// ResolveResource joins relative resources onto baseDir.
func ResolveResource(baseDir, resource string) string {
	if filepath.IsAbs(resource) || baseDir == "" {
		return resource
	}
	return filepath.Join(baseDir, resource)
}

// BellPlayer rings the terminal bell instead of playing the resource.
type BellPlayer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewBellPlayer creates a BellPlayer writing to out.
func NewBellPlayer(out io.Writer) *BellPlayer {
	return &BellPlayer{out: out}
}

// Play writes the BEL character.
func (b *BellPlayer) Play(ctx context.Context, resource string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, err := io.WriteString(b.out, "\a")
	return err
}

// Ensure players implement the interface
var (
	_ secondary.AudioPlayer = (*CommandAudioPlayer)(nil)
	_ secondary.AudioPlayer = (*BellPlayer)(nil)
)
