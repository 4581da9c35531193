package platform

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/example/circle/internal/ports/secondary"
)

// ErrShareUnavailable is returned when neither a share command nor a clipboard exists.
var ErrShareUnavailable = errors.New("no share mechanism available")

// CommandShare implements secondary.NativeShare by running a command with
// the share text on stdin. The command line is split on whitespace.
type CommandShare struct {
	argv []string
}

// NewCommandShare creates a CommandShare. An empty command is never available.
func NewCommandShare(command string) *CommandShare {
	return &CommandShare{argv: strings.Fields(command)}
}

// Available reports whether the command is configured and found on PATH.
func (c *CommandShare) Available() bool {
	if len(c.argv) == 0 {
		return false
	}
	_, err := exec.LookPath(c.argv[0])
	return err == nil
}

// Share runs the command and waits for it to exit.
func (c *CommandShare) Share(ctx context.Context, payload secondary.SharePayload) error {
	if len(c.argv) == 0 {
		return ErrShareUnavailable
	}

	cmd := exec.CommandContext(ctx, c.argv[0], c.argv[1:]...)
	cmd.Stdin = strings.NewReader(payload.Text + "\n")
	output, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(output)); msg != "" {
			return fmt.Errorf("share command failed: %w: %s", err, msg)
		}
		return fmt.Errorf("share command failed: %w", err)
	}
	return nil
}

// nativeSharer hands payloads to the platform share capability.
type nativeSharer struct {
	native secondary.NativeShare
}

func (s nativeSharer) Share(ctx context.Context, payload secondary.SharePayload) (secondary.ShareResult, error) {
	if err := s.native.Share(ctx, payload); err != nil {
		return secondary.ShareResult{}, err
	}
	return secondary.ShareResult{Method: secondary.ShareMethodNative, Link: payload.URL}, nil
}

// clipboardSharer copies the share text when no native share exists.
type clipboardSharer struct {
	clipboard secondary.Clipboard
}

func (s clipboardSharer) Share(ctx context.Context, payload secondary.SharePayload) (secondary.ShareResult, error) {
	if err := s.clipboard.Copy(ctx, payload.Text); err != nil {
		return secondary.ShareResult{}, fmt.Errorf("failed to copy location: %w", err)
	}
	return secondary.ShareResult{Method: secondary.ShareMethodClipboard, Link: payload.URL}, nil
}

type unavailableSharer struct{}

func (unavailableSharer) Share(ctx context.Context, payload secondary.SharePayload) (secondary.ShareResult, error) {
	return secondary.ShareResult{}, ErrShareUnavailable
}

// SelectSharer picks the share variant once: the native share when it is
// available, otherwise the clipboard. Either argument may be nil.
func SelectSharer(native secondary.NativeShare, clipboard secondary.Clipboard) secondary.Sharer {
	switch {
	case native != nil && native.Available():
		return nativeSharer{native: native}
	case clipboard != nil:
		return clipboardSharer{clipboard: clipboard}
	default:
		return unavailableSharer{}
	}
}

// Ensure CommandShare implements the interface
var _ secondary.NativeShare = (*CommandShare)(nil)
