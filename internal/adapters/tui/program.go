package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/circle/internal/ports/primary"
)

// Run shows the SOS screen until the user quits or ctx is cancelled.
func Run(ctx context.Context, service primary.EmergencyService, queue *ToastQueue) error {
	p := tea.NewProgram(NewModel(ctx, service, queue), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("sos screen: %w", err)
	}
	return nil
}
