// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/example/circle/internal/ports/secondary"
)

// ToastPrinter implements secondary.ToastSink by printing one line per toast.
// Destructive toasts are red, everything else green.
type ToastPrinter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewToastPrinter creates a ToastPrinter writing to out.
func NewToastPrinter(out io.Writer) *ToastPrinter {
	return &ToastPrinter{out: out}
}

// Show prints the toast.
func (p *ToastPrinter) Show(ctx context.Context, toast secondary.Toast) {
	icon := color.New(color.FgGreen).Sprint("✓")
	title := color.New(color.Bold).Sprint(toast.Title)
	if toast.Variant == secondary.ToastDestructive {
		icon = color.New(color.FgRed).Sprint("!")
		title = color.New(color.FgRed, color.Bold).Sprint(toast.Title)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if toast.Description == "" {
		fmt.Fprintf(p.out, "%s %s\n", icon, title)
		return
	}
	fmt.Fprintf(p.out, "%s %s: %s\n", icon, title, toast.Description)
}

// Ensure ToastPrinter implements the interface
var _ secondary.ToastSink = (*ToastPrinter)(nil)
