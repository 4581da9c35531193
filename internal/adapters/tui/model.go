// Package tui renders the SOS screen in the terminal using Bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/example/circle/internal/ports/primary"
	"github.com/example/circle/internal/ports/secondary"
)

const (
	// RefreshInterval is how often the model polls the service.
	RefreshInterval = 100 * time.Millisecond

	// ToastDuration is how long a toast stays on screen.
	ToastDuration = 4 * time.Second

	maxToasts = 3
)

type tickMsg time.Time

type viewMsg struct {
	view primary.AlertView
	err  error
}

type actionMsg struct {
	action string
	err    error
}

type visibleToast struct {
	toast   secondary.Toast
	expires time.Time
}

// Model is the Bubbletea model of the SOS screen. It never holds alert
// state of its own; every frame renders the latest service snapshot.
type Model struct {
	ctx     context.Context
	service primary.EmergencyService
	queue   *ToastQueue

	view   primary.AlertView
	toasts []visibleToast
	notice string
	err    error

	quitting bool
}

// NewModel creates a Model driving service. queue may be nil.
func NewModel(ctx context.Context, service primary.EmergencyService, queue *ToastQueue) Model {
	return Model{
		ctx:     ctx,
		service: service,
		queue:   queue,
		view: primary.AlertView{
			PressEnabled: true,
			ShareEnabled: true,
			DecoyEnabled: true,
		},
	}
}

// Init starts polling.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(RefreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		view, err := m.service.View(m.ctx)
		return viewMsg{view: view, err: err}
	}
}

// actionCmd runs a service call off the UI goroutine; sharing may block on
// location lookup.
func (m Model) actionCmd(action string, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{action: action, err: fn(m.ctx)}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.collectToasts(time.Time(msg))
		return m, tea.Batch(m.refreshCmd(), tickCmd())

	case viewMsg:
		if errors.Is(msg.err, primary.ErrUnmounted) {
			m.quitting = true
			return m, tea.Quit
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.view = msg.view
		return m, nil

	case actionMsg:
		switch {
		case errors.Is(msg.err, primary.ErrActionGated):
			m.notice = msg.err.Error()
		case msg.err != nil:
			m.err = fmt.Errorf("%s: %w", msg.action, msg.err)
		}
		return m, m.refreshCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case " ", "enter", "s":
		return m, m.actionCmd("press", m.service.PressAlertButton)
	case "l":
		return m, m.actionCmd("share", m.service.ShareLocation)
	case "f":
		return m, m.actionCmd("fake call", m.service.StartDecoyCall)
	case "a":
		return m, m.actionCmd("accept", m.service.AcceptDecoyCall)
	case "d":
		return m, m.actionCmd("decline", m.service.DeclineDecoyCall)
	}
	return m, nil
}

// collectToasts moves queued toasts on screen and expires old ones.
func (m *Model) collectToasts(now time.Time) {
	var kept []visibleToast
	for _, t := range m.toasts {
		if now.Before(t.expires) {
			kept = append(kept, t)
		}
	}
	m.toasts = kept

	if m.queue == nil {
		return
	}
	for _, t := range m.queue.Drain() {
		m.toasts = append(m.toasts, visibleToast{toast: t, expires: now.Add(ToastDuration)})
	}
	if len(m.toasts) > maxToasts {
		m.toasts = m.toasts[len(m.toasts)-maxToasts:]
	}
}

// View renders the screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.view.Decoy.Ringing {
		b.WriteString(m.renderCall())
	} else {
		b.WriteString(m.renderCard())
	}
	b.WriteString("\n")

	for _, t := range m.toasts {
		b.WriteString(renderToast(t.toast))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCard() string {
	phase := m.view.Phase

	border := red
	label := "SOS"
	caption := "Press the button in an emergency."
	button := buttonStyle
	switch phase.Kind {
	case primary.PhaseCountingDown:
		border = yellow
		label = fmt.Sprintf("%d", phase.SecondsRemaining)
		caption = fmt.Sprintf("SOS activating in %ds... Press again to cancel.", phase.SecondsRemaining)
		button = button.Background(yellow)
	case primary.PhaseActive:
		label = "SOS ♪"
		caption = "SOS IS ACTIVE. Help is on the way."
		button = button.Blink(true)
	}

	lines := []string{
		titleStyle.Render("⚠ SOS Emergency"),
		caption,
		button.Render(label),
		renderAction("[l] Share My Location", m.view.ShareEnabled),
		renderAction("[f] Fake Call", m.view.DecoyEnabled),
	}
	if m.view.Decoy.Pending {
		lines = append(lines, hintStyle.Render("Fake call incoming..."))
	}
	if phase.Kind == primary.PhaseActive {
		lines = append(lines, hintStyle.Render("To deactivate, press the SOS button again."))
	}
	lines = append(lines, hintStyle.Render("space: SOS • q: quit"))

	return cardStyle.BorderForeground(border).Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m Model) renderCall() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.PlaceHorizontal(40, lipgloss.Right, m.view.Decoy.TimeLabel),
		titleStyle.Render("Incoming Call"),
		"Unknown Number",
		"",
		"☎",
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			declineStyle.Render("[d] Decline"),
			"          ",
			acceptStyle.Render("[a] Accept"),
		),
	)
	return callStyle.Render(body)
}

func renderAction(label string, enabled bool) string {
	if enabled {
		return actionStyle.Render(label)
	}
	return disabledStyle.Render(label)
}

func renderToast(t secondary.Toast) string {
	style := toastStyle
	if t.Variant == secondary.ToastDestructive {
		style = destructiveToastStyle
	}
	text := lipgloss.NewStyle().Bold(true).Render(t.Title)
	if t.Description != "" {
		text += "\n" + t.Description
	}
	return style.Render(text)
}
