package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ToastDuration is how long a toast stays visible.
const ToastDuration = 4 * time.Second

// Toast is one transient notification.
type Toast struct {
	Text      string
	Error     bool
	ExpiresAt time.Time
}

// ToastComponent holds the explicit notification queue. Toasts are pushed
// by update messages and pruned on tick; there is no ambient global state.
type ToastComponent struct {
	toasts []Toast
}

// NewToastComponent creates a new toast component.
func NewToastComponent() *ToastComponent {
	return &ToastComponent{}
}

// Push adds a toast to the queue.
func (t *ToastComponent) Push(text string, isError bool, now time.Time) {
	t.toasts = append(t.toasts, Toast{
		Text:      text,
		Error:     isError,
		ExpiresAt: now.Add(ToastDuration),
	})
}

// Prune drops expired toasts.
func (t *ToastComponent) Prune(now time.Time) {
	kept := t.toasts[:0]
	for _, toast := range t.toasts {
		if toast.ExpiresAt.After(now) {
			kept = append(kept, toast)
		}
	}
	t.toasts = kept
}

// Len returns the number of visible toasts.
func (t *ToastComponent) Len() int {
	return len(t.toasts)
}

// View renders the visible toasts.
func (t *ToastComponent) View() string {
	if len(t.toasts) == 0 {
		return ""
	}

	errorStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#EF4444")).
		Padding(0, 1)

	infoStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#10B981")).
		Padding(0, 1)

	var b strings.Builder
	for i, toast := range t.toasts {
		if i > 0 {
			b.WriteString("\n")
		}
		if toast.Error {
			b.WriteString(errorStyle.Render(toast.Text))
		} else {
			b.WriteString(infoStyle.Render(toast.Text))
		}
	}

	return b.String()
}
