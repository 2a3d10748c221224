package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalog "github.com/brunovms/sellerboard/business/catalog/domain"
)

// SearchComponent renders the search form with the three mutually
// exclusive criteria (Nome, SKU, ID).
type SearchComponent struct {
	inputs  []textinput.Model
	labels  []string
	focused int
}

// NewSearchComponent creates a new search form.
func NewSearchComponent() *SearchComponent {
	labels := []string{"Nome", "SKU", "ID"}
	inputs := make([]textinput.Model, len(labels))

	for i := range inputs {
		in := textinput.New()
		in.CharLimit = 64
		in.Width = 32
		in.Prompt = ""
		inputs[i] = in
	}

	s := &SearchComponent{inputs: inputs, labels: labels}
	s.Focus()
	return s
}

// Focus puts the cursor on the first field.
func (s *SearchComponent) Focus() {
	s.focused = 0
	for i := range s.inputs {
		if i == 0 {
			s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
}

// Next moves focus to the next field.
func (s *SearchComponent) Next() {
	s.inputs[s.focused].Blur()
	s.focused = (s.focused + 1) % len(s.inputs)
	s.inputs[s.focused].Focus()
}

// Prev moves focus to the previous field.
func (s *SearchComponent) Prev() {
	s.inputs[s.focused].Blur()
	s.focused = (s.focused - 1 + len(s.inputs)) % len(s.inputs)
	s.inputs[s.focused].Focus()
}

// Update forwards a message to the focused input.
func (s *SearchComponent) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return cmd
}

// Filter builds the search filter from the form values. All fields blank
// yields the unfiltered set.
func (s *SearchComponent) Filter() catalog.Filter {
	return catalog.Filter{
		Name:  strings.TrimSpace(s.inputs[0].Value()),
		SKU:   strings.TrimSpace(s.inputs[1].Value()),
		AdsID: strings.TrimSpace(s.inputs[2].Value()),
	}
}

// Reset clears all fields.
func (s *SearchComponent) Reset() {
	for i := range s.inputs {
		s.inputs[i].SetValue("")
	}
	s.Focus()
}

// View renders the form.
func (s *SearchComponent) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Width(6)
	focusedLabel := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Width(6)
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("BUSCAR"))
	b.WriteString("\n\n")

	for i, in := range s.inputs {
		style := labelStyle
		if i == s.focused {
			style = focusedLabel
		}
		b.WriteString(style.Render(s.labels[i] + ":"))
		b.WriteString(" ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter: buscar • tab: próximo campo • esc: cancelar"))

	return b.String()
}
