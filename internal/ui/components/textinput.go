package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kakezan/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for typing numeric answers.
// Half- and full-width digits are accepted; other printable keys are dropped.
type AnswerInput struct {
	Model textinput.Model

	// correct is nil until Mark; then ✓ or ✗ follows the field.
	correct *bool
}

// NewAnswerInput creates a focused input limited to width characters.
func NewAnswerInput(placeholder string, width int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = width
	ti.SetWidth(width + 1)
	ti.Focus()
	return AnswerInput{Model: ti}
}

// Init returns the cursor blink command.
func (t AnswerInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" && !isDigits(kmsg.Text) {
		return t, nil
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func isDigits(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < '０' || r > '９') {
			return false
		}
	}
	return true
}

// View renders the field with its mark.
func (t AnswerInput) View() string {
	view := t.Model.View()
	if t.correct != nil {
		if *t.correct {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the typed text.
func (t AnswerInput) Value() string {
	return t.Model.Value()
}

// Mark records the evaluation of the current value.
func (t *AnswerInput) Mark(correct bool) {
	t.correct = &correct
}

// Clear empties the field and removes the mark.
func (t *AnswerInput) Clear() {
	t.Model.Reset()
	t.correct = nil
}
