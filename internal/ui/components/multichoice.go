package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sahajm/quizdeck/internal/ui/theme"
)

var choiceLabels = [...]string{"A", "B", "C", "D", "E", "F"}

// MultiChoice renders a question with lettered options. Once an answer
// is submitted the component locks and reveals correct/incorrect
// coloring.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and submits on enter. Pressing an option's
// number selects it directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Submitted {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(m.Options) {
			m.Selected = int(key[0] - '1')
		}
	}

	return m, nil
}

// View renders the question and option list.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		cursor := "  "
		if !m.Submitted && i == m.Selected {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", cursor, choiceLabels[i], opt)
		b.WriteString(m.optionStyle(i).Render(line))
		b.WriteByte('\n')
	}

	return b.String()
}

func (m MultiChoice) optionStyle(i int) lipgloss.Style {
	if !m.Submitted {
		if i == m.Selected {
			return theme.Selected
		}
		return theme.Unselected
	}
	switch i {
	case m.CorrectIndex:
		return theme.Correct
	case m.ChosenIndex:
		return theme.Incorrect
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}

// IsCorrect reports whether the submitted answer matched.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
