package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sahajm/quizdeck/internal/completion"
	"github.com/sahajm/quizdeck/internal/generator"
	"github.com/sahajm/quizdeck/internal/ui/components"
	"github.com/sahajm/quizdeck/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	var content string

	switch s.phase {
	case phaseTopic:
		content = s.renderTopic()
	case phaseLoading:
		content = s.renderLoading()
	case phaseFailed:
		content = s.renderFailed()
	case phaseDone:
		content = s.renderSummary()
	default:
		if s.kind == generator.KindMatching {
			content = s.renderMatching(width)
		} else {
			content = s.renderQuestion(width)
		}
	}

	if s.errMsg != "" {
		content += "\n\n" + theme.Incorrect.Render("⚠ "+s.errMsg)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderTopic() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("What do you want to be quizzed on?"))
	b.WriteString("\n\n")
	b.WriteString(s.topicInput.View())
	return b.String()
}

func (s *QuizScreen) renderLoading() string {
	return theme.Hint.Render(fmt.Sprintf("Writing %s questions about %q...",
		strings.ToLower(s.kind.DisplayName()), s.session.Topic))
}

func (s *QuizScreen) renderFailed() string {
	var b strings.Builder
	b.WriteString(theme.Incorrect.Render("Question generation failed."))
	b.WriteString("\n\n")
	if s.session.Err != nil {
		b.WriteString(theme.Hint.Render(s.session.Err.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Body.Render("Press Enter to try again, or Esc to go back."))
	return b.String()
}

func (s *QuizScreen) renderQuestion(width int) string {
	var b strings.Builder

	progress := fmt.Sprintf("Question %d of %d", s.current+1, len(s.session.Items))
	if s.timed != nil {
		clock := fmt.Sprintf("⏱ %ds", s.timed.Remaining)
		style := theme.Body
		if s.timed.Remaining <= 5 {
			style = theme.Incorrect
		}
		progress += "    " + style.Render(clock)
	}
	b.WriteString(theme.Hint.Render(progress))
	b.WriteString("\n\n")

	item := s.session.Items[s.current]

	switch s.kind {
	case generator.KindMultipleChoice:
		b.WriteString(s.mc.View())

	case generator.KindTrueFalse:
		b.WriteString(theme.Body.Bold(true).Render(item.Prompt))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("[T]rue    [F]alse"))

	default:
		b.WriteString(theme.Body.Bold(true).Render(item.Prompt))
		b.WriteString("\n\n")
		b.WriteString(s.answerInput.View())
	}

	if s.showingFeedback {
		b.WriteString("\n\n")
		b.WriteString(s.renderFeedback(item))
	}

	return b.String()
}

func (s *QuizScreen) renderFeedback(item generator.Item) string {
	if s.lastCorrect {
		return theme.Correct.Render(fmt.Sprintf("✓ Correct! +%d points", completion.PointsPerCorrect))
	}

	answer := item.Answer
	switch s.kind {
	case generator.KindMultipleChoice:
		answer = item.Options[item.CorrectIndex]
	case generator.KindTrueFalse:
		if item.IsTrue {
			answer = "true"
		} else {
			answer = "false"
		}
	}
	return theme.Incorrect.Render("✗ Not quite.") + " " +
		theme.Body.Render("The answer was: "+answer)
}

func (s *QuizScreen) renderMatching(width int) string {
	var b strings.Builder

	matched := 0
	for _, m := range s.matching.MatchedTerms {
		if m {
			matched++
		}
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Matched %d of %d pairs", matched, len(s.session.Items))))
	b.WriteString("\n\n")

	colWidth := width/2 - 8
	if colWidth < 20 {
		colWidth = 20
	}
	if colWidth > 44 {
		colWidth = 44
	}

	var terms, defs []string
	terms = append(terms, theme.Subtitle.Render("Terms"))
	defs = append(defs, theme.Subtitle.Render("Definitions"))

	for i, item := range s.session.Items {
		terms = append(terms, s.renderMatchLine(item.Term,
			s.matching.MatchedTerms[i],
			!s.onDefs && i == s.termCursor,
			i == s.matching.SelectedTerm,
			colWidth))
	}
	for j, def := range s.matching.Definitions {
		defs = append(defs, s.renderMatchLine(def.Text,
			s.matching.MatchedDefs[j],
			s.onDefs && j == s.defCursor,
			false,
			colWidth))
	}

	left := strings.Join(terms, "\n")
	right := strings.Join(defs, "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right))

	if s.lastAnswer != "" {
		b.WriteString("\n\n")
		if s.lastCorrect {
			b.WriteString(theme.Correct.Render("✓ " + s.lastAnswer))
		} else {
			b.WriteString(theme.Incorrect.Render("✗ " + s.lastAnswer))
		}
	}

	return b.String()
}

func (s *QuizScreen) renderMatchLine(text string, matched, cursor, selected bool, colWidth int) string {
	prefix := "  "
	if cursor {
		prefix = "▸ "
	}

	style := theme.Unselected
	switch {
	case matched:
		style = lipgloss.NewStyle().Foreground(theme.TextDim).Strikethrough(true)
	case selected:
		style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	case cursor:
		style = theme.Selected
	}

	return style.Width(colWidth).Render(prefix + text)
}

func (s *QuizScreen) renderSummary() string {
	score := s.finalScore

	var b strings.Builder
	b.WriteString(theme.Title.Render("Session Complete"))
	b.WriteString("\n\n")

	if s.timed != nil && s.timed.Expired && score.Answered < score.Total {
		b.WriteString(theme.Incorrect.Render("⏱ Time's up!"))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Body.Render(fmt.Sprintf("Score: %d / %d", score.Correct, score.Total)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Points earned: %d", score.Correct*completion.PointsPerCorrect)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", float64(score.Correct)/float64(max(score.Total, 1)), true, 40)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	if score.Perfect() {
		b.WriteString(theme.Correct.Render("★ Perfect round!"))
		b.WriteString("\n")
	}
	if s.boxAwarded {
		tier := string(s.boxTier)
		b.WriteString(theme.TierStyle(tier).Render(
			fmt.Sprintf("%s You earned a %s mystery box!", s.boxTier.Icon(), s.boxTier.DisplayName())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Press Enter to return to the menu."))
	return b.String()
}
