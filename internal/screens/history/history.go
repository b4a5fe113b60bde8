package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sahajm/quizdeck/internal/generator"
	"github.com/sahajm/quizdeck/internal/screen"
	"github.com/sahajm/quizdeck/internal/store"
	"github.com/sahajm/quizdeck/internal/ui/theme"
)

const pageSize = 15

type sessionsLoadedMsg struct {
	Records []store.SessionSummaryRecord
	Err     error
}

// HistoryScreen lists finished quiz sessions, newest first.
type HistoryScreen struct {
	events store.EventRepo

	records []store.SessionSummaryRecord
	offset  int
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(events store.EventRepo) *HistoryScreen {
	return &HistoryScreen{events: events}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := s.events.QuerySessionSummaries(context.Background(), store.QueryOpts{})
		return sessionsLoadedMsg{Records: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.records)-pageSize {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("⚠ "+s.errMsg))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading..."))
	}
	if len(s.records) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No finished sessions yet."))
	}

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%-17s %-18s %-22s %7s %7s %4s",
		"When", "Mode", "Topic", "Score", "Points", "Box")))
	b.WriteString("\n")

	end := s.offset + pageSize
	if end > len(s.records) {
		end = len(s.records)
	}

	for _, r := range s.records[s.offset:end] {
		topic := r.Topic
		if len(topic) > 22 {
			topic = topic[:21] + "…"
		}
		box := ""
		if r.BoxAwarded {
			box = "📦"
		}
		line := fmt.Sprintf("%-17s %-18s %-22s %3d/%-3d %7d %4s",
			r.Timestamp.Local().Format("Jan 02 15:04"),
			generator.Kind(r.Kind).DisplayName(),
			topic,
			r.CorrectAnswers, r.QuestionsServed,
			r.PointsEarned,
			box)
		b.WriteString(theme.Unselected.Render(line))
		b.WriteString("\n")
	}

	if len(s.records) > pageSize {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d–%d of %d  (↑↓ to scroll)",
			s.offset+1, end, len(s.records))))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
