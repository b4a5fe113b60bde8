package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sahajm/quizdeck/internal/progress"
	"github.com/sahajm/quizdeck/internal/screen"
	"github.com/sahajm/quizdeck/internal/ui/theme"
)

type entriesLoadedMsg struct {
	Entries []progress.LeaderboardEntry
	Err     error
}

// LeaderboardScreen shows all profiles ranked by points.
type LeaderboardScreen struct {
	progress *progress.Service
	entries  []progress.LeaderboardEntry
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)

// New creates a new LeaderboardScreen.
func New(progressService *progress.Service) *LeaderboardScreen {
	return &LeaderboardScreen{progress: progressService}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.progress.Leaderboard(context.Background(), 0)
		return entriesLoadedMsg{Entries: entries, Err: err}
	}
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(entriesLoadedMsg); ok {
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
	}
	return s, nil
}

func (s *LeaderboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("⚠ "+s.errMsg))
	}
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading..."))
	}
	if len(s.entries) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Nobody on the board yet. Play a round!"))
	}

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%-4s %-20s %8s %8s %7s", "#", "Player", "Points", "Badges", "Boxes")))
	b.WriteString("\n")

	var selfID string
	if p := s.progress.Profile(); p != nil {
		selfID = p.ID
	}

	for i, e := range s.entries {
		line := fmt.Sprintf("%-4d %-20s %8d %8d %7d",
			i+1, truncate(e.Name, 20), e.Points, len(e.Badges), e.BoxCount)
		style := theme.Unselected
		if e.ProfileID == selfID {
			style = theme.Selected
			line += "  ◂ you"
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
