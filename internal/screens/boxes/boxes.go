package boxes

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sahajm/quizdeck/internal/progress"
	"github.com/sahajm/quizdeck/internal/rewards"
	"github.com/sahajm/quizdeck/internal/screen"
	"github.com/sahajm/quizdeck/internal/store"
	"github.com/sahajm/quizdeck/internal/ui/layout"
	"github.com/sahajm/quizdeck/internal/ui/theme"
)

// BoxesScreen shows the learner's mystery box inventory and opens boxes
// oldest-first.
type BoxesScreen struct {
	progress *progress.Service
	events   store.EventRepo

	lastReward *rewards.Reward
	errMsg     string
}

var _ screen.Screen = (*BoxesScreen)(nil)
var _ screen.KeyHintProvider = (*BoxesScreen)(nil)

// New creates a new BoxesScreen.
func New(progressService *progress.Service, events store.EventRepo) *BoxesScreen {
	return &BoxesScreen{
		progress: progressService,
		events:   events,
	}
}

func (s *BoxesScreen) Init() tea.Cmd {
	return nil
}

func (s *BoxesScreen) Title() string {
	return "Mystery Boxes"
}

func (s *BoxesScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	if p := s.progress.Profile(); p != nil && len(p.Boxes) > 0 {
		hints = append([]layout.KeyHint{{Key: "Enter", Description: "Open oldest box"}}, hints...)
	}
	return hints
}

func (s *BoxesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if kmsg.String() == "enter" {
		s.openOldest()
	}
	return s, nil
}

func (s *BoxesScreen) openOldest() {
	ctx := context.Background()
	s.errMsg = ""

	p := s.progress.Profile()
	if p == nil || len(p.Boxes) == 0 {
		return
	}
	opened := p.Boxes[0]

	reward, err := s.progress.OpenBox(ctx)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	if reward == nil {
		return
	}
	s.lastReward = reward

	if s.events != nil {
		err := s.events.AppendRewardEvent(ctx, store.RewardEventData{
			ProfileID:         p.ID,
			BoxID:             opened.ID,
			Action:            "opened",
			Tier:              string(reward.Tier),
			RewardDescription: reward.Description,
			RewardPoints:      reward.Points,
		})
		if err != nil {
			s.errMsg = err.Error()
		}
	}
}

func (s *BoxesScreen) View(width, height int) string {
	var b strings.Builder

	p := s.progress.Profile()
	if p == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No profile loaded."))
	}

	if len(p.Boxes) == 0 {
		b.WriteString(theme.Hint.Render("No unopened boxes."))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("Finish a round to earn one. A perfect score always pays out."))
	} else {
		b.WriteString(theme.Body.Render(fmt.Sprintf("%d unopened", len(p.Boxes))))
		b.WriteString("\n\n")
		for i, box := range p.Boxes {
			tier := string(box.Tier)
			line := fmt.Sprintf("%s %s", box.Tier.Icon(), box.Tier.DisplayName())
			if i == 0 {
				line = "▸ " + line + theme.Hint.Render("  (next to open)")
			} else {
				line = "  " + line
			}
			b.WriteString(theme.TierStyle(tier).Render(line))
			b.WriteString("\n")
		}
	}

	if s.lastReward != nil {
		b.WriteString("\n\n")
		tier := string(s.lastReward.Tier)
		b.WriteString(theme.TierStyle(tier).Render(
			fmt.Sprintf("%s %s box opened!", s.lastReward.Tier.Icon(), s.lastReward.Tier.DisplayName())))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("You found: " + s.lastReward.Description))
		if s.lastReward.Points > 0 {
			b.WriteString("\n")
			b.WriteString(theme.Correct.Render(fmt.Sprintf("+%d points", s.lastReward.Points)))
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render("⚠ " + s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
