package home

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sahajm/quizdeck/internal/generator"
	"github.com/sahajm/quizdeck/internal/progress"
	"github.com/sahajm/quizdeck/internal/router"
	"github.com/sahajm/quizdeck/internal/screen"
	"github.com/sahajm/quizdeck/internal/screens/boxes"
	"github.com/sahajm/quizdeck/internal/screens/history"
	"github.com/sahajm/quizdeck/internal/screens/leaderboard"
	quizscreen "github.com/sahajm/quizdeck/internal/screens/quiz"
	"github.com/sahajm/quizdeck/internal/store"
	"github.com/sahajm/quizdeck/internal/ui/components"
	"github.com/sahajm/quizdeck/internal/ui/theme"
)

// Deps carries the services the home screen hands to its children.
type Deps struct {
	Generator generator.Generator
	Progress  *progress.Service
	Events    store.EventRepo
	Rng       *rand.Rand
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	items := make([]components.MenuItem, 0, len(generator.AllKinds())+3)

	for _, kind := range generator.AllKinds() {
		k := kind
		items = append(items, components.MenuItem{
			Label:    k.DisplayName(),
			Disabled: deps.Generator == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quizscreen.New(k, quizscreen.Deps{
							Generator: deps.Generator,
							Progress:  deps.Progress,
							Events:    deps.Events,
							Rng:       deps.Rng,
						}),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "Mystery Boxes", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: boxes.New(deps.Progress, deps.Events)}
			}
		}},
		components.MenuItem{Label: "Leaderboard", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: leaderboard.New(deps.Progress)}
			}
		}},
		components.MenuItem{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Events)}
			}
		}},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("QUIZDECK")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Pick a topic. Answer questions. Collect boxes.")
	sections = append(sections, title+"\n"+subtitle)

	if p := h.profile(); p != nil {
		stats := fmt.Sprintf("%s  ·  ✦ %d pts  ·  ⬢ %d badges  ·  📦 %d boxes",
			p.Name, p.Points, len(p.Badges), len(p.Boxes))
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Render(stats))
	}

	if h.deps.Generator == nil {
		warn := "No LLM provider configured. Set QUIZDECK_ANTHROPIC_API_KEY (or OPENAI/GEMINI) to play."
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(warn))
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) profile() *progress.Profile {
	if h.deps.Progress == nil {
		return nil
	}
	return h.deps.Progress.Profile()
}
