package router

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sahajm/quizdeck/internal/screen"
)

type fakeScreen struct {
	name    string
	inited  bool
	lastMsg tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inited = true
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.lastMsg = msg
	return f, nil
}

func (f *fakeScreen) View(width, height int) string { return f.name }
func (f *fakeScreen) Title() string                 { return f.name }

func TestStackNavigation(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	if r.Depth() != 1 || r.Active() != home {
		t.Fatalf("new router: depth=%d active=%v", r.Depth(), r.Active())
	}

	quiz := &fakeScreen{name: "quiz"}
	r.Push(quiz)
	if !quiz.inited {
		t.Error("Push did not run Init on the new screen")
	}
	if r.Depth() != 2 || r.Active() != quiz {
		t.Errorf("after push: depth=%d active=%s", r.Depth(), r.Active().Title())
	}

	r.Pop()
	if r.Depth() != 1 || r.Active() != home {
		t.Errorf("after pop: depth=%d active=%s", r.Depth(), r.Active().Title())
	}

	// The bottom screen never pops.
	r.Pop()
	if r.Depth() != 1 || r.Active() != home {
		t.Errorf("pop at bottom: depth=%d active=%s", r.Depth(), r.Active().Title())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "quiz"})

	summary := &fakeScreen{name: "summary"}
	r.Replace(summary)

	if !summary.inited {
		t.Error("Replace did not run Init on the new screen")
	}
	if r.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", r.Depth())
	}
	if r.Active() != summary {
		t.Errorf("Active() = %s, want summary", r.Active().Title())
	}

	// The screen underneath is still reachable.
	r.Pop()
	if got := r.Active().Title(); got != "home" {
		t.Errorf("after pop: active = %s, want home", got)
	}
}

func TestNavigationMessages(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	pushed := &fakeScreen{name: "boxes"}
	r.Update(PushScreenMsg{Screen: pushed})
	if r.Active() != pushed {
		t.Fatalf("PushScreenMsg: active = %s", r.Active().Title())
	}

	swapped := &fakeScreen{name: "reveal"}
	r.Update(ReplaceScreenMsg{Screen: swapped})
	if r.Active() != swapped || r.Depth() != 2 {
		t.Errorf("ReplaceScreenMsg: active=%s depth=%d", r.Active().Title(), r.Depth())
	}

	r.Update(PopScreenMsg{})
	if r.Active() != home {
		t.Errorf("PopScreenMsg: active = %s, want home", r.Active().Title())
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &fakeScreen{name: "home"}
	top := &fakeScreen{name: "quiz"}
	r := New(home)
	r.Push(top)

	msg := fmt.Errorf("probe")
	r.Update(msg)

	if top.lastMsg != msg {
		t.Errorf("active screen saw %v, want %v", top.lastMsg, msg)
	}
	if home.lastMsg != nil {
		t.Errorf("covered screen saw %v, want nothing", home.lastMsg)
	}
}
