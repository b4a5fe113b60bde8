package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sahajm/quizdeck/internal/generator"
	"github.com/sahajm/quizdeck/internal/progress"
	"github.com/sahajm/quizdeck/internal/store"
)

// fakeGenerator implements generator.Generator for testing.
type fakeGenerator struct {
	items []generator.Item
	err   error
	calls int
}

func (f *fakeGenerator) Generate(_ context.Context, _ generator.Kind, _ string, _ int) ([]generator.Item, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

// fakeEventRepo implements store.EventRepo for testing.
type fakeEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
	rewardEvents  []store.RewardEventData
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (f *fakeEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (f *fakeEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (f *fakeEventRepo) AppendRewardEvent(_ context.Context, data store.RewardEventData) error {
	f.rewardEvents = append(f.rewardEvents, data)
	return nil
}
func (f *fakeEventRepo) QueryRewardEvents(_ context.Context, _ store.QueryOpts) ([]store.RewardEventRecord, error) {
	return nil, nil
}
func (f *fakeEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	f.answerEvents = append(f.answerEvents, data)
	return nil
}
func (f *fakeEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	f.sessionEvents = append(f.sessionEvents, data)
	return nil
}
func (f *fakeEventRepo) QuerySessionSummaries(_ context.Context, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}

// fakeProfileRepo implements store.ProfileRepo for testing.
type fakeProfileRepo struct {
	rec *store.ProfileRecord
}

func (f *fakeProfileRepo) Get(_ context.Context, _ string) (*store.ProfileRecord, error) {
	return f.rec, nil
}
func (f *fakeProfileRepo) Save(_ context.Context, rec *store.ProfileRecord) error {
	f.rec = rec
	return nil
}
func (f *fakeProfileRepo) Leaderboard(_ context.Context, _ int) ([]store.LeaderboardRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func mcqItems(n int) []generator.Item {
	items := make([]generator.Item, n)
	for i := range items {
		items[i] = generator.Item{
			Kind:         generator.KindMultipleChoice,
			Prompt:       fmt.Sprintf("Question %d?", i+1),
			Options:      []string{"right", "wrong", "wrong", "wrong"},
			CorrectIndex: 0,
		}
	}
	return items
}

func testQuizScreen(t *testing.T, kind generator.Kind, gen *fakeGenerator) (*QuizScreen, *fakeEventRepo, *progress.Service) {
	t.Helper()

	events := &fakeEventRepo{}
	rng := rand.New(rand.NewPCG(1, 2))

	svc := progress.NewService(&fakeProfileRepo{}, rng)
	if _, err := svc.Login(context.Background(), progress.Identity{ID: "kid", Name: "Kid"}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	s := New(kind, Deps{
		Generator: gen,
		Progress:  svc,
		Events:    events,
		Rng:       rng,
	})
	return s, events, svc
}

// beginRun drives the screen through topic entry and generation.
func beginRun(t *testing.T, s *QuizScreen, topic string) {
	t.Helper()

	s.topicInput.Model.SetValue(topic)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a generation command after topic submit")
	}
	if s.phase != phaseLoading {
		t.Fatalf("phase = %v after topic submit, want loading", s.phase)
	}
	s.Update(cmd())
}

func TestQuizScreen_TopicToReady(t *testing.T) {
	gen := &fakeGenerator{items: mcqItems(QuestionCount)}
	s, events, _ := testQuizScreen(t, generator.KindMultipleChoice, gen)

	beginRun(t, s, "oceans")

	if s.phase != phasePlaying {
		t.Fatalf("phase = %v, want playing", s.phase)
	}
	if len(s.session.Items) != QuestionCount {
		t.Errorf("got %d items, want %d", len(s.session.Items), QuestionCount)
	}
	if len(events.sessionEvents) != 1 || events.sessionEvents[0].Action != "start" {
		t.Errorf("expected one start event, got %+v", events.sessionEvents)
	}
}

func TestQuizScreen_StaleGenerationIgnored(t *testing.T) {
	gen := &fakeGenerator{items: mcqItems(QuestionCount)}
	s, _, _ := testQuizScreen(t, generator.KindMultipleChoice, gen)

	beginRun(t, s, "oceans")

	// A batch from a previous run must not replace the live one.
	s.Update(itemsReadyMsg{Gen: s.gen - 1, Err: errors.New("stale failure")})

	if s.phase != phasePlaying {
		t.Errorf("stale result changed phase to %v", s.phase)
	}
}

func TestQuizScreen_PerfectRun(t *testing.T) {
	gen := &fakeGenerator{items: mcqItems(QuestionCount)}
	s, events, svc := testQuizScreen(t, generator.KindMultipleChoice, gen)

	beginRun(t, s, "oceans")

	// Option 0 is always correct and always pre-selected.
	for i := 0; i < QuestionCount; i++ {
		s.Update(specialKey(tea.KeyEnter))
		if !s.showingFeedback {
			t.Fatalf("question %d: expected feedback after submit", i+1)
		}
		s.Update(keyPress(' '))
	}

	if s.phase != phaseDone {
		t.Fatalf("phase = %v after final answer, want done", s.phase)
	}
	if got := svc.Profile().Points; got != QuestionCount*10 {
		t.Errorf("points = %d, want %d", got, QuestionCount*10)
	}
	if !s.boxAwarded {
		t.Error("perfect run must award a box")
	}
	if got := len(svc.Profile().Boxes); got != 1 {
		t.Errorf("inventory = %d boxes, want 1", got)
	}

	if len(events.answerEvents) != QuestionCount {
		t.Errorf("answer events = %d, want %d", len(events.answerEvents), QuestionCount)
	}
	last := events.sessionEvents[len(events.sessionEvents)-1]
	if last.Action != "end" || !last.BoxAwarded || last.PointsEarned != QuestionCount*10 {
		t.Errorf("end event = %+v", last)
	}
	if len(events.rewardEvents) != 1 || events.rewardEvents[0].Action != "issued" {
		t.Errorf("reward events = %+v", events.rewardEvents)
	}
}

func TestQuizScreen_GenerationFailureAndRetry(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("provider down")}
	s, _, _ := testQuizScreen(t, generator.KindMultipleChoice, gen)

	beginRun(t, s, "oceans")

	if s.phase != phaseFailed {
		t.Fatalf("phase = %v after failed generation, want failed", s.phase)
	}

	// Retry succeeds once the provider recovers.
	gen.err = nil
	gen.items = mcqItems(QuestionCount)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a generation command on retry")
	}
	s.Update(cmd())

	if s.phase != phasePlaying {
		t.Errorf("phase = %v after retry, want playing", s.phase)
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2", gen.calls)
	}
}

func TestQuizScreen_TimedStaleTickIgnored(t *testing.T) {
	items := make([]generator.Item, QuestionCount)
	for i := range items {
		items[i] = generator.Item{
			Kind:   generator.KindTimed,
			Prompt: fmt.Sprintf("Blank %d?", i+1),
			Answer: "x",
		}
	}
	gen := &fakeGenerator{items: items}
	s, _, _ := testQuizScreen(t, generator.KindTimed, gen)

	beginRun(t, s, "oceans")

	remaining := s.timed.Remaining
	s.Update(tickMsg{Gen: s.gen - 1})
	if s.timed.Remaining != remaining {
		t.Error("stale tick advanced the countdown")
	}

	s.Update(tickMsg{Gen: s.gen})
	if s.timed.Remaining != remaining-1 {
		t.Errorf("remaining = %d after live tick, want %d", s.timed.Remaining, remaining-1)
	}
}
