package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/sahajm/quizdeck/internal/completion"
	"github.com/sahajm/quizdeck/internal/generator"
	"github.com/sahajm/quizdeck/internal/progress"
	qz "github.com/sahajm/quizdeck/internal/quiz"
	"github.com/sahajm/quizdeck/internal/rewards"
	"github.com/sahajm/quizdeck/internal/router"
	"github.com/sahajm/quizdeck/internal/screen"
	"github.com/sahajm/quizdeck/internal/store"
	"github.com/sahajm/quizdeck/internal/ui/components"
	"github.com/sahajm/quizdeck/internal/ui/layout"
)

// QuestionCount is the number of questions in one run.
const QuestionCount = 5

type phase int

const (
	phaseTopic phase = iota
	phaseLoading
	phasePlaying
	phaseDone
	phaseFailed
)

// Deps carries the services a quiz run needs.
type Deps struct {
	Generator generator.Generator
	Progress  *progress.Service
	Events    store.EventRepo
	Rng       *rand.Rand
}

// QuizScreen runs one exercise type end to end: topic entry, generation,
// answering, and the completion summary.
type QuizScreen struct {
	kind generator.Kind
	deps Deps

	phase     phase
	sessionID string
	startedAt time.Time

	// gen guards async results: a generation request or timer tick
	// carries the gen it was started under, and results from any
	// older gen are dropped.
	gen int

	session  *qz.Session
	matching *qz.MatchingSession
	timed    *qz.TimedSession

	topicInput  components.TextInput
	answerInput components.TextInput
	mc          components.MultiChoice

	current         int
	questionShownAt time.Time
	showingFeedback bool
	lastCorrect     bool
	lastAnswer      string

	// matching cursor state
	onDefs     bool
	termCursor int
	defCursor  int

	completed  bool
	finalScore completion.Score
	boxTier    rewards.Tier
	boxAwarded bool

	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for the given exercise kind.
func New(kind generator.Kind, deps Deps) *QuizScreen {
	s := &QuizScreen{
		kind:       kind,
		deps:       deps,
		phase:      phaseTopic,
		topicInput: components.NewTextInput("Enter a topic, e.g. the solar system", 60),
	}

	switch kind {
	case generator.KindMatching:
		s.matching = qz.NewMatchingSession()
		s.session = s.matching.Session
	case generator.KindTimed:
		s.timed = qz.NewTimedSession()
		s.session = s.timed.Session
	default:
		s.session = qz.NewSession(kind)
	}
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.topicInput.Init()
}

func (s *QuizScreen) Title() string {
	return s.kind.DisplayName()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseTopic:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case phasePlaying:
		if s.showingFeedback {
			return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
		}
		switch s.kind {
		case generator.KindTrueFalse:
			return []layout.KeyHint{
				{Key: "T", Description: "True"},
				{Key: "F", Description: "False"},
			}
		case generator.KindMatching:
			return []layout.KeyHint{
				{Key: "↑↓", Description: "Move"},
				{Key: "Tab", Description: "Switch column"},
				{Key: "Enter", Description: "Select"},
			}
		default:
			return []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
		}
	case phaseDone:
		return []layout.KeyHint{{Key: "Enter", Description: "Back to menu"}}
	case phaseFailed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsReadyMsg:
		return s.handleItemsReady(msg)

	case tickMsg:
		return s.handleTick(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseTopic {
		var cmd tea.Cmd
		s.topicInput, cmd = s.topicInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleItemsReady(msg itemsReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Gen != s.gen {
		return s, nil
	}

	if msg.Err != nil {
		s.session.Fail(msg.Err)
		s.phase = phaseFailed
		return s, nil
	}

	tracker := completion.NewTracker(len(msg.Items), func(score completion.Score) {
		s.completed = true
		s.finalScore = score
	})

	switch s.kind {
	case generator.KindMatching:
		s.matching.Ready(msg.Items, tracker, s.deps.Rng)
		s.onDefs = false
		s.termCursor = 0
		s.defCursor = 0
	case generator.KindTimed:
		s.timed.Ready(msg.Items, tracker)
	default:
		s.session.Ready(msg.Items, tracker)
	}

	s.phase = phasePlaying
	s.current = 0
	s.showingFeedback = false
	s.questionShownAt = time.Now()
	s.prepareQuestion()

	if s.kind == generator.KindTimed {
		return s, tea.Batch(s.answerInput.Init(), s.tickCmd())
	}
	if s.kind == generator.KindFillBlank {
		return s, s.answerInput.Init()
	}
	return s, nil
}

func (s *QuizScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	if msg.Gen != s.gen || s.timed == nil || s.phase != phasePlaying {
		return s, nil
	}

	expired := s.timed.Tick()
	if expired {
		// Unanswered items were just force-recorded, firing completion.
		s.finish()
		s.phase = phaseDone
		return s, nil
	}
	return s, s.tickCmd()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseTopic:
		if msg.String() == "enter" {
			topic := s.topicInput.Value()
			if topic == "" {
				return s, nil
			}
			return s, s.begin(topic)
		}
		var cmd tea.Cmd
		s.topicInput, cmd = s.topicInput.Update(msg)
		return s, cmd

	case phaseFailed:
		if msg.String() == "enter" {
			return s, s.begin(s.session.Topic)
		}
		return s, nil

	case phaseDone:
		if msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case phasePlaying:
		return s.handlePlayKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handlePlayKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.showingFeedback {
		s.advance()
		return s, nil
	}

	switch s.kind {
	case generator.KindMultipleChoice:
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			item := s.session.Items[s.current]
			correct, scored := s.session.AnswerChoice(s.current, s.mc.ChosenIndex)
			s.recordResult(item.Prompt, item.Options[item.CorrectIndex],
				item.Options[s.mc.ChosenIndex], correct, scored)
			s.showingFeedback = true
		}
		return s, cmd

	case generator.KindTrueFalse:
		var value bool
		switch msg.String() {
		case "t", "T":
			value = true
		case "f", "F":
			value = false
		default:
			return s, nil
		}
		item := s.session.Items[s.current]
		correct, scored := s.session.AnswerBool(s.current, value)
		s.recordResult(item.Prompt, strconv.FormatBool(item.IsTrue),
			strconv.FormatBool(value), correct, scored)
		s.showingFeedback = true
		return s, nil

	case generator.KindFillBlank:
		if msg.String() == "enter" {
			text := s.answerInput.Value()
			if text == "" {
				return s, nil
			}
			item := s.session.Items[s.current]
			correct, scored := s.session.AnswerText(s.current, text)
			s.answerInput.Submit(correct)
			s.recordResult(item.Prompt, item.Answer, text, correct, scored)
			s.showingFeedback = true
			return s, nil
		}
		var cmd tea.Cmd
		s.answerInput, cmd = s.answerInput.Update(msg)
		return s, cmd

	case generator.KindTimed:
		if msg.String() == "enter" {
			text := s.answerInput.Value()
			if text == "" {
				return s, nil
			}
			item := s.session.Items[s.current]
			correct, scored := s.timed.AnswerText(s.current, text)
			s.recordResult(item.Prompt, item.Answer, text, correct, scored)
			// No feedback pause under the clock.
			s.advance()
			return s, nil
		}
		var cmd tea.Cmd
		s.answerInput, cmd = s.answerInput.Update(msg)
		return s, cmd

	case generator.KindMatching:
		return s.handleMatchingKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleMatchingKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	n := len(s.session.Items)

	switch msg.String() {
	case "tab", "left", "right", "h", "l":
		s.onDefs = !s.onDefs

	case "up", "k":
		if s.onDefs {
			if s.defCursor > 0 {
				s.defCursor--
			}
		} else if s.termCursor > 0 {
			s.termCursor--
		}

	case "down", "j":
		if s.onDefs {
			if s.defCursor < n-1 {
				s.defCursor++
			}
		} else if s.termCursor < n-1 {
			s.termCursor++
		}

	case "enter":
		if !s.onDefs {
			if s.matching.SelectTerm(s.termCursor) {
				s.onDefs = true
				s.lastAnswer = ""
			}
			return s, nil
		}

		term := s.matching.SelectedTerm
		if term < 0 {
			s.onDefs = false
			return s, nil
		}
		def := s.matching.Definitions[s.defCursor]
		correct, scored := s.matching.SelectDefinition(s.defCursor)

		item := s.session.Items[term]
		s.recordResult(item.Term, item.Definition, def.Text, correct, scored)
		s.lastCorrect = correct
		if correct {
			s.lastAnswer = fmt.Sprintf("%s → %s", item.Term, def.Text)
		} else {
			s.lastAnswer = fmt.Sprintf("%s is not %q", item.Term, def.Text)
		}
		s.onDefs = false

		if s.matching.AllMatched() {
			s.phase = phaseDone
		}
	}
	return s, nil
}

// begin starts a fresh run for topic: new session identity, new gen, and
// an async generation request.
func (s *QuizScreen) begin(topic string) tea.Cmd {
	if err := s.session.Begin(topic); err != nil {
		return nil
	}

	s.gen++
	s.sessionID = uuid.NewString()
	s.startedAt = time.Now()
	s.completed = false
	s.boxAwarded = false
	s.boxTier = ""
	s.errMsg = ""
	s.phase = phaseLoading

	if s.deps.Events != nil {
		err := s.deps.Events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID: s.sessionID,
			Action:    "start",
			Kind:      string(s.kind),
			Topic:     topic,
		})
		if err != nil {
			s.errMsg = err.Error()
		}
	}

	gen := s.gen
	return func() tea.Msg {
		items, err := s.deps.Generator.Generate(context.Background(), s.kind, topic, QuestionCount)
		return itemsReadyMsg{Gen: gen, Items: items, Err: err}
	}
}

func (s *QuizScreen) tickCmd() tea.Cmd {
	gen := s.gen
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{Gen: gen, Time: t}
	})
}

// prepareQuestion resets the per-question widget for the current item.
func (s *QuizScreen) prepareQuestion() {
	switch s.kind {
	case generator.KindMultipleChoice:
		item := s.session.Items[s.current]
		s.mc = components.NewMultiChoice(item.Prompt, item.Options, item.CorrectIndex)
	case generator.KindFillBlank, generator.KindTimed:
		s.answerInput = components.NewTextInput("Type your answer...", 60)
	}
	s.questionShownAt = time.Now()
}

// recordResult applies a scoring answer's side effects: the answer event,
// the point credit, and the completion flow when this was the last answer.
func (s *QuizScreen) recordResult(questionText, correctAnswer, learnerAnswer string, correct, scored bool) {
	s.lastCorrect = correct
	if !scored {
		return
	}

	ctx := context.Background()

	if s.deps.Events != nil {
		err := s.deps.Events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:     s.sessionID,
			Kind:          string(s.kind),
			QuestionText:  questionText,
			CorrectAnswer: correctAnswer,
			LearnerAnswer: learnerAnswer,
			Correct:       correct,
			TimeMs:        int(time.Since(s.questionShownAt).Milliseconds()),
		})
		if err != nil {
			s.errMsg = err.Error()
		}
	}

	if correct && s.deps.Progress != nil {
		if err := s.deps.Progress.AddPoints(ctx, completion.PointsPerCorrect); err != nil {
			s.errMsg = err.Error()
		}
	}

	if s.completed {
		s.finish()
	}
}

// finish runs once per completed session: the bonus box draw and the end
// event. It is triggered by the tracker firing on the last recorded answer.
func (s *QuizScreen) finish() {
	ctx := context.Background()

	tier, awarded := completion.BonusBox(s.finalScore, s.deps.Rng)
	if awarded && s.deps.Progress != nil {
		box, err := s.deps.Progress.AddBox(ctx, tier)
		if err != nil {
			s.errMsg = err.Error()
			awarded = false
		} else {
			s.boxTier = tier
			if s.deps.Events != nil {
				_ = s.deps.Events.AppendRewardEvent(ctx, store.RewardEventData{
					ProfileID: s.deps.Progress.Profile().ID,
					BoxID:     box.ID,
					Action:    "issued",
					Tier:      string(tier),
				})
			}
		}
	}
	s.boxAwarded = awarded

	if s.deps.Events != nil {
		err := s.deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:       s.sessionID,
			Action:          "end",
			Kind:            string(s.kind),
			Topic:           s.session.Topic,
			QuestionsServed: s.finalScore.Total,
			CorrectAnswers:  s.finalScore.Correct,
			PointsEarned:    s.finalScore.Correct * completion.PointsPerCorrect,
			BoxAwarded:      s.boxAwarded,
			DurationSecs:    int(time.Since(s.startedAt).Seconds()),
		})
		if err != nil {
			s.errMsg = err.Error()
		}
	}
}

// advance moves to the next question, or to the summary after the last.
func (s *QuizScreen) advance() {
	s.showingFeedback = false

	if s.timed != nil && s.timed.Expired {
		s.phase = phaseDone
		return
	}

	if s.current+1 >= len(s.session.Items) {
		s.phase = phaseDone
		return
	}
	s.current++
	s.prepareQuestion()
}
