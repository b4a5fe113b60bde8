package quiz

import (
	"errors"
	"testing"

	"github.com/sahajm/quizdeck/internal/completion"
	"github.com/sahajm/quizdeck/internal/generator"
)

func mcqItems() []generator.Item {
	return []generator.Item{
		{Kind: generator.KindMultipleChoice, Prompt: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1},
		{Kind: generator.KindMultipleChoice, Prompt: "Q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
		{Kind: generator.KindMultipleChoice, Prompt: "Q3", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 3},
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(generator.KindMultipleChoice)
	if s.Status != StatusIdle {
		t.Fatalf("new session status = %s, want idle", s.Status)
	}

	if err := s.Begin("planets"); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if s.Status != StatusLoading {
		t.Fatalf("status after begin = %s, want loading", s.Status)
	}

	// Loading is the only state that rejects new requests.
	if err := s.Begin("oceans"); !errors.Is(err, ErrGenerationInFlight) {
		t.Fatalf("begin while loading: err = %v, want ErrGenerationInFlight", err)
	}

	s.Ready(mcqItems(), nil)
	if s.Status != StatusReady {
		t.Fatalf("status after ready = %s, want ready", s.Status)
	}
	for _, st := range s.States {
		if st.Answered {
			t.Fatal("fresh items must start unanswered")
		}
	}

	// Ready sessions accept a new topic.
	if err := s.Begin("oceans"); err != nil {
		t.Fatalf("begin from ready: %v", err)
	}

	s.Fail(errors.New("boom"))
	if s.Status != StatusFailed || s.Err == nil {
		t.Fatal("fail did not record the error")
	}

	// Failed sessions accept a retry.
	if err := s.Begin("rivers"); err != nil {
		t.Fatalf("begin from failed: %v", err)
	}

	s.Reset()
	if s.Status != StatusIdle || s.Topic != "" {
		t.Fatal("reset did not return to idle")
	}
}

func TestAnswerChoiceEvaluation(t *testing.T) {
	s := NewSession(generator.KindMultipleChoice)
	s.Begin("planets")
	s.Ready(mcqItems(), nil)

	if correct, scored := s.AnswerChoice(0, 1); !correct || !scored {
		t.Errorf("correct option: (correct, scored) = (%v, %v), want (true, true)", correct, scored)
	}
	if correct, scored := s.AnswerChoice(1, 2); correct || !scored {
		t.Errorf("wrong option: (correct, scored) = (%v, %v), want (false, true)", correct, scored)
	}
}

func TestFirstAnswerIsAuthoritative(t *testing.T) {
	fired := 0
	tracker := completion.NewTracker(3, func(completion.Score) { fired++ })

	s := NewSession(generator.KindMultipleChoice)
	s.Begin("planets")
	s.Ready(mcqItems(), tracker)

	s.AnswerChoice(0, 2) // wrong, locks
	if correct, scored := s.AnswerChoice(0, 1); correct || scored {
		t.Errorf("re-answer: (correct, scored) = (%v, %v), want locked (false, false)", correct, scored)
	}

	score := tracker.Score()
	if score.Answered != 1 || score.Correct != 0 {
		t.Errorf("tracker = %+v, want answered=1 correct=0", score)
	}
	if fired != 0 {
		t.Error("completion fired before all items answered")
	}
}

func TestAnswerBoolEvaluation(t *testing.T) {
	s := NewSession(generator.KindTrueFalse)
	s.Begin("astronomy")
	s.Ready([]generator.Item{
		{Kind: generator.KindTrueFalse, Prompt: "The sun is a star.", IsTrue: true},
		{Kind: generator.KindTrueFalse, Prompt: "The moon is a planet.", IsTrue: false},
	}, nil)

	if correct, _ := s.AnswerBool(0, true); !correct {
		t.Error("true on a true statement should be correct")
	}
	if correct, _ := s.AnswerBool(1, true); correct {
		t.Error("true on a false statement should be incorrect")
	}
}

func TestAnswerTextNormalization(t *testing.T) {
	s := NewSession(generator.KindFillBlank)
	s.Begin("geography")
	s.Ready([]generator.Item{
		{Kind: generator.KindFillBlank, Prompt: "Capital of France?", Answer: "Paris"},
		{Kind: generator.KindFillBlank, Prompt: "Capital of Japan?", Answer: "Tokyo"},
		{Kind: generator.KindFillBlank, Prompt: "Capital of Peru?", Answer: "Lima"},
	}, nil)

	if correct, _ := s.AnswerText(0, "  pArIs  "); !correct {
		t.Error("case and whitespace should not matter")
	}
	if correct, _ := s.AnswerText(1, "Kyoto"); correct {
		t.Error("wrong answer accepted")
	}
	if correct, _ := s.AnswerText(2, "   "); correct {
		t.Error("blank answer accepted")
	}
}

func TestSessionCompletionFiresOnce(t *testing.T) {
	fired := 0
	var final completion.Score
	tracker := completion.NewTracker(3, func(s completion.Score) {
		fired++
		final = s
	})

	s := NewSession(generator.KindMultipleChoice)
	s.Begin("planets")
	s.Ready(mcqItems(), tracker)

	s.AnswerChoice(0, 1) // correct
	s.AnswerChoice(1, 3) // incorrect
	s.AnswerChoice(2, 3) // correct

	if fired != 1 {
		t.Fatalf("completion fired %d times, want 1", fired)
	}
	if final.Correct != 2 || final.Answered != 3 {
		t.Errorf("final score = %+v, want 2 of 3", final)
	}
	if !s.AllAnswered() {
		t.Error("AllAnswered = false after answering everything")
	}

	// Re-answers at the boundary must not re-fire.
	s.AnswerChoice(0, 1)
	s.AnswerChoice(2, 2)
	if fired != 1 {
		t.Errorf("completion re-fired: %d times", fired)
	}
}

func TestAnswerOutsideReadyIsIgnored(t *testing.T) {
	s := NewSession(generator.KindMultipleChoice)
	if _, scored := s.AnswerChoice(0, 0); scored {
		t.Error("idle session scored an answer")
	}
	s.Begin("planets")
	if _, scored := s.AnswerChoice(0, 0); scored {
		t.Error("loading session scored an answer")
	}
}
