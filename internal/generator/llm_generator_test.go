package generator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sahajm/quizdeck/internal/llm"
)

func TestGenerateMultipleChoice(t *testing.T) {
	content := `{"items":[
		{"question":"Which planet is largest?","options":["Mars","Jupiter","Earth","Venus"],"correct_index":1},
		{"question":"Which planet is closest to the sun?","options":["Mercury","Venus","Earth","Mars"],"correct_index":0}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	g := New(mock, DefaultConfig())

	items, err := g.Generate(context.Background(), KindMultipleChoice, "planets", 2)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Kind != KindMultipleChoice {
		t.Errorf("kind = %s, want multiple_choice", items[0].Kind)
	}
	if items[0].CorrectIndex != 1 {
		t.Errorf("correct index = %d, want 1", items[0].CorrectIndex)
	}
	if len(items[0].Options) != 4 {
		t.Errorf("got %d options, want 4", len(items[0].Options))
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("provider called %d times, want 1", len(mock.Calls))
	}
	if mock.Calls[0].Schema == nil {
		t.Error("request sent without a schema")
	}
}

func TestGenerateTrueFalse(t *testing.T) {
	content := `{"items":[{"statement":"The sun is a star.","is_true":true}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	g := New(mock, DefaultConfig())

	items, err := g.Generate(context.Background(), KindTrueFalse, "astronomy", 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if items[0].Prompt != "The sun is a star." || !items[0].IsTrue {
		t.Errorf("unexpected item: %+v", items[0])
	}
}

func TestGenerateMatchingRejectsDuplicateTerms(t *testing.T) {
	content := `{"items":[
		{"term":"mitosis","definition":"cell division"},
		{"term":"mitosis","definition":"something else"}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), KindMatching, "biology", 2)
	var invalid *ErrInvalidOutput
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidOutput", err)
	}
}

func TestGenerateEmptyBatchIsInvalidOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"items":[]}`)})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), KindFillBlank, "history", 3)
	var invalid *ErrInvalidOutput
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidOutput", err)
	}
}

func TestGenerateShortBatchIsInvalidOutput(t *testing.T) {
	content := `{"items":[{"question":"Capital of France?","answer":"Paris"}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), KindFillBlank, "geography", 3)
	var invalid *ErrInvalidOutput
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidOutput", err)
	}
}

func TestGenerateTrimsExtraItems(t *testing.T) {
	content := `{"items":[
		{"question":"Q1?","answer":"a"},
		{"question":"Q2?","answer":"b"},
		{"question":"Q3?","answer":"c"}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	g := New(mock, DefaultConfig())

	items, err := g.Generate(context.Background(), KindTimed, "anything", 2)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("got %d items, want 2", len(items))
	}
	if items[0].Kind != KindTimed {
		t.Errorf("kind = %s, want timed", items[0].Kind)
	}
}

func TestGenerateProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), KindMultipleChoice, "planets", 2)
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}
