package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sahajm/quizdeck/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider stack.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// itemOutput is the raw per-item LLM response before validation.
type itemOutput struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Statement    string   `json:"statement"`
	IsTrue       bool     `json:"is_true"`
	Answer       string   `json:"answer"`
	Term         string   `json:"term"`
	Definition   string   `json:"definition"`
}

type batchOutput struct {
	Items []itemOutput `json:"items"`
}

// Generate produces count items of the given kind for a topic.
func (g *LLMGenerator) Generate(ctx context.Context, kind Kind, topic string, count int) ([]Item, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(kind, topic, count)},
		},
		Schema:      SchemaFor(kind),
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation: %w", err)
	}

	var batch batchOutput
	if err := json.Unmarshal(resp.Content, &batch); err != nil {
		return nil, &ErrInvalidOutput{Kind: kind, Reason: fmt.Sprintf("unparseable response: %v", err)}
	}

	items := make([]Item, 0, len(batch.Items))
	for _, raw := range batch.Items {
		items = append(items, itemFromOutput(kind, raw))
	}

	if err := validateItems(kind, items, count); err != nil {
		return nil, err
	}
	return items[:count], nil
}

func itemFromOutput(kind Kind, raw itemOutput) Item {
	item := Item{Kind: kind}
	switch kind {
	case KindMultipleChoice:
		item.Prompt = raw.Question
		item.Options = raw.Options
		item.CorrectIndex = raw.CorrectIndex
	case KindTrueFalse:
		item.Prompt = raw.Statement
		item.IsTrue = raw.IsTrue
	case KindMatching:
		item.Term = raw.Term
		item.Definition = raw.Definition
	default:
		item.Prompt = raw.Question
		item.Answer = raw.Answer
	}
	return item
}
