package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sahajm/quizdeck/internal/generator"
	"github.com/sahajm/quizdeck/internal/llm"
	"github.com/sahajm/quizdeck/internal/quiz"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated questions for a topic (no database)",
	Long: `Generate and interactively answer questions for a topic.

This is a stateless developer tool: no database, no points, no events.
Useful for evaluating question quality across exercise kinds.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "", "Topic to generate questions about (required)")
	previewCmd.Flags().String("kind", string(generator.KindMultipleChoice),
		"Exercise kind: multiple_choice, true_false, fill_blank, matching, or timed")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	_ = previewCmd.MarkFlagRequired("topic")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	kindVal, _ := cmd.Flags().GetString("kind")
	count, _ := cmd.Flags().GetInt("count")

	kind := generator.Kind(strings.ToLower(kindVal))
	known := false
	for _, k := range generator.AllKinds() {
		if k == kind {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("invalid kind %q: must be one of multiple_choice, true_false, fill_blank, matching, timed", kindVal)
	}

	// No event repo wired here, so request logging is skipped.
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := generator.New(provider, generator.DefaultConfig())

	fmt.Printf("Topic: %s (%s)\n", topic, kind.DisplayName())
	fmt.Printf("Generating %d questions...\n\n", count)

	items, err := gen.Generate(ctx, kind, topic, count)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if kind == generator.KindMatching {
		previewMatching(items)
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	var correct int

	for i, item := range items {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(items))
		fmt.Println(item.Prompt)
		if kind == generator.KindMultipleChoice {
			for j, opt := range item.Options {
				fmt.Printf("  %d) %s\n", j+1, opt)
			}
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Println("(skipped)")
			fmt.Println()
			continue
		}

		if checkPreviewAnswer(item, answer) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", previewAnswerText(item))
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(items))
	return nil
}

func previewMatching(items []generator.Item) {
	fmt.Println("Generated pairs:")
	fmt.Println()
	for _, item := range items {
		fmt.Printf("  %-24s %s\n", item.Term, item.Definition)
	}
}

func checkPreviewAnswer(item generator.Item, answer string) bool {
	switch item.Kind {
	case generator.KindMultipleChoice:
		n, err := strconv.Atoi(answer)
		if err != nil {
			return false
		}
		return n-1 == item.CorrectIndex
	case generator.KindTrueFalse:
		switch strings.ToLower(answer) {
		case "t", "true":
			return item.IsTrue
		case "f", "false":
			return !item.IsTrue
		}
		return false
	default:
		return quiz.TextMatches(answer, item.Answer)
	}
}

func previewAnswerText(item generator.Item) string {
	switch item.Kind {
	case generator.KindMultipleChoice:
		return item.Options[item.CorrectIndex]
	case generator.KindTrueFalse:
		return strconv.FormatBool(item.IsTrue)
	default:
		return item.Answer
	}
}
