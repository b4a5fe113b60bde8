package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sahajm/quizdeck/internal/generator"
	"github.com/sahajm/quizdeck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent quiz sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		sessions, err := s.EventRepo().QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No finished sessions yet. Run `quizdeck play` to start one.")
			return nil
		}

		fmt.Printf("%-19s  %-18s  %-24s  %7s  %6s  %4s  %5s\n",
			"When", "Mode", "Topic", "Score", "Points", "Box", "Secs")
		fmt.Println(strings.Repeat("─", 96))

		var totalPoints, totalBoxes int
		for _, sess := range sessions {
			box := ""
			if sess.BoxAwarded {
				box = "📦"
				totalBoxes++
			}
			totalPoints += sess.PointsEarned

			topic := sess.Topic
			if len(topic) > 24 {
				topic = topic[:23] + "…"
			}
			fmt.Printf("%-19s  %-18s  %-24s  %3d/%-3d  %6d  %4s  %5d\n",
				sess.Timestamp.Local().Format("2006-01-02 15:04:05"),
				generator.Kind(sess.Kind).DisplayName(),
				topic,
				sess.CorrectAnswers,
				sess.QuestionsServed,
				sess.PointsEarned,
				box,
				sess.DurationSecs,
			)
		}

		fmt.Println(strings.Repeat("─", 96))
		fmt.Printf("%d sessions, %d points earned, %d boxes awarded\n",
			len(sessions), totalPoints, totalBoxes)
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
