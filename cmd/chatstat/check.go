package main

import (
	"fmt"
	"os"

	"github.com/mhersberg/chatstat/internal/config"
	"github.com/mhersberg/chatstat/internal/transcript"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <transcript>",
		Short: "Self-check: verify the transcript parses and show scan diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			fmt.Printf("  Top N:              %d\n", cfg.TopN)
			fmt.Printf("  Stopwords:          %v\n", cfg.UseStopwords)
			fmt.Printf("  Count notices:      %v\n", cfg.CountNotices)
			fmt.Printf("  Join continuations: %v\n", cfg.JoinContinuations)

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open transcript: %w", err)
			}
			defer f.Close()

			msgs, scan, err := transcript.ReadMessages(f, transcript.Options{
				JoinContinuations: cfg.JoinContinuations,
				CountNotices:      cfg.CountNotices,
			})
			if err != nil {
				return fmt.Errorf("read transcript: %w", err)
			}

			fmt.Println("\n=== Scan ===")
			fmt.Printf("  %s\n", scan)
			if scan.Lines > 0 {
				fmt.Printf("  Match rate: %.1f%%\n",
					float64(scan.Messages)/float64(scan.Lines)*100)
			}

			if len(msgs) == 0 {
				fmt.Println("\n  Status: NO MESSAGES (is this a chat export?)")
				return nil
			}

			senders := make(map[string]struct{})
			for _, m := range msgs {
				senders[m.Sender] = struct{}{}
			}
			first := msgs[0].Date
			last := msgs[0].Date
			for _, m := range msgs[1:] {
				if m.Date.Before(first) {
					first = m.Date
				}
				if m.Date.After(last) {
					last = m.Date
				}
			}

			fmt.Println("\n=== Transcript ===")
			fmt.Printf("  Span:    %s .. %s\n",
				first.Format("2006-01-02"), last.Format("2006-01-02"))
			fmt.Printf("  Senders: %d\n", len(senders))
			fmt.Println("\n  Status: OK")
			return nil
		},
	}
}
