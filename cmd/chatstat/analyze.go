package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mhersberg/chatstat/internal/config"
	"github.com/mhersberg/chatstat/internal/logging"
	"github.com/mhersberg/chatstat/internal/open"
	"github.com/mhersberg/chatstat/internal/render"
	"github.com/mhersberg/chatstat/internal/stats"
	"github.com/mhersberg/chatstat/internal/tokenize"
	"github.com/mhersberg/chatstat/internal/transcript"
	"github.com/mhersberg/chatstat/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func analyzeCmd() *cobra.Command {
	var (
		plain        bool
		outPath      string
		openAfter    bool
		topN         int
		stopwords    bool
		countNotices bool
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <transcript>",
		Short: "Parse a chat transcript and report message and word statistics",
		Long: `Parse an exported chat transcript (one line per message) and report
message counts, word counts and top words per month, per sender and per
hour of day.

Opens an interactive dashboard when stdout is a terminal; prints the plain
text report when piped or when --plain is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.NewConsole(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("top") {
				cfg.TopN = topN
			}
			if stopwords {
				cfg.UseStopwords = true
			}
			if countNotices {
				cfg.CountNotices = true
			}

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
			logger.Debug("transcript parsed", zap.String("scan", scan.String()))
			if scan.Messages == 0 {
				logger.Warn("no messages matched the export format",
					zap.Int("lines", scan.Lines))
			}

			report := stats.Analyze(msgs, tokenizeOptions(cfg), cfg.TopN)

			if outPath != "" {
				text := render.Render(report, render.Options{})
				if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				logger.Info("report written", zap.String("path", outPath))
				if openAfter {
					return open.InEditor(outPath)
				}
				return nil
			}

			isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
			if !plain && isTerminal {
				return tui.Run(report, filepath.Base(args[0]))
			}

			fmt.Print(render.Render(report, render.Options{Color: isTerminal}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print the text report instead of the dashboard")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the plain text report to a file")
	cmd.Flags().BoolVar(&openAfter, "open", false, "Open the written report in $EDITOR (with --out)")
	cmd.Flags().IntVar(&topN, "top", stats.DefaultTopN, "Words per frequency table")
	cmd.Flags().BoolVar(&stopwords, "stopwords", false, "Drop common filler words from word counts")
	cmd.Flags().BoolVar(&countNotices, "count-notices", false, "Count platform notices as messages (never tokenized)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	return cmd
}

func tokenizeOptions(cfg *config.Config) tokenize.Options {
	opts := tokenize.Options{UseStopwords: cfg.UseStopwords}
	if opts.UseStopwords {
		if len(cfg.Stopwords) > 0 {
			opts.Stopwords = tokenize.NewStopwordSet(cfg.Stopwords...)
		} else {
			opts.Stopwords = tokenize.DefaultStopwords
		}
	}
	return opts
}
