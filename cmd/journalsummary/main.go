package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gripgear/designer/internal/configurator"
	"github.com/spf13/cobra"
)

type journalLine struct {
	SessionID  string    `json:"session_id"`
	UserID     string    `json:"user_id"`
	Timestamp  time.Time `json:"timestamp"`
	Event      string    `json:"event"`
	Panel      string    `json:"panel"`
	TemplateID int       `json:"template_id"`
	Channel    string    `json:"channel"`
	Color      string    `json:"color"`
	LeftLogo   string    `json:"left_logo"`
	RightLogo  string    `json:"right_logo"`
	FullLogo   string    `json:"full_logo"`
	Quantity   int       `json:"quantity"`
}

type finalSelection struct {
	TemplateID int    `json:"template_id"`
	Background string `json:"background,omitempty"`
	Stripe     string `json:"stripe,omitempty"`
	LeftLogo   string `json:"left_logo,omitempty"`
	RightLogo  string `json:"right_logo,omitempty"`
	FullLogo   string `json:"full_logo,omitempty"`
	Quantity   int    `json:"quantity"`
}

type sessionSummary struct {
	SessionID string         `json:"session_id"`
	UserID    string         `json:"user_id,omitempty"`
	StartTime time.Time      `json:"start_time"`
	EndTime   time.Time      `json:"end_time"`
	Events    int            `json:"events"`
	ByKind    map[string]int `json:"by_kind"`
	Final     finalSelection `json:"final"`
}

type journalReport struct {
	Source   string           `json:"source"`
	Events   int              `json:"events"`
	Skipped  int              `json:"skipped"`
	ByKind   map[string]int   `json:"by_kind"`
	Sessions []sessionSummary `json:"sessions"`
}

var (
	inputPath  string
	outputPath string
)

var rootCmd = &cobra.Command{
	Use:          "journalsummary",
	Short:        "Summarise a designer selection journal",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputPath == "" {
			return errors.New("missing --in path")
		}
		file, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer file.Close()

		report, err := summarize(file, inputPath)
		if err != nil {
			return fmt.Errorf("parse journal: %w", err)
		}
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		if outputPath == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		}
		if err := os.WriteFile(outputPath, append(encoded, '\n'), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&inputPath, "in", "", "journal file path (required)")
	rootCmd.Flags().StringVar(&outputPath, "out", "", "output JSON path (optional, defaults to stdout)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "journalsummary: %v\n", err)
		os.Exit(1)
	}
}

// summarize folds the journal into per-kind and per-session counts. Lines
// that are not journal entries are counted as skipped.
func summarize(r io.Reader, source string) (journalReport, error) {
	report := journalReport{Source: source, ByKind: map[string]int{}}
	sessions := map[string]*sessionSummary{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry journalLine
		if err := json.Unmarshal([]byte(line), &entry); err != nil || entry.Event == "" {
			report.Skipped++
			continue
		}
		report.Events++
		report.ByKind[entry.Event]++

		s, ok := sessions[entry.SessionID]
		if !ok {
			s = &sessionSummary{
				SessionID: entry.SessionID,
				UserID:    entry.UserID,
				StartTime: entry.Timestamp,
				ByKind:    map[string]int{},
				Final:     finalSelection{TemplateID: configurator.PlainTemplateID, Quantity: 1},
			}
			sessions[entry.SessionID] = s
		}
		s.Events++
		s.ByKind[entry.Event]++
		if entry.Timestamp.Before(s.StartTime) {
			s.StartTime = entry.Timestamp
		}
		if entry.Timestamp.After(s.EndTime) {
			s.EndTime = entry.Timestamp
		}
		applyEntry(&s.Final, entry)
	}
	if err := scanner.Err(); err != nil {
		return report, err
	}

	for _, s := range sessions {
		report.Sessions = append(report.Sessions, *s)
	}
	sort.Slice(report.Sessions, func(i, j int) bool {
		a, b := report.Sessions[i], report.Sessions[j]
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.Before(b.StartTime)
		}
		return a.SessionID < b.SessionID
	})
	return report, nil
}

func applyEntry(final *finalSelection, entry journalLine) {
	switch configurator.EventKind(entry.Event) {
	case configurator.KindTemplateChanged:
		final.TemplateID = entry.TemplateID
	case configurator.KindColorChanged:
		switch configurator.ColorChannel(entry.Channel) {
		case configurator.ChannelBackground:
			final.Background = entry.Color
		case configurator.ChannelStripe:
			final.Stripe = entry.Color
		}
	case configurator.KindLogoChanged:
		final.LeftLogo = entry.LeftLogo
		final.RightLogo = entry.RightLogo
		final.FullLogo = entry.FullLogo
	case configurator.KindQuantityChanged:
		final.Quantity = entry.Quantity
	}
}
