package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/resconfig/resconfig-go/pkg/apilevel"
	"github.com/resconfig/resconfig-go/pkg/log"
)

func newLogStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file" + log.FileExtension + ">",
		Short: "Show statistics about a trace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunStats(args[0], cmd.OutOrStdout())
		},
	}
}

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	EventsBySource   map[log.Source]int
	EventsByLevel    map[apilevel.Level]int
	RejectionsByKind map[string]int
	RejectedTokens   map[string]int
	Sessions         map[string]int
	TotalResolveTime time.Duration
	ResolutionsTimed int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		EventsBySource:   make(map[log.Source]int),
		EventsByLevel:    make(map[apilevel.Level]int),
		RejectionsByKind: make(map[string]int),
		RejectedTokens:   make(map[string]int),
		Sessions:         make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++
		stats.EventsBySource[event.Source]++
		stats.EventsByLevel[event.APILevel]++
		stats.Sessions[event.SessionID]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		if r := event.Resolution; r != nil && r.Duration > 0 {
			stats.TotalResolveTime += r.Duration
			stats.ResolutionsTimed++
		}
		if r := event.Rejection; r != nil {
			stats.RejectionsByKind[r.Kind]++
			if r.Token != "" {
				stats.RejectedTokens[r.Token]++
			}
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Qualifier Resolution Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Sessions:   %d\n", len(stats.Sessions))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryResolved, log.CategoryRejected} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Source:")
	for _, src := range []log.Source{log.SourceParse, log.SourceOverlay, log.SourceProfile} {
		if count := stats.EventsBySource[src]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", src.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by API Level:")
	levels := make([]apilevel.Level, 0, len(stats.EventsByLevel))
	for l := range stats.EventsByLevel {
		levels = append(levels, l)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	for _, l := range levels {
		fmt.Fprintf(w, "  %-12s %d\n", l.Token()+":", stats.EventsByLevel[l])
	}
	fmt.Fprintln(w)

	if stats.ResolutionsTimed > 0 {
		avg := stats.TotalResolveTime / time.Duration(stats.ResolutionsTimed)
		fmt.Fprintf(w, "Average Resolve Time: %s\n", formatDuration(avg))
		fmt.Fprintln(w)
	}

	if len(stats.RejectionsByKind) > 0 {
		fmt.Fprintln(w, "Rejections by Kind:")
		for _, kind := range sortedKeys(stats.RejectionsByKind) {
			fmt.Fprintf(w, "  %-16s %d\n", kind+":", stats.RejectionsByKind[kind])
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "Rejected Tokens:")
		for _, tok := range sortedKeys(stats.RejectedTokens) {
			fmt.Fprintf(w, "  %-16s %d\n", fmt.Sprintf("%q:", tok), stats.RejectedTokens[tok])
		}
		fmt.Fprintln(w)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
