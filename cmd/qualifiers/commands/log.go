package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/resconfig/resconfig-go/pkg/apilevel"
	"github.com/resconfig/resconfig-go/pkg/log"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "View and analyze resolution trace files (" + log.FileExtension + ")",
	}
	cmd.AddCommand(newLogViewCmd(), newLogStatsCmd(), newLogExportCmd(), newLogFilterCmd())
	return cmd
}

// filterFlags are the event selection flags shared by the log commands.
type filterFlags struct {
	session   string
	category  string
	source    string
	api       string
	profile   string
	timeStart string
	timeEnd   string
}

func (ff *filterFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&ff.session, "session", "", "filter by session ID")
	fs.StringVar(&ff.category, "category", "", "filter by category (resolved, rejected)")
	fs.StringVar(&ff.source, "source", "", "filter by source (parse, overlay, profile)")
	fs.StringVar(&ff.api, "level", "", "filter by API level")
	fs.StringVar(&ff.profile, "profile", "", "filter by profile name")
	fs.StringVar(&ff.timeStart, "time-start", "", "filter by start time (RFC3339)")
	fs.StringVar(&ff.timeEnd, "time-end", "", "filter by end time (RFC3339)")
}

// build converts the flags to a log.Filter.
func (ff *filterFlags) build() (log.Filter, error) {
	filter := log.Filter{SessionID: ff.session, Profile: ff.profile}

	if ff.category != "" {
		c, err := ParseCategoryFlag(ff.category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}
	if ff.source != "" {
		s, err := ParseSourceFlag(ff.source)
		if err != nil {
			return filter, err
		}
		filter.Source = &s
	}
	if ff.api != "" {
		l, err := apilevel.Parse(ff.api)
		if err != nil {
			return filter, err
		}
		filter.APILevel = &l
	}
	if ff.timeStart != "" {
		t, err := time.Parse(time.RFC3339, ff.timeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if ff.timeEnd != "" {
		t, err := time.Parse(time.RFC3339, ff.timeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	return filter, nil
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "resolved":
		return log.CategoryResolved, nil
	case "rejected":
		return log.CategoryRejected, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be resolved or rejected)", s)
	}
}

// ParseSourceFlag parses a source string from command-line flag (case-insensitive).
func ParseSourceFlag(s string) (log.Source, error) {
	switch strings.ToLower(s) {
	case "parse":
		return log.SourceParse, nil
	case "overlay":
		return log.SourceOverlay, nil
	case "profile":
		return log.SourceProfile, nil
	default:
		return 0, fmt.Errorf("invalid source: %s (must be parse, overlay, or profile)", s)
	}
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}
