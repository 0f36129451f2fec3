package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/resconfig/resconfig-go/pkg/inspect"
	"github.com/resconfig/resconfig-go/pkg/log"
	"github.com/resconfig/resconfig-go/pkg/qualifier"
)

func newLogViewCmd() *cobra.Command {
	var ff filterFlags
	cmd := &cobra.Command{
		Use:   "view <file" + log.FileExtension + ">",
		Short: "View a trace file in human-readable format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := ff.build()
			if err != nil {
				return err
			}
			return RunView(args[0], filter, cmd.OutOrStdout())
		},
	}
	ff.register(cmd)
	return cmd
}

// RunView prints every matching event of a trace file.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	f := inspect.NewFormatter()
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, f, event)
	}
	return nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, f *inspect.Formatter, event log.Event) {
	// Header line: timestamp [session:id] CATEGORY SOURCE vN
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [session:%s] %s %s %s\n",
		ts, shortenSessionID(event.SessionID), event.Category, event.Source, event.APILevel.Token())

	if event.Profile != "" {
		fmt.Fprintf(w, "  Profile: %s\n", event.Profile)
	}
	if event.Base != "" {
		fmt.Fprintf(w, "  Base: %s\n", event.Base)
	}
	fmt.Fprintf(w, "  Input: %q\n", event.Input)

	switch {
	case event.Resolution != nil:
		r := event.Resolution
		fmt.Fprintf(w, "  Canonical: %s\n", r.Canonical)
		if r.Duration > 0 {
			fmt.Fprintf(w, "  Duration: %s\n", formatDuration(r.Duration))
		}
		res := &qualifier.Result{Config: r.Config, Metrics: r.Metrics, Canonical: r.Canonical, Level: event.APILevel}
		for _, field := range inspect.Fields(res) {
			if field.Set && field.Group == inspect.GroupConfiguration {
				fmt.Fprintln(w, f.Indent(2, f.FormatField(field)))
			}
		}
	case event.Rejection != nil:
		r := event.Rejection
		fmt.Fprintf(w, "  Kind: %s\n", r.Kind)
		if r.Dimension != "" {
			fmt.Fprintf(w, "  Dimension: %s\n", r.Dimension)
		}
		fmt.Fprintf(w, "  Token: %q\n", r.Token)
		fmt.Fprintf(w, "  Message: %s\n", r.Message)
	}

	fmt.Fprintln(w) // Blank line between events
}
