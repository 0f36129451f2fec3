package commands

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/resconfig/resconfig-go/pkg/log"
)

func newLogExportCmd() *cobra.Command {
	var (
		ff     filterFlags
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export <file" + log.FileExtension + ">",
		Short: "Export a trace file to JSONL or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := ff.build()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				w = f
			}
			return RunExport(args[0], format, filter, w)
		},
	}
	ff.register(cmd)
	cmd.Flags().StringVar(&format, "format", "jsonl", "output format (jsonl, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

// RunExport writes matching events of a trace file to w.
func RunExport(path, format string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unsupported format: %s (must be jsonl or csv)", format)
	}
}

// jsonEvent is the JSON form of an event with enums spelled out.
type jsonEvent struct {
	Timestamp  string               `json:"timestamp"`
	SessionID  string               `json:"session_id"`
	Category   string               `json:"category"`
	Source     string               `json:"source"`
	APILevel   int                  `json:"api_level"`
	Input      string               `json:"input"`
	Base       string               `json:"base,omitempty"`
	Profile    string               `json:"profile,omitempty"`
	Resolution *log.ResolutionEvent `json:"resolution,omitempty"`
	Rejection  *log.RejectionEvent  `json:"rejection,omitempty"`
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	enc := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		je := jsonEvent{
			Timestamp:  event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			SessionID:  event.SessionID,
			Category:   event.Category.String(),
			Source:     event.Source.String(),
			APILevel:   int(event.APILevel),
			Input:      event.Input,
			Base:       event.Base,
			Profile:    event.Profile,
			Resolution: event.Resolution,
			Rejection:  event.Rejection,
		}
		if err := enc.Encode(je); err != nil {
			return fmt.Errorf("failed to write event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "category", "source", "api_level", "input", "base", "profile", "canonical", "error_kind", "token"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		var canonical, kind, token string
		if event.Resolution != nil {
			canonical = event.Resolution.Canonical
		}
		if event.Rejection != nil {
			kind = event.Rejection.Kind
			token = event.Rejection.Token
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.SessionID,
			event.Category.String(),
			event.Source.String(),
			strconv.Itoa(int(event.APILevel)),
			event.Input,
			event.Base,
			event.Profile,
			canonical,
			kind,
			token,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
