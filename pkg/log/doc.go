// Package log records qualifier resolution events.
//
// Every call through a qualifier.Parser produces one Event: a resolution
// carrying the canonical string and the resolved record, or a rejection
// carrying the error classification. It is separate from operational
// logging (slog) - the resolution trace is a machine-readable record of
// which device configurations a test run actually used.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	p := qualifier.NewParser(log.NewSlogAdapter(slog.Default()))
//
//	// For CI: write to a binary trace file
//	fl, _ := log.NewFileLogger("/tmp/run.qlog")
//	p := qualifier.NewParser(fl)
//
//	// Both
//	p := qualifier.NewParser(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fl,
//	))
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with the .qlog extension.
// The qualifiers CLI reads them with "qualifiers log view" and
// "qualifiers log stats".
package log
