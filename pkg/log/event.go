package log

import (
	"time"

	"github.com/resconfig/resconfig-go/pkg/apilevel"
	"github.com/resconfig/resconfig-go/pkg/config"
)

// Event records one qualifier resolution attempt.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the attempt finished (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the parser that produced the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Category distinguishes resolutions from rejections.
	Category Category `cbor:"3,keyasint"`

	// Source names the entry point that was called.
	Source Source `cbor:"4,keyasint"`

	// APILevel is the platform level the qualifiers were resolved against.
	APILevel apilevel.Level `cbor:"5,keyasint"`

	// Input is the qualifier string as given.
	Input string `cbor:"6,keyasint"`

	// Base is the base qualifier string for overlays.
	Base string `cbor:"7,keyasint,omitempty"`

	// Profile is the device profile name, if resolved through one.
	Profile string `cbor:"8,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Resolution *ResolutionEvent `cbor:"9,keyasint,omitempty"`
	Rejection  *RejectionEvent  `cbor:"10,keyasint,omitempty"`
}

// Category classifies the event.
type Category uint8

const (
	// CategoryResolved indicates the qualifiers resolved to a configuration.
	CategoryResolved Category = 0
	// CategoryRejected indicates the qualifiers were rejected.
	CategoryRejected Category = 1
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryResolved:
		return "RESOLVED"
	case CategoryRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// Source indicates which entry point produced the event.
type Source uint8

const (
	// SourceParse is a plain qualifier string.
	SourceParse Source = 0
	// SourceOverlay is a qualifier string applied on top of a base.
	SourceOverlay Source = 1
	// SourceProfile is a named device profile.
	SourceProfile Source = 2
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceParse:
		return "PARSE"
	case SourceOverlay:
		return "OVERLAY"
	case SourceProfile:
		return "PROFILE"
	default:
		return "UNKNOWN"
	}
}

// ResolutionEvent captures a successful resolution.
type ResolutionEvent struct {
	// Canonical is the canonical qualifier string, version token included.
	Canonical string `cbor:"1,keyasint"`

	// Config is the resolved configuration record.
	Config config.Configuration `cbor:"2,keyasint"`

	// Metrics are the derived display metrics.
	Metrics config.DisplayMetrics `cbor:"3,keyasint"`

	// Duration is the time spent resolving. Stored as nanoseconds.
	Duration time.Duration `cbor:"4,keyasint,omitempty"`
}

// RejectionEvent captures a rejected qualifier string.
type RejectionEvent struct {
	// Kind is the error classification (e.g. "UNRECOGNIZED").
	Kind string `cbor:"1,keyasint"`

	// Token is the offending fragment.
	Token string `cbor:"2,keyasint,omitempty"`

	// Dimension is the dimension involved, if known.
	Dimension string `cbor:"3,keyasint,omitempty"`

	// Message is the full error message.
	Message string `cbor:"4,keyasint"`
}
