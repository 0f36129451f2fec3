package qualifier

import (
	"errors"
	"fmt"
)

// Qualifier errors. An *Error unwraps to one of these.
var (
	ErrUnrecognizedQualifier = errors.New("unrecognized qualifier")
	ErrIllegalVersion        = errors.New("cannot specify platform version")
	ErrConflictingQualifier  = errors.New("conflicting qualifiers")
)

// ErrInvalidLevel is returned when a request names an API level below
// apilevel.Base.
var ErrInvalidLevel = errors.New("invalid API level")

// Kind classifies a qualifier error.
type Kind uint8

const (
	// KindUnrecognized is a token that matches no dimension grammar.
	KindUnrecognized Kind = iota + 1

	// KindIllegalVersion is an explicit platform version token.
	KindIllegalVersion

	// KindConflict is a second token for a dimension that is already set.
	KindConflict
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUnrecognized:
		return "UNRECOGNIZED"
	case KindIllegalVersion:
		return "ILLEGAL_VERSION"
	case KindConflict:
		return "CONFLICT"
	default:
		return "UNKNOWN"
	}
}

// Error describes why a qualifier string was rejected.
type Error struct {
	Kind Kind

	// Input is the full qualifier string being parsed.
	Input string

	// Token is the offending fragment.
	Token string

	// Previous is the token that already set the dimension (conflicts only).
	Previous string

	// Dimension is the dimension involved (conflicts and versions only).
	Dimension Dimension

	// Detail is an optional explanation appended to the message.
	Detail string
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindIllegalVersion:
		msg = fmt.Sprintf("%v %q in %q: the platform version is taken from the running environment",
			ErrIllegalVersion, e.Token, e.Input)
	case KindConflict:
		msg = fmt.Sprintf("%v for %s: %q and %q in %q",
			ErrConflictingQualifier, e.Dimension, e.Previous, e.Token, e.Input)
	default:
		msg = fmt.Sprintf("%v %q in %q", ErrUnrecognizedQualifier, e.Token, e.Input)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the sentinel error for the kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindIllegalVersion:
		return ErrIllegalVersion
	case KindConflict:
		return ErrConflictingQualifier
	default:
		return ErrUnrecognizedQualifier
	}
}

// KindOf returns the kind of a qualifier error, or 0 if err is not one.
func KindOf(err error) Kind {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return 0
}
