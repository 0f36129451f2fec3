package qualifier

import (
	"strings"

	"github.com/resconfig/resconfig-go/pkg/locale"
)

// Qualifiers holds the raw dimension assignments found in a qualifier
// string, before any API-level resolution rules are applied.
type Qualifiers struct {
	values [numDimensions]int
	tokens [numDimensions]string
	locale locale.Locale
}

// Has returns true if the dimension was assigned.
func (q *Qualifiers) Has(d Dimension) bool {
	return d < numDimensions && q.tokens[d] != ""
}

// Value returns the numeric value assigned to a dimension, 0 if unset.
// The locale dimension has no numeric value; use Locale.
func (q *Qualifiers) Value(d Dimension) int {
	if d >= numDimensions {
		return 0
	}
	return q.values[d]
}

// Token returns the qualifier text that assigned the dimension.
func (q *Qualifiers) Token(d Dimension) string {
	if d >= numDimensions {
		return ""
	}
	return q.tokens[d]
}

// Locale returns the assigned locale.
func (q *Qualifiers) Locale() (locale.Locale, bool) {
	return q.locale, q.Has(DimensionLocale)
}

// Len returns the number of assigned dimensions.
func (q *Qualifiers) Len() int {
	n := 0
	for _, tok := range q.tokens {
		if tok != "" {
			n++
		}
	}
	return n
}

// String returns the assigned tokens in canonical dimension order.
func (q *Qualifiers) String() string {
	parts := make([]string, 0, numDimensions)
	for _, tok := range q.tokens {
		if tok != "" {
			parts = append(parts, tok)
		}
	}
	return strings.Join(parts, "-")
}

func (q *Qualifiers) assign(d Dimension, value int, tok string) *Error {
	if prev := q.tokens[d]; prev != "" {
		return &Error{Kind: KindConflict, Dimension: d, Previous: prev, Token: tok}
	}
	q.values[d] = value
	q.tokens[d] = tok
	return nil
}

func (q *Qualifiers) assignLocale(loc locale.Locale, tok string) *Error {
	if err := q.assign(DimensionLocale, 0, tok); err != nil {
		return err
	}
	q.locale = loc
	return nil
}

// Merge returns the assignments of base with every dimension assigned in
// overlay replaced by the overlay's value. Neither argument is modified.
func Merge(base, overlay *Qualifiers) *Qualifiers {
	out := &Qualifiers{}
	if base != nil {
		*out = *base
	}
	if overlay == nil {
		return out
	}
	for d := range numDimensions {
		if !overlay.Has(d) {
			continue
		}
		out.values[d] = overlay.values[d]
		out.tokens[d] = overlay.tokens[d]
		if d == DimensionLocale {
			out.locale = overlay.locale
		}
	}
	return out
}
