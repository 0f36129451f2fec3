package qualifier

import (
	"strings"

	"github.com/resconfig/resconfig-go/pkg/apilevel"
	"github.com/resconfig/resconfig-go/pkg/locale"
)

// Separator delimits qualifier tokens.
const Separator = "-"

// Tokenize splits a qualifier string and assigns every token to exactly one
// dimension. The empty string yields no assignments.
func Tokenize(s string) (*Qualifiers, error) {
	q := &Qualifiers{}
	if s == "" {
		return q, nil
	}
	toks := strings.Split(s, Separator)

	for _, tok := range toks {
		if apilevel.IsToken(tok) {
			return nil, &Error{Kind: KindIllegalVersion, Dimension: DimensionVersion, Token: tok, Input: s}
		}
	}

	for i := 0; i < len(toks); {
		n, err := assignNext(q, toks, i)
		if err != nil {
			err.Input = s
			return nil, err
		}
		i += n
	}
	return q, nil
}

func assignNext(q *Qualifiers, toks []string, i int) (int, *Error) {
	for _, r := range recognizers {
		m, ok := r.match(toks, i)
		if !ok {
			continue
		}
		tok := strings.Join(toks[i:i+m.consumed], Separator)
		var err *Error
		if r.dim == DimensionLocale {
			err = q.assignLocale(m.locale, tok)
		} else {
			err = q.assign(r.dim, m.value, tok)
		}
		if err != nil {
			return 0, err
		}
		return m.consumed, nil
	}

	err := &Error{Kind: KindUnrecognized, Token: toks[i]}
	switch {
	case toks[i] == "":
		err.Detail = "empty qualifier"
	case isRegionToken(toks[i]):
		err.Detail = "region must directly follow a language"
	}
	return 0, err
}

func isRegionToken(tok string) bool {
	_, ok := locale.ParseRegionQualifier(tok)
	return ok
}
