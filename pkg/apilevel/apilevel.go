// Package apilevel provides platform API level parsing, naming, and the
// thresholds at which configuration resolution rules change.
package apilevel

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is a platform API level (SDK_INT).
type Level int

const (
	Base         Level = 1
	Donut        Level = 4
	Eclair       Level = 5
	Froyo        Level = 8
	Gingerbread  Level = 9
	Honeycomb    Level = 11
	IceCream     Level = 14
	JellyBean    Level = 16
	JellyBeanMR1 Level = 17
	JellyBeanMR2 Level = 18
	KitKat       Level = 19
	Lollipop     Level = 21
	LollipopMR1  Level = 22
	M            Level = 23
	N            Level = 24
	NMR1         Level = 25
	O            Level = 26
	OMR1         Level = 27
	P            Level = 28
	Q            Level = 29
)

// Latest is the newest API level this library knows by name.
const Latest = Q

// TokenPrefix introduces the platform version segment of a qualifier string.
const TokenPrefix = "v"

var codenames = map[Level]string{
	Base:         "BASE",
	Donut:        "DONUT",
	Eclair:       "ECLAIR",
	Froyo:        "FROYO",
	Gingerbread:  "GINGERBREAD",
	Honeycomb:    "HONEYCOMB",
	IceCream:     "ICE_CREAM_SANDWICH",
	JellyBean:    "JELLY_BEAN",
	JellyBeanMR1: "JELLY_BEAN_MR1",
	JellyBeanMR2: "JELLY_BEAN_MR2",
	KitKat:       "KITKAT",
	Lollipop:     "LOLLIPOP",
	LollipopMR1:  "LOLLIPOP_MR1",
	M:            "M",
	N:            "N",
	NMR1:         "N_MR1",
	O:            "O",
	OMR1:         "O_MR1",
	P:            "P",
	Q:            "Q",
}

// aliases maps lower-case marketing names to levels, in addition to the
// lower-cased codenames.
var aliases = map[string]Level{
	"ics":              IceCream,
	"icecreamsandwich": IceCream,
	"jb":               JellyBean,
	"jellybean":        JellyBean,
	"kitkat":           KitKat,
	"lollipop":         Lollipop,
	"marshmallow":      M,
	"nougat":           N,
	"oreo":             O,
	"pie":              P,
}

// Parse parses an API level given as a number ("23"), a version token
// ("v23"), or a codename ("M", "jelly_bean", "marshmallow").
func Parse(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid API level %q: empty", s)
	}

	if IsToken(s) {
		l, ok := ParseToken(s)
		if !ok {
			return 0, fmt.Errorf("invalid API level %q: out of range", s)
		}
		if !l.Valid() {
			return 0, fmt.Errorf("invalid API level %q: must be at least %d", s, Base)
		}
		return l, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < int(Base) {
			return 0, fmt.Errorf("invalid API level %q: must be at least %d", s, Base)
		}
		return Level(n), nil
	}

	lower := strings.ToLower(s)
	if l, ok := aliases[lower]; ok {
		return l, nil
	}
	for l, name := range codenames {
		if strings.ToLower(name) == lower {
			return l, nil
		}
	}

	return 0, fmt.Errorf("invalid API level %q: unknown codename", s)
}

// IsToken reports whether s is shaped like a version token: "v" followed
// by one or more digits. The digits need not fit a Level.
func IsToken(s string) bool {
	if len(s) < 2 || !strings.HasPrefix(s, TokenPrefix) {
		return false
	}
	for _, c := range s[len(TokenPrefix):] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ParseToken parses a qualifier version token such as "v21".
// It reports false when s is not a version token or its number overflows.
func ParseToken(s string) (Level, bool) {
	if !IsToken(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s[len(TokenPrefix):])
	if err != nil {
		return 0, false
	}
	return Level(n), true
}

// String returns the level as a decimal number.
func (l Level) String() string {
	return strconv.Itoa(int(l))
}

// Token returns the qualifier version token, e.g. "v16".
func (l Level) Token() string {
	return TokenPrefix + l.String()
}

// Codename returns the platform codename, or "API_<n>" for levels
// without one.
func (l Level) Codename() string {
	if name, ok := codenames[l]; ok {
		return name
	}
	return fmt.Sprintf("API_%d", int(l))
}

// Valid returns true if the level is a usable platform API level.
func (l Level) Valid() bool {
	return l >= Base
}
