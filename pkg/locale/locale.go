// Package locale models the language/region pair carried by a resource
// qualifier and derives its text direction.
package locale

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// RegionPrefix introduces the region segment of a locale qualifier ("rFR").
const RegionPrefix = "r"

// Locale errors.
var (
	ErrInvalidLanguage = errors.New("invalid language code")
	ErrInvalidRegion   = errors.New("invalid region code")
)

// rtlScripts lists the scripts whose locales lay out right-to-left.
var rtlScripts = map[string]bool{
	"Arab": true,
	"Hebr": true,
	"Syrc": true,
	"Thaa": true,
	"Nkoo": true,
	"Adlm": true,
}

// Locale is a language with an optional region.
type Locale struct {
	// Language is the lower-case ISO 639 code as written ("fr").
	Language string `cbor:"1,keyasint" json:"language" yaml:"language"`

	// Region is the upper-case ISO 3166 code, empty if unspecified ("FR").
	Region string `cbor:"2,keyasint,omitempty" json:"region,omitempty" yaml:"region,omitempty"`
}

// New validates and returns a locale. Region may be empty.
func New(lang, region string) (Locale, error) {
	if !IsLanguageCode(lang) {
		return Locale{}, fmt.Errorf("%w: %q", ErrInvalidLanguage, lang)
	}
	if region != "" && !IsRegionCode(region) {
		return Locale{}, fmt.Errorf("%w: %q", ErrInvalidRegion, region)
	}
	return Locale{Language: lang, Region: region}, nil
}

// IsLanguageCode returns true if s is a lower-case 2 or 3 letter code known
// to the ISO 639 registry.
func IsLanguageCode(s string) bool {
	if len(s) < 2 || len(s) > 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	_, err := language.ParseBase(s)
	return err == nil
}

// IsRegionCode returns true if s is an upper-case 2 letter ISO 3166 code.
func IsRegionCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	_, err := language.ParseRegion(s)
	return err == nil
}

// ParseRegionQualifier extracts the region from an "rXX" qualifier token.
func ParseRegionQualifier(tok string) (string, bool) {
	if len(tok) != len(RegionPrefix)+2 || tok[:len(RegionPrefix)] != RegionPrefix {
		return "", false
	}
	region := tok[len(RegionPrefix):]
	if !IsRegionCode(region) {
		return "", false
	}
	return region, true
}

// Qualifier returns the qualifier form, "fr" or "fr-rFR".
func (l Locale) Qualifier() string {
	if l.Region == "" {
		return l.Language
	}
	return l.Language + "-" + RegionPrefix + l.Region
}

// String returns the conventional display form, "fr" or "fr_FR".
func (l Locale) String() string {
	if l.Region == "" {
		return l.Language
	}
	return l.Language + "_" + l.Region
}

// Tag returns the BCP 47 tag for the locale.
func (l Locale) Tag() language.Tag {
	base, err := language.ParseBase(l.Language)
	if err != nil {
		return language.Und
	}
	if l.Region == "" {
		tag, _ := language.Compose(base)
		return tag
	}
	region, err := language.ParseRegion(l.Region)
	if err != nil {
		tag, _ := language.Compose(base)
		return tag
	}
	tag, _ := language.Compose(base, region)
	return tag
}

// IsRTL returns true if the locale's likely script is written right-to-left.
func (l Locale) IsRTL() bool {
	script, _ := l.Tag().Script()
	return rtlScripts[script.String()]
}
