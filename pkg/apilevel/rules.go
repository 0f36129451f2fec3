package apilevel

// Rule identifies a resolution behavior that changed at a platform release.
type Rule uint8

const (
	// RuleLocaleLayoutDirection forces layout direction to follow the
	// locale, overriding an explicit ldltr/ldrtl qualifier.
	RuleLocaleLayoutDirection Rule = iota

	// RuleConfigurationDensity reports the requested density in the
	// configuration record. Below the threshold only the display metrics
	// carry it.
	RuleConfigurationDensity
)

// thresholds holds the last level at which each rule is still off.
var thresholds = map[Rule]Level{
	RuleLocaleLayoutDirection: JellyBean,
	RuleConfigurationDensity:  JellyBean,
}

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case RuleLocaleLayoutDirection:
		return "LOCALE_LAYOUT_DIRECTION"
	case RuleConfigurationDensity:
		return "CONFIGURATION_DENSITY"
	default:
		return "UNKNOWN"
	}
}

// Threshold returns the last level at which the rule does not apply.
func (r Rule) Threshold() Level {
	return thresholds[r]
}

// Enables returns true if the rule applies at this level.
func (l Level) Enables(r Rule) bool {
	t, ok := thresholds[r]
	if !ok {
		return false
	}
	return l > t
}
