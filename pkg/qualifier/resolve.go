package qualifier

import (
	"github.com/resconfig/resconfig-go/pkg/apilevel"
	"github.com/resconfig/resconfig-go/pkg/config"
)

// DefaultScreenWidthDp is applied to both the smallest and the current
// screen width when neither is given.
const DefaultScreenWidthDp = 320

// Resolve applies the API-level rules to a set of assignments and returns
// the configuration record and display metrics. It never fails.
func Resolve(q *Qualifiers, level apilevel.Level) (config.Configuration, config.DisplayMetrics) {
	cfg := config.Configuration{
		MCC:                   q.Value(DimensionMCC),
		MNC:                   q.Value(DimensionMNC),
		LayoutDirection:       config.LayoutDirection(q.Value(DimensionLayoutDirection)),
		SmallestScreenWidthDp: q.Value(DimensionSmallestWidth),
		ScreenWidthDp:         q.Value(DimensionWidth),
		ScreenHeightDp:        q.Value(DimensionHeight),
		ScreenSize:            config.ScreenSize(q.Value(DimensionScreenSize)),
		ScreenLong:            config.ScreenLong(q.Value(DimensionScreenLong)),
		ScreenRound:           config.ScreenRound(q.Value(DimensionScreenRound)),
		Orientation:           config.Orientation(q.Value(DimensionOrientation)),
		UIModeType:            config.UIModeType(q.Value(DimensionUIModeType)),
		UIModeNight:           config.UIModeNight(q.Value(DimensionUIModeNight)),
		Touchscreen:           config.Touchscreen(q.Value(DimensionTouchscreen)),
		KeyboardHidden:        config.KeyboardHidden(q.Value(DimensionKeyboardHidden)),
		Keyboard:              config.Keyboard(q.Value(DimensionKeyboard)),
		NavigationHidden:      config.NavigationHidden(q.Value(DimensionNavigationHidden)),
		Navigation:            config.Navigation(q.Value(DimensionNavigation)),
	}

	if !q.Has(DimensionSmallestWidth) && !q.Has(DimensionWidth) {
		cfg.SmallestScreenWidthDp = DefaultScreenWidthDp
		cfg.ScreenWidthDp = DefaultScreenWidthDp
	}

	if loc, ok := q.Locale(); ok {
		cfg.Locale = &loc
		if level.Enables(apilevel.RuleLocaleLayoutDirection) {
			cfg.LayoutDirection = config.LayoutDirectionLTR
			if loc.IsRTL() {
				cfg.LayoutDirection = config.LayoutDirectionRTL
			}
		}
	}

	var metrics config.DisplayMetrics
	if q.Has(DimensionDensity) {
		dpi := q.Value(DimensionDensity)
		metrics = config.NewDisplayMetrics(dpi)
		if level.Enables(apilevel.RuleConfigurationDensity) {
			cfg.DensityDpi = dpi
		}
	}

	return cfg, metrics
}
