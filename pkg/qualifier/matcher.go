package qualifier

import (
	"regexp"
	"strconv"

	"github.com/resconfig/resconfig-go/pkg/config"
	"github.com/resconfig/resconfig-go/pkg/locale"
)

const (
	maxDp  = 0xffff
	maxDpi = 0xfffd
)

var (
	mccPattern           = regexp.MustCompile(`^mcc(\d{3})$`)
	mncPattern           = regexp.MustCompile(`^mnc(\d{1,3})$`)
	smallestWidthPattern = regexp.MustCompile(`^sw(\d{1,5})dp$`)
	widthPattern         = regexp.MustCompile(`^w(\d{1,5})dp$`)
	heightPattern        = regexp.MustCompile(`^h(\d{1,5})dp$`)
	dpiPattern           = regexp.MustCompile(`^(\d{1,5})dpi$`)
)

// match is the outcome of a successful recognizer.
type match struct {
	value    int
	locale   locale.Locale
	consumed int
}

// recognizer claims one or more tokens starting at toks[i] for a dimension.
type recognizer struct {
	dim   Dimension
	match func(toks []string, i int) (match, bool)
}

// recognizers in trial order. Keyword tables come before the locale
// recognizer so that "car" is a ui mode and never a language.
var recognizers = []recognizer{
	{DimensionMCC, single(number(mccPattern, 999))},
	{DimensionMNC, single(number(mncPattern, 999))},
	{DimensionLayoutDirection, single(keyword(config.LayoutDirectionLTR, config.LayoutDirectionRTL))},
	{DimensionSmallestWidth, single(number(smallestWidthPattern, maxDp))},
	{DimensionWidth, single(number(widthPattern, maxDp))},
	{DimensionHeight, single(number(heightPattern, maxDp))},
	{DimensionScreenSize, single(keyword(config.ScreenSizeSmall, config.ScreenSizeNormal, config.ScreenSizeLarge, config.ScreenSizeXLarge))},
	{DimensionScreenLong, single(keyword(config.ScreenLongNo, config.ScreenLongYes))},
	{DimensionScreenRound, single(keyword(config.ScreenRoundNo, config.ScreenRoundYes))},
	{DimensionOrientation, single(keyword(config.OrientationPortrait, config.OrientationLandscape))},
	{DimensionUIModeType, single(keyword(
		config.UIModeTypeDesk,
		config.UIModeTypeCar,
		config.UIModeTypeTelevision,
		config.UIModeTypeAppliance,
		config.UIModeTypeWatch,
		config.UIModeTypeVRHeadset,
	))},
	{DimensionUIModeNight, single(keyword(config.UIModeNightNo, config.UIModeNightYes))},
	{DimensionTouchscreen, single(keyword(config.TouchscreenNoTouch, config.TouchscreenStylus, config.TouchscreenFinger))},
	{DimensionKeyboardHidden, single(keyword(config.KeyboardHiddenNo, config.KeyboardHiddenYes, config.KeyboardHiddenSoft))},
	{DimensionKeyboard, single(keyword(config.KeyboardNoKeys, config.KeyboardQwerty, config.KeyboardTwelveKey))},
	{DimensionNavigationHidden, single(keyword(config.NavigationHiddenNo, config.NavigationHiddenYes))},
	{DimensionNavigation, single(keyword(config.NavigationNoNav, config.NavigationDpad, config.NavigationTrackball, config.NavigationWheel))},
	{DimensionLocale, matchLocale},
	{DimensionDensity, single(matchDensity)},
}

// single adapts a one-token matcher.
func single(f func(tok string) (int, bool)) func([]string, int) (match, bool) {
	return func(toks []string, i int) (match, bool) {
		v, ok := f(toks[i])
		if !ok {
			return match{}, false
		}
		return match{value: v, consumed: 1}, true
	}
}

// number matches a pattern whose first group is a value in 1..max.
func number(re *regexp.Regexp, max int) func(string) (int, bool) {
	return func(tok string) (int, bool) {
		m := re.FindStringSubmatch(tok)
		if m == nil {
			return 0, false
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > max {
			return 0, false
		}
		return n, true
	}
}

type qualifierValue interface {
	~uint16
	Qualifier() string
}

// keyword builds a lookup from each value's qualifier token.
func keyword[T qualifierValue](values ...T) func(string) (int, bool) {
	table := make(map[string]int, len(values))
	for _, v := range values {
		table[v.Qualifier()] = int(v)
	}
	return func(tok string) (int, bool) {
		v, ok := table[tok]
		return v, ok
	}
}

func matchDensity(tok string) (int, bool) {
	if dpi, ok := config.DensityByName(tok); ok {
		return dpi, true
	}
	return number(dpiPattern, maxDpi)(tok)
}

// matchLocale claims a language token and, if present, the region token
// immediately after it.
func matchLocale(toks []string, i int) (match, bool) {
	if !locale.IsLanguageCode(toks[i]) {
		return match{}, false
	}
	m := match{locale: locale.Locale{Language: toks[i]}, consumed: 1}
	if i+1 < len(toks) {
		if region, ok := locale.ParseRegionQualifier(toks[i+1]); ok {
			m.locale.Region = region
			m.consumed = 2
		}
	}
	return m, true
}
