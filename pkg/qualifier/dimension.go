package qualifier

// Dimension is one axis of device configuration. The declaration order is
// the canonical serialization order.
type Dimension uint8

const (
	DimensionMCC Dimension = iota
	DimensionMNC
	DimensionLocale
	DimensionLayoutDirection
	DimensionSmallestWidth
	DimensionWidth
	DimensionHeight
	DimensionScreenSize
	DimensionScreenLong
	DimensionScreenRound
	DimensionOrientation
	DimensionUIModeType
	DimensionUIModeNight
	DimensionDensity
	DimensionTouchscreen
	DimensionKeyboardHidden
	DimensionKeyboard
	DimensionNavigationHidden
	DimensionNavigation
	DimensionVersion

	numDimensions
)

var dimensionNames = [numDimensions]string{
	DimensionMCC:              "mcc",
	DimensionMNC:              "mnc",
	DimensionLocale:           "locale",
	DimensionLayoutDirection:  "layout-direction",
	DimensionSmallestWidth:    "smallest-width",
	DimensionWidth:            "width",
	DimensionHeight:           "height",
	DimensionScreenSize:       "screen-size",
	DimensionScreenLong:       "screen-long",
	DimensionScreenRound:      "screen-round",
	DimensionOrientation:      "orientation",
	DimensionUIModeType:       "ui-mode-type",
	DimensionUIModeNight:      "ui-mode-night",
	DimensionDensity:          "density",
	DimensionTouchscreen:      "touchscreen",
	DimensionKeyboardHidden:   "keyboard-hidden",
	DimensionKeyboard:         "keyboard",
	DimensionNavigationHidden: "navigation-hidden",
	DimensionNavigation:       "navigation",
	DimensionVersion:          "version",
}

// String returns the dimension name.
func (d Dimension) String() string {
	if d < numDimensions {
		return dimensionNames[d]
	}
	return "unknown"
}

// Dimensions returns the configurable dimensions in canonical order.
// The version dimension is not included: it is never user-supplied.
func Dimensions() []Dimension {
	out := make([]Dimension, 0, DimensionVersion)
	for d := DimensionMCC; d < DimensionVersion; d++ {
		out = append(out, d)
	}
	return out
}
