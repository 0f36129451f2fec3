package config

import (
	"github.com/resconfig/resconfig-go/pkg/locale"
)

// Configuration is a resolved device configuration. Every field holds its
// Undefined sentinel (or zero) unless a qualifier or a resolution default
// set it.
type Configuration struct {
	// MCC is the mobile country code, 0 if unspecified.
	MCC int `cbor:"1,keyasint,omitempty" json:"mcc,omitempty" yaml:"mcc,omitempty"`

	// MNC is the mobile network code, 0 if unspecified. Stored without
	// leading zeros: mnc004 resolves to 4.
	MNC int `cbor:"2,keyasint,omitempty" json:"mnc,omitempty" yaml:"mnc,omitempty"`

	// Locale is nil if unspecified.
	Locale *locale.Locale `cbor:"3,keyasint,omitempty" json:"locale,omitempty" yaml:"locale,omitempty"`

	LayoutDirection LayoutDirection `cbor:"4,keyasint,omitempty" json:"layoutDirection" yaml:"layoutDirection"`

	SmallestScreenWidthDp int `cbor:"5,keyasint,omitempty" json:"smallestScreenWidthDp" yaml:"smallestScreenWidthDp"`
	ScreenWidthDp         int `cbor:"6,keyasint,omitempty" json:"screenWidthDp" yaml:"screenWidthDp"`
	ScreenHeightDp        int `cbor:"7,keyasint,omitempty" json:"screenHeightDp" yaml:"screenHeightDp"`

	ScreenSize  ScreenSize  `cbor:"8,keyasint,omitempty" json:"screenSize" yaml:"screenSize"`
	ScreenLong  ScreenLong  `cbor:"9,keyasint,omitempty" json:"screenLong" yaml:"screenLong"`
	ScreenRound ScreenRound `cbor:"10,keyasint,omitempty" json:"screenRound" yaml:"screenRound"`
	Orientation Orientation `cbor:"11,keyasint,omitempty" json:"orientation" yaml:"orientation"`
	UIModeType  UIModeType  `cbor:"12,keyasint,omitempty" json:"uiModeType" yaml:"uiModeType"`
	UIModeNight UIModeNight `cbor:"13,keyasint,omitempty" json:"uiModeNight" yaml:"uiModeNight"`

	// DensityDpi is 0 if unspecified, and also at API levels where the
	// configuration does not report density. DisplayMetrics always carries
	// the requested value.
	DensityDpi int `cbor:"14,keyasint,omitempty" json:"densityDpi" yaml:"densityDpi"`

	Touchscreen      Touchscreen      `cbor:"15,keyasint,omitempty" json:"touchscreen" yaml:"touchscreen"`
	KeyboardHidden   KeyboardHidden   `cbor:"16,keyasint,omitempty" json:"keyboardHidden" yaml:"keyboardHidden"`
	Keyboard         Keyboard         `cbor:"17,keyasint,omitempty" json:"keyboard" yaml:"keyboard"`
	NavigationHidden NavigationHidden `cbor:"18,keyasint,omitempty" json:"navigationHidden" yaml:"navigationHidden"`
	Navigation       Navigation       `cbor:"19,keyasint,omitempty" json:"navigation" yaml:"navigation"`
}

// ScreenLayout returns the packed screenLayout field: size, long, layout
// direction and round, each in its own mask.
func (c Configuration) ScreenLayout() int {
	return int(c.ScreenSize)&ScreenLayoutSizeMask |
		int(c.ScreenLong)&ScreenLayoutLongMask |
		int(c.LayoutDirection)&ScreenLayoutDirectionMask |
		int(c.ScreenRound)&ScreenLayoutRoundMask
}

// UIMode returns the packed uiMode field: type and night.
func (c Configuration) UIMode() int {
	return int(c.UIModeType)&UIModeTypeMask | int(c.UIModeNight)&UIModeNightMask
}

// Equal reports whether two configurations hold the same values.
func (c Configuration) Equal(other Configuration) bool {
	a, b := c, other
	la, lb := a.Locale, b.Locale
	a.Locale, b.Locale = nil, nil
	if a != b {
		return false
	}
	if la == nil || lb == nil {
		return la == nil && lb == nil
	}
	return *la == *lb
}
