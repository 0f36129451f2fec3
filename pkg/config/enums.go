package config

// Enum values use the platform's numeric encoding so that the packed
// screenLayout and uiMode fields are plain ORs of disjoint masks.

// Packed field masks.
const (
	ScreenLayoutSizeMask      = 0x0f
	ScreenLayoutLongMask      = 0x30
	ScreenLayoutDirectionMask = 0xc0
	ScreenLayoutRoundMask     = 0x300

	UIModeTypeMask  = 0x0f
	UIModeNightMask = 0x30
)

// LayoutDirection is the text layout direction.
type LayoutDirection uint16

const (
	LayoutDirectionUndefined LayoutDirection = 0
	LayoutDirectionLTR       LayoutDirection = 0x40
	LayoutDirectionRTL       LayoutDirection = 0x80
)

// String returns the layout direction name.
func (d LayoutDirection) String() string {
	switch d {
	case LayoutDirectionUndefined:
		return "UNDEFINED"
	case LayoutDirectionLTR:
		return "LTR"
	case LayoutDirectionRTL:
		return "RTL"
	default:
		return "UNKNOWN"
	}
}

// Qualifier returns the qualifier token, empty if undefined.
func (d LayoutDirection) Qualifier() string {
	switch d {
	case LayoutDirectionLTR:
		return "ldltr"
	case LayoutDirectionRTL:
		return "ldrtl"
	default:
		return ""
	}
}

// ScreenSize is the coarse screen size bucket.
type ScreenSize uint16

const (
	ScreenSizeUndefined ScreenSize = 0
	ScreenSizeSmall     ScreenSize = 1
	ScreenSizeNormal    ScreenSize = 2
	ScreenSizeLarge     ScreenSize = 3
	ScreenSizeXLarge    ScreenSize = 4
)

// String returns the screen size name.
func (s ScreenSize) String() string {
	switch s {
	case ScreenSizeUndefined:
		return "UNDEFINED"
	case ScreenSizeSmall:
		return "SMALL"
	case ScreenSizeNormal:
		return "NORMAL"
	case ScreenSizeLarge:
		return "LARGE"
	case ScreenSizeXLarge:
		return "XLARGE"
	default:
		return "UNKNOWN"
	}
}

// Qualifier returns the qualifier token, empty if undefined.
func (s ScreenSize) Qualifier() string {
	switch s {
	case ScreenSizeSmall:
		return "small"
	case ScreenSizeNormal:
		return "normal"
	case ScreenSizeLarge:
		return "large"
	case ScreenSizeXLarge:
		return "xlarge"
	default:
		return ""
	}
}

// ScreenLong indicates a screen significantly taller or wider than usual.
type ScreenLong uint16

const (
	ScreenLongUndefined ScreenLong = 0
	ScreenLongNo        ScreenLong = 0x10
	ScreenLongYes       ScreenLong = 0x20
)

// String returns the screen long name.
func (s ScreenLong) String() string {
	switch s {
	case ScreenLongUndefined:
		return "UNDEFINED"
	case ScreenLongNo:
		return "NO"
	case ScreenLongYes:
		return "YES"
	default:
		return "UNKNOWN"
	}
}

// Qualifier returns the qualifier token, empty if undefined.
func (s ScreenLong) Qualifier() string {
	switch s {
	case ScreenLongNo:
		return "notlong"
	case ScreenLongYes:
		return "long"
	default:
		return ""
	}
}

// ScreenRound indicates a round screen.
type ScreenRound uint16

const (
	ScreenRoundUndefined ScreenRound = 0
	ScreenRoundNo        ScreenRound = 0x100
	ScreenRoundYes       ScreenRound = 0x200
)

// String returns the screen round name.
func (s ScreenRound) String() string {
	switch s {
	case ScreenRoundUndefined:
		return "UNDEFINED"
	case ScreenRoundNo:
		return "NO"
	case ScreenRoundYes:
		return "YES"
	default:
		return "UNKNOWN"
	}
}

// Qualifier returns the qualifier token, empty if undefined.
func (s ScreenRound) Qualifier() string {
	switch s {
	case ScreenRoundNo:
		return "notround"
	case ScreenRoundYes:
		return "round"
	default:
		return ""
	}
}

// Orientation is the screen orientation.
type Orientation uint16

const (
	OrientationUndefined Orientation = 0
	OrientationPortrait  Orientation = 1
	OrientationLandscape Orientation = 2
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientationUndefined:
		return "UNDEFINED"
	case OrientationPortrait:
		return "PORTRAIT"
	case OrientationLandscape:
		return "LANDSCAPE"
	default:
		return "UNKNOWN"
	}
}

// Qualifier returns the qualifier token, empty if undefined.
func (o Orientation) Qualifier() string {
	switch o {
	case OrientationPortrait:
		return "port"
	case OrientationLandscape:
		return "land"
	default:
		return ""
	}
}

// UIModeType is the device class the UI is running on.
type UIModeType uint16

const (
	UIModeTypeUndefined  UIModeType = 0
	UIModeTypeNormal     UIModeType = 1
	UIModeTypeDesk       UIModeType = 2
	UIModeTypeCar        UIModeType = 3
	UIModeTypeTelevision UIModeType = 4
	UIModeTypeAppliance  UIModeType = 5
	UIModeTypeWatch      UIModeType = 6
	UIModeTypeVRHeadset  UIModeType = 7
)

// String returns the UI mode type name.
func (t UIModeType) String() string {
	switch t {
	case UIModeTypeUndefined:
		return "UNDEFINED"
	case UIModeTypeNormal:
		return "NORMAL"
	case UIModeTypeDesk:
		return "DESK"
	case UIModeTypeCar:
		return "CAR"
	case UIModeTypeTelevision:
		return "TELEVISION"
	case UIModeTypeAppliance:
		return "APPLIANCE"
	case UIModeTypeWatch:
		return "WATCH"
	case UIModeTypeVRHeadset:
		return "VR_HEADSET"
	default:
		return "UNKNOWN"
	}
}

// Qualifier returns the qualifier token. Normal has no token.
func (t UIModeType) Qualifier() string {
	switch t {
	case UIModeTypeDesk:
		return "desk"
	case UIModeTypeCar:
		return "car"
	case UIModeTypeTelevision:
		return "television"
	case UIModeTypeAppliance:
		return "appliance"
	case UIModeTypeWatch:
		return "watch"
	case UIModeTypeVRHeadset:
		return "vrheadset"
	default:
		return ""
	}
}

// UIModeNight indicates night mode.
type UIModeNight uint16

const (
	UIModeNightUndefined UIModeNight = 0
	UIModeNightNo        UIModeNight = 0x10
	UIModeNightYes       UIModeNight = 0x20
)

// String returns the night mode name.
func (n UIModeNight) String() string {
	switch n {
	case UIModeNightUndefined:
		return "UNDEFINED"
	case UIModeNightNo:
		return "NO"
	case UIModeNightYes:
		return "YES"
	default:
		return "UNKNOWN"
	}
}

// Qualifier returns the qualifier token, empty if undefined.
func (n UIModeNight) Qualifier() string {
	switch n {
	case UIModeNightNo:
		return "notnight"
	case UIModeNightYes:
		return "night"
	default:
		return ""
	}
}

// Touchscreen is the kind of touch input available.
type Touchscreen uint16

const (
	TouchscreenUndefined Touchscreen = 0
	TouchscreenNoTouch   Touchscreen = 1
	TouchscreenStylus    Touchscreen = 2
	TouchscreenFinger    Touchscreen = 3
)

// String returns the touchscreen name.
func (t Touchscreen) String() string {
	switch t {
	case TouchscreenUndefined:
		return "UNDEFINED"
	case TouchscreenNoTouch:
		return "NOTOUCH"
	case TouchscreenStylus:
		return "STYLUS"
	case TouchscreenFinger:
		return "FINGER"
	default:
		return "UNKNOWN"
	}
}

// Qualifier returns the qualifier token, empty if undefined.
func (t Touchscreen) Qualifier() string {
	switch t {
	case TouchscreenNoTouch:
		return "notouch"
	case TouchscreenStylus:
		return "stylus"
	case TouchscreenFinger:
		return "finger"
	default:
		return ""
	}
}

// KeyboardHidden indicates whether a keyboard is available to the user.
type KeyboardHidden uint16

const (
	KeyboardHiddenUndefined KeyboardHidden = 0
	KeyboardHiddenNo        KeyboardHidden = 1
	KeyboardHiddenYes       KeyboardHidden = 2
	KeyboardHiddenSoft      KeyboardHidden = 3
)

// String returns the keyboard hidden name.
func (k KeyboardHidden) String() string {
	switch k {
	case KeyboardHiddenUndefined:
		return "UNDEFINED"
	case KeyboardHiddenNo:
		return "NO"
	case KeyboardHiddenYes:
		return "YES"
	case KeyboardHiddenSoft:
		return "SOFT"
	default:
		return "UNKNOWN"
	}
}

// Qualifier returns the qualifier token, empty if undefined.
func (k KeyboardHidden) Qualifier() string {
	switch k {
	case KeyboardHiddenNo:
		return "keysexposed"
	case KeyboardHiddenYes:
		return "keyshidden"
	case KeyboardHiddenSoft:
		return "keyssoft"
	default:
		return ""
	}
}

// Keyboard is the kind of hardware keyboard.
type Keyboard uint16

const (
	KeyboardUndefined Keyboard = 0
	KeyboardNoKeys    Keyboard = 1
	KeyboardQwerty    Keyboard = 2
	KeyboardTwelveKey Keyboard = 3
)

// String returns the keyboard name.
func (k Keyboard) String() string {
	switch k {
	case KeyboardUndefined:
		return "UNDEFINED"
	case KeyboardNoKeys:
		return "NOKEYS"
	case KeyboardQwerty:
		return "QWERTY"
	case KeyboardTwelveKey:
		return "12KEY"
	default:
		return "UNKNOWN"
	}
}

// Qualifier returns the qualifier token, empty if undefined.
func (k Keyboard) Qualifier() string {
	switch k {
	case KeyboardNoKeys:
		return "nokeys"
	case KeyboardQwerty:
		return "qwerty"
	case KeyboardTwelveKey:
		return "12key"
	default:
		return ""
	}
}

// NavigationHidden indicates whether navigation keys are available.
type NavigationHidden uint16

const (
	NavigationHiddenUndefined NavigationHidden = 0
	NavigationHiddenNo        NavigationHidden = 1
	NavigationHiddenYes       NavigationHidden = 2
)

// String returns the navigation hidden name.
func (n NavigationHidden) String() string {
	switch n {
	case NavigationHiddenUndefined:
		return "UNDEFINED"
	case NavigationHiddenNo:
		return "NO"
	case NavigationHiddenYes:
		return "YES"
	default:
		return "UNKNOWN"
	}
}

// Qualifier returns the qualifier token, empty if undefined.
func (n NavigationHidden) Qualifier() string {
	switch n {
	case NavigationHiddenNo:
		return "navexposed"
	case NavigationHiddenYes:
		return "navhidden"
	default:
		return ""
	}
}

// Navigation is the kind of non-touch navigation input.
type Navigation uint16

const (
	NavigationUndefined Navigation = 0
	NavigationNoNav     Navigation = 1
	NavigationDpad      Navigation = 2
	NavigationTrackball Navigation = 3
	NavigationWheel     Navigation = 4
)

// String returns the navigation name.
func (n Navigation) String() string {
	switch n {
	case NavigationUndefined:
		return "UNDEFINED"
	case NavigationNoNav:
		return "NONAV"
	case NavigationDpad:
		return "DPAD"
	case NavigationTrackball:
		return "TRACKBALL"
	case NavigationWheel:
		return "WHEEL"
	default:
		return "UNKNOWN"
	}
}

// Qualifier returns the qualifier token, empty if undefined.
func (n Navigation) Qualifier() string {
	switch n {
	case NavigationNoNav:
		return "nonav"
	case NavigationDpad:
		return "dpad"
	case NavigationTrackball:
		return "trackball"
	case NavigationWheel:
		return "wheel"
	default:
		return ""
	}
}
