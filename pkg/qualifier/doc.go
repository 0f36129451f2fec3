// Package qualifier parses device-configuration qualifier strings.
//
// A qualifier string is a hyphen-separated list of tokens, each setting one
// configuration dimension:
//
//	mcc310-mnc4-fr-rFR-ldltr-sw400dp-w480dp-h456dp-xlarge-long-round-land-appliance-night-hdpi-notouch-keyshidden-12key-navhidden-dpad
//
// Tokens may appear in any order. Each dimension may be set at most once.
// The locale dimension spans two tokens when a language ("fr") is directly
// followed by a region ("rFR").
//
// # Dimensions
//
// In canonical order:
//
//	mcc               mcc310             3 digits, non-zero
//	mnc               mnc004             1-3 digits, non-zero
//	locale            fr, fr-rFR         ISO 639 language, ISO 3166 region
//	layout-direction  ldltr, ldrtl
//	smallest-width    sw400dp
//	width             w480dp
//	height            h456dp
//	screen-size       small, normal, large, xlarge
//	screen-long       long, notlong
//	screen-round      round, notround
//	orientation       port, land
//	ui-mode-type      desk, car, television, appliance, watch, vrheadset
//	ui-mode-night     night, notnight
//	density           ldpi ... xxxhdpi, or <N>dpi
//	touchscreen       notouch, stylus, finger
//	keyboard-hidden   keysexposed, keyshidden, keyssoft
//	keyboard          nokeys, qwerty, 12key
//	navigation-hidden navexposed, navhidden
//	navigation        nonav, dpad, trackball, wheel
//
// The platform version token (v<N>) is never accepted: the version is
// supplied by the caller and appended to the canonical form.
//
// # Resolution
//
// Tokenize produces raw assignments, Resolve applies the API-level rules
// from package apilevel, and Canonicalize renders the resolved record:
//
//	res, err := qualifier.Parse("fr-rFR-land-hdpi", apilevel.P)
//	// res.Canonical == "fr-rFR-ldltr-sw320dp-w320dp-land-hdpi-v28"
//
// A Parser additionally reports each resolution to a log.Logger.
package qualifier
