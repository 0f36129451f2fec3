package config

import "strconv"

// DensityDefault is the baseline density (mdpi) at which one dp is one pixel.
const DensityDefault = 160

// Density is a named density bucket.
type Density struct {
	Name string
	Dpi  int
}

// Densities lists the named density buckets, lowest first.
var Densities = []Density{
	{"ldpi", 120},
	{"mdpi", 160},
	{"tvdpi", 213},
	{"hdpi", 240},
	{"xhdpi", 320},
	{"xxhdpi", 480},
	{"xxxhdpi", 640},
}

// DensityByName returns the dpi of a named bucket.
func DensityByName(name string) (int, bool) {
	for _, d := range Densities {
		if d.Name == name {
			return d.Dpi, true
		}
	}
	return 0, false
}

// DensityQualifier returns the qualifier token for a dpi value: the bucket
// name when it matches a bucket exactly, otherwise "<dpi>dpi".
func DensityQualifier(dpi int) string {
	for _, d := range Densities {
		if d.Dpi == dpi {
			return d.Name
		}
	}
	return strconv.Itoa(dpi) + "dpi"
}

// DisplayMetrics holds the display values derived from the requested
// density. It is zero-valued when no density was requested.
type DisplayMetrics struct {
	// Density is the logical density scale factor (DensityDpi / 160).
	Density float32 `cbor:"1,keyasint" json:"density" yaml:"density"`

	// DensityDpi is the screen density in dots per inch.
	DensityDpi int `cbor:"2,keyasint" json:"densityDpi" yaml:"densityDpi"`

	// ScaledDensity is the font scale factor, equal to Density.
	ScaledDensity float32 `cbor:"3,keyasint" json:"scaledDensity" yaml:"scaledDensity"`

	XDpi float32 `cbor:"4,keyasint" json:"xdpi" yaml:"xdpi"`
	YDpi float32 `cbor:"5,keyasint" json:"ydpi" yaml:"ydpi"`
}

// NewDisplayMetrics returns the metrics for a screen of the given density.
func NewDisplayMetrics(dpi int) DisplayMetrics {
	density := float32(dpi) / DensityDefault
	return DisplayMetrics{
		Density:       density,
		DensityDpi:    dpi,
		ScaledDensity: density,
		XDpi:          float32(dpi),
		YDpi:          float32(dpi),
	}
}

// IsZero returns true if no density has been set.
func (m DisplayMetrics) IsZero() bool {
	return m.DensityDpi == 0
}

// WithDefaults returns m, or the platform default metrics if m is zero.
func (m DisplayMetrics) WithDefaults() DisplayMetrics {
	if m.IsZero() {
		return NewDisplayMetrics(DensityDefault)
	}
	return m
}
