package config

import (
	"testing"

	"github.com/resconfig/resconfig-go/pkg/locale"
	"github.com/stretchr/testify/assert"
)

func TestScreenLayout_MasksDoNotOverlap(t *testing.T) {
	masks := []int{
		ScreenLayoutSizeMask,
		ScreenLayoutLongMask,
		ScreenLayoutDirectionMask,
		ScreenLayoutRoundMask,
	}
	for i := range masks {
		for j := i + 1; j < len(masks); j++ {
			assert.Zero(t, masks[i]&masks[j], "masks %#x and %#x overlap", masks[i], masks[j])
		}
	}
	assert.Zero(t, UIModeTypeMask&UIModeNightMask)
}

func TestScreenLayout_Packs(t *testing.T) {
	cfg := Configuration{
		ScreenSize:      ScreenSizeXLarge,
		ScreenLong:      ScreenLongYes,
		LayoutDirection: LayoutDirectionRTL,
		ScreenRound:     ScreenRoundYes,
	}

	layout := cfg.ScreenLayout()
	assert.Equal(t, int(ScreenSizeXLarge), layout&ScreenLayoutSizeMask)
	assert.Equal(t, int(ScreenLongYes), layout&ScreenLayoutLongMask)
	assert.Equal(t, int(LayoutDirectionRTL), layout&ScreenLayoutDirectionMask)
	assert.Equal(t, int(ScreenRoundYes), layout&ScreenLayoutRoundMask)
	assert.Equal(t, 0x2a4, layout)
}

func TestScreenLayout_Undefined(t *testing.T) {
	assert.Zero(t, Configuration{}.ScreenLayout())
	assert.Zero(t, Configuration{}.UIMode())
}

func TestUIMode_Packs(t *testing.T) {
	cfg := Configuration{UIModeType: UIModeTypeAppliance, UIModeNight: UIModeNightYes}
	assert.Equal(t, int(UIModeTypeAppliance), cfg.UIMode()&UIModeTypeMask)
	assert.Equal(t, int(UIModeNightYes), cfg.UIMode()&UIModeNightMask)
}

func TestConfiguration_Equal(t *testing.T) {
	a := Configuration{MCC: 310, Locale: &locale.Locale{Language: "fr", Region: "FR"}}
	b := Configuration{MCC: 310, Locale: &locale.Locale{Language: "fr", Region: "FR"}}
	assert.True(t, a.Equal(b))

	b.Locale = &locale.Locale{Language: "fr"}
	assert.False(t, a.Equal(b))

	b.Locale = nil
	assert.False(t, a.Equal(b))

	a.Locale = nil
	assert.True(t, a.Equal(b))

	b.MNC = 4
	assert.False(t, a.Equal(b))
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "LTR", LayoutDirectionLTR.String())
	assert.Equal(t, "XLARGE", ScreenSizeXLarge.String())
	assert.Equal(t, "LANDSCAPE", OrientationLandscape.String())
	assert.Equal(t, "VR_HEADSET", UIModeTypeVRHeadset.String())
	assert.Equal(t, "12KEY", KeyboardTwelveKey.String())
	assert.Equal(t, "UNKNOWN", Navigation(42).String())
}

func TestEnumQualifiers(t *testing.T) {
	assert.Equal(t, "ldrtl", LayoutDirectionRTL.Qualifier())
	assert.Equal(t, "notlong", ScreenLongNo.Qualifier())
	assert.Equal(t, "round", ScreenRoundYes.Qualifier())
	assert.Equal(t, "appliance", UIModeTypeAppliance.Qualifier())
	assert.Equal(t, "", UIModeTypeNormal.Qualifier())
	assert.Equal(t, "keyssoft", KeyboardHiddenSoft.Qualifier())
	assert.Equal(t, "navhidden", NavigationHiddenYes.Qualifier())
	assert.Equal(t, "", OrientationUndefined.Qualifier())
}

func TestDensityQualifier(t *testing.T) {
	assert.Equal(t, "hdpi", DensityQualifier(240))
	assert.Equal(t, "tvdpi", DensityQualifier(213))
	assert.Equal(t, "420dpi", DensityQualifier(420))

	dpi, ok := DensityByName("xxhdpi")
	assert.True(t, ok)
	assert.Equal(t, 480, dpi)

	_, ok = DensityByName("420dpi")
	assert.False(t, ok)
}

func TestDisplayMetrics(t *testing.T) {
	m := NewDisplayMetrics(240)
	assert.Equal(t, float32(1.5), m.Density)
	assert.Equal(t, 240, m.DensityDpi)
	assert.Equal(t, float32(1.5), m.ScaledDensity)
	assert.Equal(t, float32(240), m.XDpi)
	assert.False(t, m.IsZero())
	assert.Equal(t, m, m.WithDefaults())

	var zero DisplayMetrics
	assert.True(t, zero.IsZero())
	def := zero.WithDefaults()
	assert.Equal(t, float32(1), def.Density)
	assert.Equal(t, DensityDefault, def.DensityDpi)
}
