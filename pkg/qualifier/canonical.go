package qualifier

import (
	"fmt"
	"strings"

	"github.com/resconfig/resconfig-go/pkg/apilevel"
	"github.com/resconfig/resconfig-go/pkg/config"
)

// Canonicalize renders a configuration as a qualifier string in canonical
// dimension order, followed by the version token for level. Undefined
// values are omitted.
func Canonicalize(cfg config.Configuration, metrics config.DisplayMetrics, level apilevel.Level) string {
	parts := make([]string, 0, numDimensions)
	add := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}
	addf := func(format string, n int) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf(format, n))
		}
	}

	addf("mcc%03d", cfg.MCC)
	addf("mnc%d", cfg.MNC)
	if cfg.Locale != nil {
		add(cfg.Locale.Qualifier())
	}
	add(cfg.LayoutDirection.Qualifier())
	addf("sw%ddp", cfg.SmallestScreenWidthDp)
	addf("w%ddp", cfg.ScreenWidthDp)
	addf("h%ddp", cfg.ScreenHeightDp)
	add(cfg.ScreenSize.Qualifier())
	add(cfg.ScreenLong.Qualifier())
	add(cfg.ScreenRound.Qualifier())
	add(cfg.Orientation.Qualifier())
	add(cfg.UIModeType.Qualifier())
	add(cfg.UIModeNight.Qualifier())

	dpi := cfg.DensityDpi
	if dpi == 0 {
		dpi = metrics.DensityDpi
	}
	if dpi > 0 {
		add(config.DensityQualifier(dpi))
	}

	add(cfg.Touchscreen.Qualifier())
	add(cfg.KeyboardHidden.Qualifier())
	add(cfg.Keyboard.Qualifier())
	add(cfg.NavigationHidden.Qualifier())
	add(cfg.Navigation.Qualifier())

	parts = append(parts, level.Token())
	return strings.Join(parts, Separator)
}
