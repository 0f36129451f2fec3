// Package inspect renders resolved qualifier results for display.
//
// A result is flattened into named fields:
//   - configuration fields ("orientation", "screenWidthDp", ...)
//   - packed fields ("screenLayout", "uiMode")
//   - display metrics ("metrics.density", ...)
//
// Field names are matched case-insensitively by Lookup.
package inspect

import (
	"fmt"
	"strings"

	"github.com/resconfig/resconfig-go/pkg/config"
	"github.com/resconfig/resconfig-go/pkg/qualifier"
)

// Group identifies the section a field belongs to.
type Group uint8

const (
	GroupConfiguration Group = iota
	GroupPacked
	GroupMetrics
)

// String returns the group heading.
func (g Group) String() string {
	switch g {
	case GroupConfiguration:
		return "configuration"
	case GroupPacked:
		return "packed"
	case GroupMetrics:
		return "metrics"
	default:
		return "unknown"
	}
}

// Field is one named value of a result.
type Field struct {
	Group Group
	Name  string

	// Value is the display form ("LANDSCAPE", "400", "fr_FR").
	Value string

	// Raw is the numeric encoding, if the field has one.
	Raw    int
	HasRaw bool

	// Set is false for fields left at their undefined value.
	Set bool
}

type fieldDef struct {
	group Group
	name  string
	get   func(*qualifier.Result) Field
}

func enumField[T interface {
	~uint16
	String() string
}](v T) Field {
	return Field{Value: v.String(), Raw: int(v), HasRaw: true, Set: v != 0}
}

func intField(v int) Field {
	return Field{Value: fmt.Sprint(v), Raw: v, HasRaw: true, Set: v != 0}
}

func maskField(v int) Field {
	return Field{Value: fmt.Sprintf("%#x", v), Raw: v, HasRaw: true, Set: v != 0}
}

func floatField(v float32) Field {
	return Field{Value: fmt.Sprintf("%.2f", v), Set: v != 0}
}

var fieldDefs = []fieldDef{
	{GroupConfiguration, "mcc", func(r *qualifier.Result) Field { return intField(r.Config.MCC) }},
	{GroupConfiguration, "mnc", func(r *qualifier.Result) Field { return intField(r.Config.MNC) }},
	{GroupConfiguration, "locale", func(r *qualifier.Result) Field {
		if r.Config.Locale == nil {
			return Field{Value: "UNDEFINED"}
		}
		return Field{Value: r.Config.Locale.String(), Set: true}
	}},
	{GroupConfiguration, "layoutDirection", func(r *qualifier.Result) Field { return enumField(r.Config.LayoutDirection) }},
	{GroupConfiguration, "smallestScreenWidthDp", func(r *qualifier.Result) Field { return intField(r.Config.SmallestScreenWidthDp) }},
	{GroupConfiguration, "screenWidthDp", func(r *qualifier.Result) Field { return intField(r.Config.ScreenWidthDp) }},
	{GroupConfiguration, "screenHeightDp", func(r *qualifier.Result) Field { return intField(r.Config.ScreenHeightDp) }},
	{GroupConfiguration, "screenSize", func(r *qualifier.Result) Field { return enumField(r.Config.ScreenSize) }},
	{GroupConfiguration, "screenLong", func(r *qualifier.Result) Field { return enumField(r.Config.ScreenLong) }},
	{GroupConfiguration, "screenRound", func(r *qualifier.Result) Field { return enumField(r.Config.ScreenRound) }},
	{GroupConfiguration, "orientation", func(r *qualifier.Result) Field { return enumField(r.Config.Orientation) }},
	{GroupConfiguration, "uiModeType", func(r *qualifier.Result) Field { return enumField(r.Config.UIModeType) }},
	{GroupConfiguration, "uiModeNight", func(r *qualifier.Result) Field { return enumField(r.Config.UIModeNight) }},
	{GroupConfiguration, "densityDpi", func(r *qualifier.Result) Field { return intField(r.Config.DensityDpi) }},
	{GroupConfiguration, "touchscreen", func(r *qualifier.Result) Field { return enumField(r.Config.Touchscreen) }},
	{GroupConfiguration, "keyboardHidden", func(r *qualifier.Result) Field { return enumField(r.Config.KeyboardHidden) }},
	{GroupConfiguration, "keyboard", func(r *qualifier.Result) Field { return enumField(r.Config.Keyboard) }},
	{GroupConfiguration, "navigationHidden", func(r *qualifier.Result) Field { return enumField(r.Config.NavigationHidden) }},
	{GroupConfiguration, "navigation", func(r *qualifier.Result) Field { return enumField(r.Config.Navigation) }},

	{GroupPacked, "screenLayout", func(r *qualifier.Result) Field { return maskField(r.Config.ScreenLayout()) }},
	{GroupPacked, "uiMode", func(r *qualifier.Result) Field { return maskField(r.Config.UIMode()) }},

	{GroupMetrics, "density", func(r *qualifier.Result) Field { return floatField(r.Metrics.Density) }},
	{GroupMetrics, "densityDpi", func(r *qualifier.Result) Field { return intField(r.Metrics.DensityDpi) }},
	{GroupMetrics, "scaledDensity", func(r *qualifier.Result) Field { return floatField(r.Metrics.ScaledDensity) }},
	{GroupMetrics, "xdpi", func(r *qualifier.Result) Field { return floatField(r.Metrics.XDpi) }},
	{GroupMetrics, "ydpi", func(r *qualifier.Result) Field { return floatField(r.Metrics.YDpi) }},
}

// Fields returns every field of a result in display order.
func Fields(res *qualifier.Result) []Field {
	out := make([]Field, 0, len(fieldDefs))
	for _, def := range fieldDefs {
		f := def.get(res)
		f.Group = def.group
		f.Name = def.name
		out = append(out, f)
	}
	return out
}

// FieldNames returns the names accepted by Lookup. Metrics fields are
// prefixed with "metrics.".
func FieldNames() []string {
	names := make([]string, 0, len(fieldDefs))
	for _, def := range fieldDefs {
		names = append(names, qualifiedName(def))
	}
	return names
}

// Lookup returns a single field by name (case-insensitive). Metrics fields
// need the "metrics." prefix when the name is shared with the
// configuration ("metrics.densityDpi").
func Lookup(res *qualifier.Result, name string) (Field, bool) {
	lname := strings.ToLower(name)
	for _, def := range fieldDefs {
		if strings.ToLower(qualifiedName(def)) == lname || strings.ToLower(def.name) == lname {
			f := def.get(res)
			f.Group = def.group
			f.Name = def.name
			return f, true
		}
	}
	return Field{}, false
}

func qualifiedName(def fieldDef) string {
	if def.group == GroupMetrics {
		return "metrics." + def.name
	}
	return def.name
}

// DensityLabel describes a dpi value with its bucket and scale factor,
// e.g. "240 dpi (hdpi, 1.50x)".
func DensityLabel(dpi int) string {
	if dpi == 0 {
		return "UNDEFINED"
	}
	return fmt.Sprintf("%d dpi (%s, %.2fx)", dpi, config.DensityQualifier(dpi), float32(dpi)/config.DensityDefault)
}
