package inspect

import (
	"fmt"
	"strings"

	"github.com/resconfig/resconfig-go/pkg/qualifier"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowIDs includes the numeric encoding alongside names
	ShowIDs bool

	// ShowUnset includes fields left undefined
	ShowUnset bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowIDs:     false,
		ShowUnset:   false,
		IndentWidth: 2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	indent := strings.Repeat(" ", depth*width)
	return indent + content
}

// FormatField formats a single field as "name: value".
func (f *Formatter) FormatField(field Field) string {
	value := field.Value
	if field.Name == "densityDpi" && field.Set {
		value = DensityLabel(field.Raw)
	}
	if f.ShowIDs && field.HasRaw && field.Group != GroupPacked {
		value = fmt.Sprintf("%s [%#x]", value, field.Raw)
	}
	return field.Name + ": " + value
}

// FormatResult formats a resolved result as an indented listing.
func (f *Formatter) FormatResult(res *qualifier.Result) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("canonical: %s\n", res.Canonical))
	sb.WriteString(fmt.Sprintf("api: %d (%s)\n", int(res.Level), res.Level.Codename()))

	group := Group(255)
	for _, field := range Fields(res) {
		if !field.Set && !f.ShowUnset && field.Group != GroupPacked {
			continue
		}
		if field.Group != group {
			group = field.Group
			sb.WriteString(group.String() + ":\n")
		}
		sb.WriteString(f.Indent(1, f.FormatField(field)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatError formats a qualifier error with its classification.
func (f *Formatter) FormatError(err error) string {
	kind := qualifier.KindOf(err)
	if kind == 0 {
		return "error: " + err.Error()
	}
	return fmt.Sprintf("error [%s]: %v", kind, err)
}
