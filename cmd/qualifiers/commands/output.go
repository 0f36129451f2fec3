package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/resconfig/resconfig-go/pkg/inspect"
	"github.com/resconfig/resconfig-go/pkg/qualifier"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// document is the structured output form of a result.
type document struct {
	Canonical  string            `json:"canonical" yaml:"canonical"`
	Qualifiers string            `json:"qualifiers" yaml:"qualifiers"`
	Profile    string            `json:"profile,omitempty" yaml:"profile,omitempty"`
	Result     *qualifier.Result `json:"result" yaml:"result"`
	Packed     map[string]int    `json:"packed" yaml:"packed"`
}

func checkFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %s (must be text, json, or yaml)", errOutputFormat, format)
	}
}

// writeResult writes a result in the requested format.
func writeResult(w io.Writer, res *qualifier.Result, format, profileName string, f *inspect.Formatter) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(res, profileName))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(res, profileName)); err != nil {
			return err
		}
		return enc.Close()
	default:
		if profileName != "" {
			fmt.Fprintf(w, "profile: %s\n", profileName)
		}
		_, err := io.WriteString(w, f.FormatResult(res))
		return err
	}
}

func newDocument(res *qualifier.Result, profileName string) document {
	return document{
		Canonical:  res.Canonical,
		Qualifiers: res.Qualifiers(),
		Profile:    profileName,
		Result:     res,
		Packed: map[string]int{
			"screenLayout": res.Config.ScreenLayout(),
			"uiMode":       res.Config.UIMode(),
		},
	}
}
