package commands

import (
	"github.com/spf13/cobra"

	"github.com/resconfig/resconfig-go/pkg/apilevel"
	"github.com/resconfig/resconfig-go/pkg/inspect"
	"github.com/resconfig/resconfig-go/pkg/qualifier"
)

type parseOptions struct {
	base      string
	output    string
	showUnset bool
	showIDs   bool
}

func newParseCmd(e *env) *cobra.Command {
	var opts parseOptions
	cmd := &cobra.Command{
		Use:   "parse [qualifiers]",
		Short: "Resolve a qualifier string and print the configuration",
		Long: `Resolve a hyphen-separated qualifier string (e.g. "fr-rFR-land-hdpi")
against a platform API level. An empty or missing argument resolves the
default configuration. With --base, the argument is applied on top of the
base string; a leading "+" on the argument is accepted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			return runParse(cmd, e, input, opts)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&opts.base, "base", "", "base qualifier string the argument is applied on top of")
	fs.StringVarP(&opts.output, "output", "o", FormatText, "output format: text, json, yaml")
	fs.BoolVar(&opts.showUnset, "all", false, "include undefined fields in text output")
	fs.BoolVar(&opts.showIDs, "ids", false, "include numeric encodings in text output")
	return cmd
}

func runParse(cmd *cobra.Command, e *env, input string, opts parseOptions) error {
	if err := checkFormat(opts.output); err != nil {
		return err
	}
	level, err := e.level(apilevel.Latest)
	if err != nil {
		return err
	}

	var res *qualifier.Result
	if opts.base != "" {
		res, err = e.parser().ParseOverlay(opts.base, input, level)
	} else {
		res, err = e.parser().Parse(input, level)
	}
	if err != nil {
		return err
	}

	f := inspect.NewFormatter()
	f.ShowUnset = opts.showUnset
	f.ShowIDs = opts.showIDs
	return writeResult(cmd.OutOrStdout(), res, opts.output, "", f)
}
