package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/resconfig/resconfig-go/pkg/inspect"
)

func newProfilesCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List, show and validate device profiles",
	}
	cmd.AddCommand(newProfilesListCmd(e), newProfilesShowCmd(e), newProfilesValidateCmd(e))
	return cmd
}

func newProfilesListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := e.profiles()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tAPI\tEXTENDS\tDESCRIPTION")
			for _, name := range set.Names() {
				p, _ := set.Get(name)
				level, err := set.Level(name)
				if err != nil {
					return err
				}
				extends := p.Extends
				if extends == "" {
					extends = "-"
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", name, int(level), extends, p.Description)
			}
			return tw.Flush()
		},
	}
}

type showOptions struct {
	output         string
	qualifiersOnly bool
}

func newProfilesShowCmd(e *env) *cobra.Command {
	var opts showOptions
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Resolve a profile and print its configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.output); err != nil {
				return err
			}
			set, err := e.profiles()
			if err != nil {
				return err
			}
			level, err := e.level(0)
			if err != nil {
				return err
			}

			res, err := set.Resolve(e.parser(), args[0], level)
			if err != nil {
				return err
			}
			if opts.qualifiersOnly {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Qualifiers())
				return err
			}
			return writeResult(cmd.OutOrStdout(), res, opts.output, args[0], inspect.NewFormatter())
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", FormatText, "output format: text, json, yaml")
	cmd.Flags().BoolVar(&opts.qualifiersOnly, "qualifiers", false, "print only the resolved qualifier string")
	return cmd
}

func newProfilesValidateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Resolve every profile and report failures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := e.profiles()
			if err != nil {
				return err
			}
			level, err := e.level(0)
			if err != nil {
				return err
			}
			if err := set.Validate(level); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d profiles OK\n", set.Len())
			return err
		},
	}
}
