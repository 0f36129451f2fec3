package commands

import (
	"github.com/spf13/cobra"

	"github.com/resconfig/resconfig-go/cmd/qualifiers/interactive"
)

func newInteractiveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl"},
		Short:   "Resolve qualifiers from a prompt",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := e.profiles()
			if err != nil {
				return err
			}
			level, err := e.level(0)
			if err != nil {
				return err
			}
			s := interactive.NewSession(e.parser(), set, level, cmd.OutOrStdout())
			return s.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
