package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resconfig/resconfig-go/pkg/apilevel"
)

// Version is the CLI release.
const Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "qualifiers %s (latest API level %d, %s)\n",
				Version, int(apilevel.Latest), apilevel.Latest.Codename())
			return err
		},
	}
}
