package check

import (
	"github.com/spf13/cobra"
)

func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "commands to check session data",
	}

	cmd.AddCommand(NewDisplayLapsCmd())

	return cmd
}

var sessionFile string
