package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/kyotamd/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), version.Details())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
