package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mdbook-nocomment/internal/output"
	"github.com/jmylchreest/mdbook-nocomment/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			w := output.NewJSONLWriter(cmd.OutOrStdout())
			if err := w.Write(version.Get()); err != nil {
				return err
			}
			return w.Close()
		}

		_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("json", false, "print version information as JSON")
}
