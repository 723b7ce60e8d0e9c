package probe

import (
	"github.com/spf13/cobra"
)

func newLiveness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs the liveness probe",
		Long:  `Probes the management liveness endpoint of a locally running server. Exits non-zero on failure.`,
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool(verboseFlag)
			runProbe("/-/healthy", verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Prints the probe response body")

	return cmd
}
