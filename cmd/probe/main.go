package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "probe",
		Short:         "Run endpoint health probes by hand",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringP("configfile", "c", "conf.d/custom_http.yaml", "instance file")
	root.PersistentFlags().Bool("verbose", false, "log probe activity to stdout")
	root.AddCommand(runCmd, validateCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
