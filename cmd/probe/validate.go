package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamed0406/endpointprobe/internal/config"
	"github.com/hamed0406/endpointprobe/internal/probe"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate an instance file without probing",
	RunE: func(cmd *cobra.Command, args []string) error {
		configfile, _ := cmd.Flags().GetString("configfile")
		in, err := config.LoadInstances(configfile)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, ep := range in.Resolved() {
			if ep.URL == "" {
				fmt.Fprintln(out, "⚠ instance without url will be skipped")
				continue
			}
			fmt.Fprintf(out, "✔ %s %s (timeout %gs)\n", ep.CheckType, probe.Redact(ep.URL), ep.TimeoutSeconds(in.InitConfig))
		}
		fmt.Fprintf(out, "%d instance(s) OK\n", len(in.Endpoints))
		return nil
	},
}
