package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/endpointprobe/internal/config"
	"github.com/hamed0406/endpointprobe/internal/logging"
	"github.com/hamed0406/endpointprobe/internal/probe"
	"github.com/hamed0406/endpointprobe/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Probe every instance once and print what was reported",
	RunE: func(cmd *cobra.Command, args []string) error {
		configfile, _ := cmd.Flags().GetString("configfile")
		verbose, _ := cmd.Flags().GetBool("verbose")

		in, err := config.LoadInstances(configfile)
		if err != nil {
			return err
		}
		logger := zap.NewNop()
		if verbose {
			if logger, err = logging.NewLogger("", "debug"); err != nil {
				return err
			}
			defer logger.Sync()
		}
		return runInstances(cmd.Context(), cmd.OutOrStdout(), logger, in)
	},
}

// runInstances probes each instance in file order and prints its emissions
// before moving on to the next one.
func runInstances(ctx context.Context, w io.Writer, logger *zap.Logger, in config.Instances) error {
	rec := report.NewRecorder(0)
	p := probe.New(logger, rec, in.InitConfig)

	for _, ep := range in.Resolved() {
		rec.Reset()
		fmt.Fprintf(w, "\nRunning the check against url: %s\n", probe.Redact(ep.URL))
		p.Run(ctx, ep)

		if events := rec.Events(); len(events) > 0 {
			if err := printJSON(w, "Events", events); err != nil {
				return err
			}
		}
		if err := printJSON(w, "Service checks", rec.ServiceChecks()); err != nil {
			return err
		}
		if err := printJSON(w, "Metrics", rec.Gauges()); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(w io.Writer, label string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", label, err)
	}
	_, err = fmt.Fprintf(w, "%s: %s\n", label, b)
	return err
}
