// Command planner is the CLI entry point: it reads a JSON plan request
// from a file (or stdin), runs it through the planning façade, and writes
// the JSON response to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sporadicmrp/planner/pkg/config"
	"github.com/sporadicmrp/planner/pkg/logger"
	"github.com/sporadicmrp/planner/pkg/metrics"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

func newRootCommand() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "planner",
		Short:         "Material requirements planning for sporadic demand",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(newPlanCommand(&logLevel))
	return root
}

func resolveLogger(levelFlag string) logger.Logger {
	level := levelFlag
	if level == "" {
		if cfg, err := config.New("MRP"); err == nil {
			level = cfg.GetString("log_level")
		}
	}
	return logger.New("planner-cli", level)
}

func newSharedMetrics() *metrics.Planner {
	return metrics.NewNop()
}

func fail(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
