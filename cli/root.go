// Package cli wires configuration, datasets, the replay and the front ends
// into the mstreplay command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. The root command starts the TUI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mstreplay",
		Short: "Step through Prim's minimum spanning tree algorithm",
		Long: "mstreplay precomputes every step of Prim's algorithm on a graph and " +
			"replays the trace like a video: play, pause, step, reset and change speed.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file")
	flags.String("env-file", "", "Path to a .env file with MSTREPLAY_* variables")
	flags.String("catalog", "", "Path to a YAML or JSON catalog of extra graphs")
	flags.String("dataset", "", "Dataset to replay (see 'mstreplay list')")
	flags.String("start", "", "Start node (defaults to the dataset's own)")
	flags.Float64("speed", 0, "Replay speed multiplier, 0.5 to 3")
	flags.Duration("interval", 0, "Delay between steps at speed 1")
	flags.Bool("autoplay", false, "Start playing immediately")
	flags.String("log-level", "", "Log level: debug|info|warn|error")
	flags.String("log-format", "", "Log format: json|console")
	flags.String("log-file", "", "Write logs to this file instead of stderr")
	flags.String("metrics-file", "", "Write Prometheus text metrics to this file on exit")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newTraceCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newVerifyCmd())

	return rootCmd
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
