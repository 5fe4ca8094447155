package cli

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstreplay/render"
	"github.com/katalvlaran/mstreplay/replay"
)

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print every step of the trace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			draw, _ := cmd.Flags().GetBool("draw")
			if format != "text" && format != "json" {
				return errors.Errorf("unknown format %q (want text or json)", format)
			}
			return withApp(cmd, func(a *app) error {
				t, err := a.trace(a.cfg.Dataset)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if format == "json" {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					return errors.Wrap(enc.Encode(t), "encode trace")
				}

				opts := render.ReportOptions{}
				if draw {
					opts.Cols, opts.Rows = 60, 18
				}
				ctrl := replay.NewController(t.Steps(), replay.WithSpeed(a.cfg.Speed), replay.WithBaseInterval(a.cfg.Interval))
				for {
					if err := render.Report(out, t.Graph(), ctrl.Frame(), opts); err != nil {
						return err
					}
					if ctrl.Frame().AtEnd() {
						break
					}
					fmt.Fprintln(out)
					ctrl.StepForward()
				}
				return nil
			})
		},
	}
	cmd.Flags().String("format", "text", "Output format: text|json")
	cmd.Flags().Bool("draw", false, "Include an ASCII drawing of the graph in text output")

	return cmd
}
