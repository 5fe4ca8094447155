package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstreplay/core"
	"github.com/katalvlaran/mstreplay/mst"
)

// ErrVerifyFailed is returned when at least one dataset fails verification.
var ErrVerifyFailed = errors.New("verification failed")

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [dataset...]",
		Short: "Check traces against Kruskal and the trace invariants",
		Long: "verify generates the trace of each named dataset (all of them when none is " +
			"given) and checks its structure and that its weight matches Kruskal's.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				names := args
				if len(names) == 0 {
					names = a.catalog.Names()
				}
				out := cmd.OutOrStdout()
				failed := 0
				for _, name := range names {
					t, err := a.trace(name)
					if err == nil {
						err = mst.Verify(t)
					}
					if err != nil {
						failed++
						a.logger.Warn("verification failed", zap.String("dataset", name), zap.Error(err))
						fmt.Fprintf(out, "FAIL  %s: %v\n", name, err)
						continue
					}
					fmt.Fprintf(out, "ok    %s: %d steps, weight %s", name, t.Len(), core.FormatWeight(t.Weight()))
					if missing := t.Unreached(); len(missing) > 0 {
						fmt.Fprintf(out, ", %d unreachable", len(missing))
					}
					fmt.Fprintln(out)
				}
				if failed > 0 {
					return errors.Wrapf(ErrVerifyFailed, "%d of %d datasets", failed, len(names))
				}
				return nil
			})
		},
	}
}
