package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstreplay/mst"
	"github.com/katalvlaran/mstreplay/render"
	"github.com/katalvlaran/mstreplay/replay"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Autoplay the trace without a UI, printing each frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draw, _ := cmd.Flags().GetBool("draw")
			return withApp(cmd, func(a *app) error {
				t, err := a.trace(a.cfg.Dataset)
				if err != nil {
					return err
				}
				opts := render.ReportOptions{BarWidth: 30}
				if draw {
					opts.Cols, opts.Rows = 60, 18
				}
				return a.play(cmd.Context(), cmd.OutOrStdout(), t, opts)
			})
		},
	}
	cmd.Flags().Bool("draw", false, "Include an ASCII drawing of the graph in each frame")

	return cmd
}

// play drives t through a Player on the real clock and prints each step
// once, until the last step or until ctx ends.
//
// Steps:
//  1. Start the Player; the observer prints each frame and signals the end.
//  2. Print the first frame, then Play.
//  3. Wait for the last frame or cancellation, then stop the Player.
func (a *app) play(ctx context.Context, out io.Writer, t *mst.Trace, opts render.ReportOptions) error {
	var (
		once    sync.Once
		done    = make(chan struct{})
		printed error
		last    = -1
	)
	finish := func() { once.Do(func() { close(done) }) }
	show := func(f replay.Frame) {
		if f.Index == last && f.HasStep {
			return
		}
		last = f.Index
		if printed == nil {
			printed = render.Report(out, t.Graph(), f, opts)
			fmt.Fprintln(out)
		}
		if f.AtEnd() {
			finish()
		}
	}

	// 1. Player.
	ctrl := replay.NewController(t.Steps(),
		replay.WithSpeed(a.cfg.Speed),
		replay.WithBaseInterval(a.cfg.Interval))
	player := replay.NewPlayer(ctrl,
		replay.WithLogger(a.logger),
		replay.WithRecorder(a.metrics),
		replay.WithObserver(show))
	ctx, cancel := context.WithCancel(ctx)
	errc := make(chan error, 1)
	go func() { errc <- player.Run(ctx) }()

	// 2. First frame. Snapshot changes nothing, so the observer stays quiet.
	first, err := player.Snapshot()
	if err != nil {
		cancel()
		<-errc
		return err
	}
	show(first)
	if !first.AtEnd() {
		if _, err := player.Play(); err != nil {
			cancel()
			<-errc
			return err
		}
	}

	// 3. Wait.
	interrupted := false
	select {
	case <-done:
	case <-ctx.Done():
		interrupted = true
	}
	cancel()
	<-errc
	a.logger.Info("playback finished", zap.Stringer("trace", t.ID), zap.Bool("interrupted", interrupted))

	return printed
}
