package cli

import (
	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstreplay/logging"
	"github.com/katalvlaran/mstreplay/replay"
	"github.com/katalvlaran/mstreplay/tui"
)

// runTUI starts the interactive replay on the configured dataset. Bubble Tea
// owns the terminal, so logs go to the log file or nowhere.
func runTUI(cmd *cobra.Command) error {
	return runApp(cmd, logging.NewTUILogger, func(a *app) error {
		m, err := a.model()
		if err != nil {
			return err
		}
		p := tea.NewProgram(m,
			tea.WithContext(cmd.Context()),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()))
		if _, err := p.Run(); err != nil {
			return errors.Wrap(err, "run tui")
		}
		return nil
	})
}

// model builds the TUI model over every catalog dataset.
func (a *app) model() (tui.Model, error) {
	opts := []tui.Option{
		tui.WithInitial(a.cfg.Dataset),
		tui.WithLogger(a.logger),
		tui.WithRecorder(a.metrics),
		tui.WithController(
			replay.WithSpeed(a.cfg.Speed),
			replay.WithBaseInterval(a.cfg.Interval)),
	}
	if a.cfg.Autoplay {
		opts = append(opts, tui.WithAutoplay())
	}

	return tui.New(a.catalog.Names(), a.trace, opts...)
}
