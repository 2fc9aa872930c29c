package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/go-drift/looplist/internal/demo"
	"github.com/go-drift/looplist/pkg/errors"
)

// errNotTerminal is returned by run when stdout is not a terminal.
var errNotTerminal = stderrors.New("run requires an interactive terminal; use 'looplist simulate' instead")

// isTerminal reports whether f is attached to a terminal.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func newRunCmd(opts *globalOptions) *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the list in the terminal",
		Long: `Run opens the list full screen. Drag with the mouse to scroll, release
quickly to fling, and click an item to select it. Keyboard:

  up/k, down/j      center the previous or next item
  pgup, pgdn/space  fling
  enter             tap the centered item
  q                 quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return errNotTerminal
			}
			// The terminal belongs to the UI while it runs.
			opts.logger = opts.logger.Output(io.Discard)
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer f.Close()
				opts.logger = newLogger(f, opts.resolved.LogLevel)
			}
			errors.SetHandler(errors.NewZerologHandler(opts.logger))

			view := opts.newView()
			model := demo.NewModel(view, opts.resolved.Demo.PixelsPerRow)
			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("failed to run terminal UI: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the UI runs")
	return cmd
}
