package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/looplist/internal/demo"
	"github.com/go-drift/looplist/pkg/graphics"
)

func newSimulateCmd(opts *globalOptions) *cobra.Command {
	var (
		script string
		width  float64
		height float64
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay scripted gestures and print the window after each step",
		Long: `Simulate drives the list on a virtual clock without a terminal. Each step
is "<verb> <amount>":

  tap Y       tap at viewport y
  drag DY     drag from the center by DY pixels and rest before lifting
  fling DY    drag by DY pixels over 100ms and lift while moving
  scroll DY   move the offset programmatically
  wait D      let D (for example 500ms) pass

Steps are separated by semicolons or newlines. After every step the view
is run until it stops animating.`,
		Example: `  looplist simulate
  looplist simulate --script "fling -900; wait 500ms; tap 250"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, err := demo.ParseScript(script)
			if err != nil {
				return fmt.Errorf("invalid script: %w", err)
			}
			if width <= 0 || height <= 0 {
				return fmt.Errorf("viewport must be positive, got %gx%g", width, height)
			}

			sim := demo.NewSimulator(opts.newView(), graphics.Size{Width: width, Height: height})
			defer sim.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-16s %s\n", "start", sim.Snapshot())
			for i, step := range steps {
				snap, err := sim.Run(step)
				fmt.Fprintf(out, "%-16s %s\n", step, snap)
				for _, click := range snap.Clicks {
					fmt.Fprintf(out, "%-16s index=%d id=%d\n", "  click", click.Index, click.ID)
				}
				if err != nil {
					return fmt.Errorf("step %d (%s): %w", i+1, step, err)
				}
			}
			opts.logger.Debug().Int("frames", sim.Frames).Int("steps", len(steps)).Msg("simulation finished")
			return nil
		},
	}
	cmd.Flags().StringVar(&script, "script", demo.DefaultScript, "gesture script")
	cmd.Flags().Float64Var(&width, "width", 320, "viewport width in pixels")
	cmd.Flags().Float64Var(&height, "height", 500, "viewport height in pixels")
	return cmd
}
