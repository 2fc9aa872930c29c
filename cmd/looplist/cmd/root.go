// Package cmd implements the looplist CLI commands.
//
// The root command loads looplist.yaml, configures logging and dispatches
// to run (interactive terminal host) and simulate (scripted gestures).
package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-drift/looplist/internal/config"
	"github.com/go-drift/looplist/internal/demo"
	"github.com/go-drift/looplist/pkg/errors"
	"github.com/go-drift/looplist/pkg/loop"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// globalOptions carries persistent flags and the state derived from them.
type globalOptions struct {
	configPath string
	logLevel   string

	resolved *config.Resolved
	logger   zerolog.Logger
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{logger: zerolog.Nop()}
	root := &cobra.Command{
		Use:   "looplist",
		Short: "Looping list view host and simulator",
		Long: `looplist shows a circular list whose items repeat endlessly in both
directions. Flings decelerate and then snap the nearest item to the center.

Settings are read from looplist.yaml in the working directory when present.`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "path to the configuration file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides the config file)")
	root.AddCommand(newRunCmd(opts), newSimulateCmd(opts))
	return root
}

// Execute runs the CLI and prints any error to stderr.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		root.PrintErrln("Error:", err)
	}
	return err
}

func (o *globalOptions) load(logOut io.Writer) error {
	resolved, err := config.Resolve(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		resolved.LogLevel = o.logLevel
	}
	o.resolved = resolved
	o.logger = newLogger(logOut, resolved.LogLevel)
	errors.SetHandler(errors.NewZerologHandler(o.logger))
	o.logger.Debug().
		Str("config", resolved.Path).
		Str("version", resolved.Version).
		Msg("configuration loaded")
	return nil
}

// newView builds a view over the demo items using the resolved settings.
func (o *globalOptions) newView() *loop.View {
	view := loop.NewView(o.resolved.Options)
	view.SetLogger(o.logger.With().Str("component", "loop").Logger())
	view.SetAdapter(demo.NewAdapter(demo.Items(o.resolved.Demo.Items), o.resolved.Demo.ItemPadding))
	return view
}
