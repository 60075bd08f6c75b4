// Command stepviz plays step-recording algorithm visualizations in the
// terminal: incremental Dijkstra, bubble and merge sort, and a tiny neural
// network learning a decision boundary.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/stepviz/internal/config"
	"github.com/katalvlaran/stepviz/internal/logging"
	"github.com/katalvlaran/stepviz/termview"
)

// app carries the state shared by every command of one invocation.
type app struct {
	// Global flags
	cfgPath     string
	verbose     bool
	seed        int64
	noAnim      bool
	plain       bool
	interactive bool
	paused      bool

	cfg    *config.Config
	logger *zap.Logger
	theme  termview.Theme
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "stepviz",
		Short: "Step-by-step algorithm visualizations in the terminal",
		Long: `stepviz replays algorithms one step per tick:

  dijkstra  shortest path on a small weighted graph
  sort      bubble sort and merge sort side by side
  train     a 2-H-1 network learning a decision boundary

Every command accepts --no-anim to print only the final frame, and
--interactive to pause, step and stop from stdin (p, n, q).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.paused && !a.interactive {
				return fmt.Errorf("--paused needs --interactive")
			}
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = a.seed
			}
			a.cfg = cfg

			logger, err := logging.New(cfg.Logging, a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger

			a.theme = termview.DefaultTheme()
			if a.plain {
				a.theme = termview.PlainTheme()
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "stepviz.yaml", "config file (missing file means defaults)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.Int64Var(&a.seed, "seed", 0, "random seed (0 selects the fixed default)")
	pf.BoolVar(&a.noAnim, "no-anim", false, "print the final frame only")
	pf.BoolVar(&a.plain, "plain", false, "disable colors and screen clearing")
	pf.BoolVarP(&a.interactive, "interactive", "i", false, "read p (pause), n (step), q (quit) from stdin")
	pf.BoolVar(&a.paused, "paused", false, "start paused (needs --interactive)")

	root.AddCommand(
		newDijkstraCmd(a),
		newSortCmd(a),
		newTrainCmd(a),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
