package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stepviz/internal/pointsfile"
	"github.com/katalvlaran/stepviz/neural"
)

func newTrainCmd(a *app) *cobra.Command {
	var (
		hidden, epochs int
		lr             float64
		pointsPath     string
		interval       time.Duration
		watch          bool
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a 2-H-1 network and watch its decision boundary form",
		Long: `Trains a network with --hidden sigmoid units by online gradient descent,
one epoch per tick, and draws the decision boundary over the training points.

Points come from --points (YAML, coordinates in [-1, 1]) or a built-in
four-point set. With --watch, edits to the points file are picked up while
training runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &a.cfg.Neural
			if cmd.Flags().Changed("hidden") {
				c.HiddenUnits = hidden
			}
			if cmd.Flags().Changed("lr") {
				c.LearningRate = lr
			}
			if cmd.Flags().Changed("epochs") {
				c.Epochs = epochs
			}
			if cmd.Flags().Changed("points") {
				c.Points = pointsPath
			}
			if cmd.Flags().Changed("interval") {
				c.Interval = interval.String()
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			if watch && c.Points == "" {
				return errors.New("--watch requires a points file")
			}
			return a.runTrain(cmd, watch)
		},
	}

	f := cmd.Flags()
	f.IntVar(&hidden, "hidden", 4, "hidden units (2..8)")
	f.Float64Var(&lr, "lr", 0.1, "learning rate (0.01..0.5)")
	f.IntVar(&epochs, "epochs", 500, "epochs to train")
	f.StringVar(&pointsPath, "points", "", "YAML points file (default: built-in points)")
	f.DurationVar(&interval, "interval", 100*time.Millisecond, "tick interval")
	f.BoolVar(&watch, "watch", false, "reload the points file when it changes")
	return cmd
}

func (a *app) runTrain(cmd *cobra.Command, watch bool) error {
	c := a.cfg.Neural

	pts := neural.DemoPoints()
	if c.Points != "" {
		var err error
		if pts, err = pointsfile.Load(c.Points); err != nil {
			return err
		}
	}

	run, err := neural.NewRun(neural.Config{HiddenUnits: c.HiddenUnits, LearningRate: c.LearningRate}, a.rand(streamWeights))
	if err != nil {
		return err
	}
	if run, err = run.WithPoints(pts...); err != nil {
		return err
	}
	a.logger.Info("Starting training",
		zap.Int("hidden", c.HiddenUnits), zap.Float64("lr", c.LearningRate),
		zap.Int("points", len(run.Points)), zap.Int("epochs", c.Epochs))

	out := a.screen(cmd.OutOrStdout())

	if a.noAnim {
		for run.Epoch < c.Epochs && len(run.Points) > 0 {
			if run, err = neural.Step(run); err != nil {
				return err
			}
		}
		frame, err := a.trainFrame(run)
		if err != nil {
			return err
		}
		out.show(frame)
		return nil
	}

	d, err := a.newDriver("train", a.cfg.NeuralInterval())
	if err != nil {
		return err
	}
	a.control(cmd.InOrStdin(), d)

	var (
		mu      sync.Mutex
		pending []neural.Point
		reload  bool
	)
	tick := func() (bool, error) {
		mu.Lock()
		if reload {
			next := run
			next.Points = nil
			next, err := next.WithPoints(pending...)
			if err != nil {
				mu.Unlock()
				return false, err
			}
			run, reload = next, false
			a.logger.Info("Points reloaded", zap.Int("points", len(run.Points)))
		}
		mu.Unlock()
		if len(run.Points) == 0 && !watch {
			return true, nil
		}

		next, err := neural.Step(run)
		if err != nil {
			return false, err
		}
		run = next
		frame, err := a.trainFrame(run)
		if err != nil {
			return false, err
		}
		out.show(frame)
		return run.Epoch >= c.Epochs, nil
	}

	if !watch {
		return d.Run(cmd.Context(), tick)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return d.Run(ctx, tick)
	})
	eg.Go(func() error {
		err := pointsfile.Watch(ctx, c.Points, func(pts []neural.Point, err error) {
			if err != nil {
				a.logger.Warn("Points reload failed", zap.Error(err))
				return
			}
			mu.Lock()
			pending, reload = pts, true
			mu.Unlock()
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	return eg.Wait()
}

func (a *app) trainFrame(run neural.Run) (string, error) {
	c := a.cfg.Neural
	grid, err := neural.Boundary(run.Network, c.GridCols, c.GridRows)
	if err != nil {
		return "", err
	}
	conns, err := neural.Connections(run.Network)
	if err != nil {
		return "", err
	}

	title := fmt.Sprintf("epoch %d  loss %.4f", run.Epoch, run.Loss)
	return a.theme.Panel(title, a.theme.Boundary(grid, run.Points)) + "\n" + a.theme.Network(conns), nil
}
