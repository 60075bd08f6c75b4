package main

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stepviz/playback"
	"github.com/katalvlaran/stepviz/sorting"
	"github.com/katalvlaran/stepviz/termview"
)

// barHeight is the number of terminal rows of a bar chart.
const barHeight = 12

func newSortCmd(a *app) *cobra.Command {
	var (
		size              int
		algo, granularity string
		interval          time.Duration
		distinct          bool
	)

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Animate bubble sort and merge sort on the same random array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &a.cfg.Sorting
			if cmd.Flags().Changed("size") {
				c.Size = size
			}
			if cmd.Flags().Changed("algo") {
				c.Algorithm = algo
			}
			if cmd.Flags().Changed("granularity") {
				c.Granularity = granularity
			}
			if cmd.Flags().Changed("interval") {
				c.Interval = interval.String()
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.runSort(cmd, distinct)
		},
	}

	f := cmd.Flags()
	f.IntVar(&size, "size", 20, "array size (5..50)")
	f.StringVar(&algo, "algo", "both", "bubble, merge or both")
	f.StringVar(&granularity, "granularity", "mutation", "snapshot policy: mutation or comparison")
	f.DurationVar(&interval, "interval", 50*time.Millisecond, "tick interval (10ms..200ms)")
	f.BoolVar(&distinct, "distinct", false, "sort a shuffled 1..size instead of random values")
	return cmd
}

// lane is one algorithm being played back.
type lane struct {
	trace  sorting.Trace
	frames *playback.Frames[[]int]
}

func (a *app) runSort(cmd *cobra.Command, distinct bool) error {
	c := a.cfg.Sorting
	r := a.rand(streamSortValues)

	var values []int
	var err error
	if distinct {
		values, err = sorting.Permutation(r, c.Size)
	} else {
		values, err = sorting.RandomValues(r, c.Size, c.MinValue, c.MaxValue)
	}
	if err != nil {
		return err
	}

	g := sorting.PerMutation
	if c.Granularity == "comparison" {
		g = sorting.PerComparison
	}

	var lanes []*lane
	for _, name := range selectedAlgorithms(c.Algorithm) {
		var tr sorting.Trace
		switch name {
		case sorting.AlgoBubble:
			tr, err = sorting.Bubble(values, sorting.WithGranularity(g))
		case sorting.AlgoMerge:
			tr, err = sorting.Merge(values, sorting.WithGranularity(g))
		}
		if err != nil {
			return err
		}
		lanes = append(lanes, &lane{trace: tr})
		a.logger.Info("Generated sort trace",
			zap.String("algorithm", string(name)), zap.Int("steps", len(tr.Steps)))
	}

	out := a.screen(cmd.OutOrStdout())
	var mu sync.Mutex // guards lane frame indices while rendering
	render := func() {
		mu.Lock()
		defer mu.Unlock()
		out.show(a.sortFrame(lanes))
	}
	for _, l := range lanes {
		l.frames = playback.NewFrames(l.trace.Steps, nil)
	}

	if a.noAnim {
		for _, l := range lanes {
			for !l.frames.Done() {
				_, _ = l.frames.Tick()
			}
		}
		render()
		return nil
	}

	render()
	drivers := make([]*playback.Driver, len(lanes))
	for i, l := range lanes {
		d, err := a.newDriver(string(l.trace.Algorithm), a.cfg.SortingInterval())
		if err != nil {
			return err
		}
		drivers[i] = d
	}
	a.control(cmd.InOrStdin(), drivers...)

	eg, ctx := errgroup.WithContext(cmd.Context())
	for i, l := range lanes {
		l := l
		d := drivers[i]
		eg.Go(func() error {
			return d.Run(ctx, func() (bool, error) {
				mu.Lock()
				done, err := l.frames.Tick()
				mu.Unlock()
				render()
				return done, err
			})
		})
	}
	return eg.Wait()
}

// sortFrame must be called with the lane mutex held.
func (a *app) sortFrame(lanes []*lane) string {
	panels := make([]string, 0, len(lanes))
	for _, l := range lanes {
		i := l.frames.Index()
		cur := l.trace.Steps[i]
		var changed []int
		if i > 0 {
			changed = sorting.Changed(l.trace.Steps[i-1], cur)
		}

		body := a.theme.Bars(cur, changed, barHeight) + "\n" + a.theme.Stats(
			termview.Stat{Label: "step", Value: fmt.Sprintf("%d/%d", i, len(l.trace.Steps)-1)},
			termview.Stat{Label: "comparisons", Value: strconv.Itoa(l.trace.Stats.Comparisons)},
			termview.Stat{Label: "swaps", Value: strconv.Itoa(l.trace.Stats.Swaps)},
		)
		panels = append(panels, a.theme.Panel(string(l.trace.Algorithm), body))
	}
	return termview.SideBySide(panels...)
}

func selectedAlgorithms(algo string) []sorting.Algorithm {
	switch algo {
	case "bubble":
		return []sorting.Algorithm{sorting.AlgoBubble}
	case "merge":
		return []sorting.Algorithm{sorting.AlgoMerge}
	default:
		return []sorting.Algorithm{sorting.AlgoBubble, sorting.AlgoMerge}
	}
}
