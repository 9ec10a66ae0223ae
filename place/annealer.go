// place/annealer.go
//
// Implements the simulated-annealing optimizer: move generation, Metropolis
// acceptance, geometric cooling, and best-placement tracking. The run is a
// single-goroutine CPU-bound loop with cooperative cancellation; all
// randomness comes from one generator owned by the run.

package place

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/laiopt/laiopt/place/trace"
)

// Schedule is the cooling schedule and iteration budget for a run.
type Schedule struct {
	// T0 is the starting temperature.
	T0 float64
	// Alpha is the geometric decay factor applied after each epoch, in (0,1).
	Alpha float64
	// EpochLength is the number of attempted moves between cooling steps.
	EpochLength int
	// TMin terminates the run once the temperature falls below it.
	TMin float64
	// MaxIterations bounds the total number of attempted moves.
	MaxIterations int
	// SwapProbability is the chance an attempted move is a two-block swap
	// rather than a single-block reposition. Swaps that would break boundary
	// legality fall back to repositioning.
	SwapProbability float64
}

// DefaultSchedule returns a schedule suitable for dies with tens of blocks.
func DefaultSchedule() Schedule {
	return Schedule{
		T0:              1000.0,
		Alpha:           0.95,
		EpochLength:     100,
		TMin:            0.001,
		MaxIterations:   200000,
		SwapProbability: 0.3,
	}
}

// Validate checks the schedule parameters.
func (s Schedule) Validate() error {
	if s.T0 <= 0 {
		return fmt.Errorf("schedule: T0 must be positive, got %g", s.T0)
	}
	if s.Alpha <= 0 || s.Alpha >= 1 {
		return fmt.Errorf("schedule: alpha must be in (0,1), got %g", s.Alpha)
	}
	if s.EpochLength < 1 {
		return fmt.Errorf("schedule: epoch length must be >= 1, got %d", s.EpochLength)
	}
	if s.TMin <= 0 {
		return fmt.Errorf("schedule: TMin must be positive, got %g", s.TMin)
	}
	if s.MaxIterations < 0 {
		return fmt.Errorf("schedule: max iterations must be >= 0, got %d", s.MaxIterations)
	}
	if s.SwapProbability < 0 || s.SwapProbability > 1 {
		return fmt.Errorf("schedule: swap probability must be in [0,1], got %g", s.SwapProbability)
	}
	return nil
}

// Annealer is the core object that holds one run's model, schedule, and
// random stream. It retains only the current and best placements during the
// search; every candidate is a fresh Placement value.
type Annealer struct {
	Blocks   []Block
	Nets     []Net
	Die      Die
	Schedule Schedule
	Cost     CostConfig
	Key      RunKey
	Tracing  trace.Config

	// Metrics is populated over the course of Run.
	Metrics *Metrics
}

// NewAnnealer validates the model and schedule and constructs a run.
func NewAnnealer(blocks []Block, nets []Net, die Die, seed int64, schedule Schedule) (*Annealer, error) {
	if die.Width <= 0 || die.Height <= 0 {
		return nil, &InvalidDieError{Width: die.Width, Height: die.Height}
	}
	if err := ValidateBlocks(blocks); err != nil {
		return nil, err
	}
	if err := ValidateNets(blocks, nets); err != nil {
		return nil, err
	}
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	return &Annealer{
		Blocks:   blocks,
		Nets:     nets,
		Die:      die,
		Schedule: schedule,
		Cost:     DefaultCostConfig(),
		Key:      NewRunKey(seed),
		Metrics:  &Metrics{},
	}, nil
}

// Result is the outcome of an annealing run.
type Result struct {
	// Best is the cheapest zero-penalty placement seen, or the baseline when
	// no such candidate appeared. Never the final current placement.
	Best Placement
	// Cost is Best's breakdown.
	Cost CostBreakdown
	// Converged reports whether Best has zero overlap and boundary terms.
	// False is the non-convergence warning: the caller got the best-effort
	// baseline, not an optimized result.
	Converged bool

	// Baseline and BaselineCost record the deterministic starting point, for
	// before/after comparison by downstream consumers.
	Baseline     Placement
	BaselineCost CostBreakdown

	Trace   *trace.RunTrace
	Metrics *Metrics
}

// Run executes the annealing loop and returns the best placement found.
//
// The loop draws every stochastic decision from the run's single seeded
// generator, so identical (inputs, schedule, seed) yield bit-identical
// results. Cancellation is cooperative: the context is checked once per
// iteration and the current best is returned immediately when it fires.
func (a *Annealer) Run(ctx context.Context) (*Result, error) {
	baseline, err := BaselinePlacement(a.Blocks, a.Die)
	if err != nil {
		return nil, err
	}
	baseCost, err := a.Cost.Evaluate(baseline, a.Blocks, a.Nets, a.Die)
	if err != nil {
		return nil, err
	}

	logrus.Infof("annealing %d blocks, %d nets on %gx%g die: T0=%g alpha=%g epoch=%d budget=%d",
		len(a.Blocks), len(a.Nets), a.Die.Width, a.Die.Height,
		a.Schedule.T0, a.Schedule.Alpha, a.Schedule.EpochLength, a.Schedule.MaxIterations)

	rng := a.Key.NewRNG()
	rt := trace.NewRunTrace(a.Tracing)
	m := a.Metrics
	if m == nil {
		m = &Metrics{}
		a.Metrics = m
	}

	current, currentCost := baseline, baseCost
	best, bestCost := baseline, baseCost

	temperature := a.Schedule.T0
	epoch := 0
	epochIters, epochAccepted := 0, 0

	for iter := 0; iter < a.Schedule.MaxIterations; iter++ {
		if temperature < a.Schedule.TMin {
			break
		}
		if ctx != nil && ctx.Err() != nil {
			logrus.Infof("annealing cancelled after %d iterations", m.Iterations)
			break
		}

		candidate := a.propose(rng, current, m)
		candCost, err := a.Cost.Evaluate(candidate, a.Blocks, a.Nets, a.Die)
		if err != nil {
			return nil, err
		}
		m.Iterations++
		epochIters++

		// Metropolis criterion.
		delta := candCost.Total - currentCost.Total
		accepted := delta <= 0
		if !accepted && rng.Float64() < math.Exp(-delta/temperature) {
			accepted = true
		}
		if accepted {
			current, currentCost = candidate, candCost
			m.Accepted++
			epochAccepted++
		} else {
			m.Rejected++
		}

		// Any candidate, accepted or rejected, may become best, but only
		// with zero penalty terms.
		if candCost.Total < bestCost.Total && candCost.Legal() {
			best, bestCost = candidate, candCost
			m.BestUpdates++
		}

		if epochIters == a.Schedule.EpochLength {
			rt.RecordEpoch(trace.EpochRecord{
				Epoch:       epoch,
				Temperature: temperature,
				Iterations:  epochIters,
				Accepted:    epochAccepted,
				CurrentCost: currentCost.Total,
				BestCost:    bestCost.Total,
			})
			logrus.Debugf("epoch %d: T=%g accepted=%d/%d current=%g best=%g",
				epoch, temperature, epochAccepted, epochIters, currentCost.Total, bestCost.Total)
			temperature *= a.Schedule.Alpha
			epoch++
			m.Epochs++
			epochIters, epochAccepted = 0, 0
		}
	}

	if epochIters > 0 {
		rt.RecordEpoch(trace.EpochRecord{
			Epoch:       epoch,
			Temperature: temperature,
			Iterations:  epochIters,
			Accepted:    epochAccepted,
			CurrentCost: currentCost.Total,
			BestCost:    bestCost.Total,
		})
	}
	m.FinalTemperature = temperature

	converged := bestCost.Legal()
	if !converged {
		// The baseline is always boundary-legal by construction, so it is a
		// safe fallback; surface a warning, never an error.
		logrus.Warnf("no zero-penalty candidate found in %d iterations; returning baseline placement",
			m.Iterations)
		best, bestCost = baseline, baseCost
	}

	return &Result{
		Best:         best,
		Cost:         bestCost,
		Converged:    converged,
		Baseline:     baseline,
		BaselineCost: baseCost,
		Trace:        rt,
		Metrics:      m,
	}, nil
}

// propose generates one candidate placement. Candidates are boundary-legal by
// construction; overlap is priced by the evaluator, not prevented here.
func (a *Annealer) propose(rng *rand.Rand, current Placement, m *Metrics) Placement {
	candidate := current.Clone()
	n := len(a.Blocks)
	if n == 0 {
		return candidate
	}

	if n >= 2 && rng.Float64() < a.Schedule.SwapProbability {
		i := rng.Intn(n)
		j := rng.Intn(n - 1)
		if j >= i {
			j++
		}
		bi, bj := a.Blocks[i], a.Blocks[j]
		pi, pj := current[bi.ID], current[bj.ID]
		if a.fitsDie(bi, pj) && a.fitsDie(bj, pi) {
			candidate[bi.ID] = pj
			candidate[bj.ID] = pi
			m.Swaps++
			return candidate
		}
		// Swapped positions would cross the boundary for these dimensions;
		// fall back to repositioning the first chosen block.
		m.SwapFallbacks++
		candidate[bi.ID] = a.randomPosition(rng, bi)
		m.Repositions++
		return candidate
	}

	b := a.Blocks[rng.Intn(n)]
	candidate[b.ID] = a.randomPosition(rng, b)
	m.Repositions++
	return candidate
}

// randomPosition draws a bottom-left corner uniformly from the block's
// boundary-feasible range.
func (a *Annealer) randomPosition(rng *rand.Rand, b Block) Point {
	return Point{
		X: rng.Float64() * (a.Die.Width - b.Width),
		Y: rng.Float64() * (a.Die.Height - b.Height),
	}
}

func (a *Annealer) fitsDie(b Block, pos Point) bool {
	return pos.X >= 0 && pos.Y >= 0 &&
		pos.X+b.Width <= a.Die.Width && pos.Y+b.Height <= a.Die.Height
}

// SimulatedAnnealing is the convenience entry point used by the CLI and other
// in-process callers: it builds an Annealer, runs it to completion, and
// returns the best placement, its cost breakdown, and the convergence flag.
func SimulatedAnnealing(ctx context.Context, blocks []Block, nets []Net, die Die, seed int64, schedule Schedule) (Placement, CostBreakdown, bool, error) {
	a, err := NewAnnealer(blocks, nets, die, seed, schedule)
	if err != nil {
		return nil, CostBreakdown{}, false, err
	}
	res, err := a.Run(ctx)
	if err != nil {
		return nil, CostBreakdown{}, false, err
	}
	return res.Best, res.Cost, res.Converged, nil
}
