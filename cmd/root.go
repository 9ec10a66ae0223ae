package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/laiopt/laiopt/place"
	"github.com/laiopt/laiopt/place/csvio"
	"github.com/laiopt/laiopt/place/export"
	"github.com/laiopt/laiopt/place/trace"
)

var (
	// CLI flags for run inputs
	scenarioPath string  // YAML scenario file; overrides the individual flags below
	blocksPath   string  // Blocks CSV (id,width,height,power,heat)
	netsPath     string  // Nets CSV (net_id,members,weight)
	dieWidth     float64 // Die width
	dieHeight    float64 // Die height
	seed         int64   // Seed for the run's pseudo-random generator
	logLevel     string  // Log verbosity level
	traceLevel   string  // Trace level (none, epochs)
	outputPath   string  // Optional JSON report destination
	timeoutSecs  int     // Optional wall-clock budget in seconds (0 = none)

	// CLI flags for the cooling schedule
	t0            float64
	alpha         float64
	epochLength   int
	tMin          float64
	maxIterations int
	swapProb      float64
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "laiopt",
	Short: "Simulated-annealing macro placement engine",
}

// runCmd executes a placement run using parameters from CLI flags or a scenario file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run baseline placement and simulated annealing",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q", logLevel)
		}
		logrus.SetLevel(level)

		sc := flagScenario()
		if scenarioPath != "" {
			loaded, err := LoadScenario(scenarioPath)
			if err != nil {
				return err
			}
			sc = loaded
		} else if err := sc.Validate(); err != nil {
			return err
		}

		blocks, err := csvio.LoadBlocks(sc.BlocksPath)
		if err != nil {
			return err
		}
		var nets []place.Net
		if sc.NetsPath != "" {
			if nets, err = csvio.LoadNets(sc.NetsPath); err != nil {
				return err
			}
		}
		die, err := place.NewDie(sc.Die.Width, sc.Die.Height)
		if err != nil {
			return err
		}

		annealer, err := place.NewAnnealer(blocks, nets, die, sc.Seed, sc.EngineSchedule())
		if err != nil {
			return err
		}
		annealer.Tracing = trace.Config{Level: trace.Level(sc.TraceLevel)}

		ctx := context.Background()
		if timeoutSecs > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSecs)*time.Second)
			defer cancel()
		}

		start := time.Now()
		res, err := annealer.Run(ctx)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Println("=== Placement Result ===")
		fmt.Printf("Converged            : %v\n", res.Converged)
		fmt.Printf("Baseline Cost        : %.4f (wirelength %.4f)\n",
			res.BaselineCost.Total, res.BaselineCost.Wirelength)
		fmt.Printf("Best Cost            : %.4f (wirelength %.4f)\n",
			res.Cost.Total, res.Cost.Wirelength)
		fmt.Printf("Elapsed              : %s\n", elapsed)
		res.Metrics.Print()

		if sc.OutputPath != "" {
			report := export.BuildReport(res, blocks, die, sc.Seed)
			if err := report.WriteJSON(sc.OutputPath); err != nil {
				return err
			}
			logrus.Infof("wrote report to %s", sc.OutputPath)
		}
		return nil
	},
}

// flagScenario assembles a Scenario from the individual CLI flags. Flags
// always carry a value (cobra fills in defaults), so every schedule field is
// explicit here and an expression like --max-iterations 0 reaches the engine
// as a real zero-iteration budget.
func flagScenario() *Scenario {
	return &Scenario{
		BlocksPath: blocksPath,
		NetsPath:   netsPath,
		Die:        DieSpec{Width: dieWidth, Height: dieHeight},
		Seed:       seed,
		Schedule: ScheduleSpec{
			T0:              &t0,
			Alpha:           &alpha,
			EpochLength:     &epochLength,
			TMin:            &tMin,
			MaxIterations:   &maxIterations,
			SwapProbability: &swapProb,
		},
		TraceLevel: traceLevel,
		OutputPath: outputPath,
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (overrides input flags)")
	runCmd.Flags().StringVar(&blocksPath, "blocks", "blocks.csv", "Blocks CSV path")
	runCmd.Flags().StringVar(&netsPath, "nets", "", "Nets CSV path (optional)")
	runCmd.Flags().Float64Var(&dieWidth, "die-width", 100, "Die width")
	runCmd.Flags().Float64Var(&dieHeight, "die-height", 100, "Die height")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the run's random generator")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Trace level (none, epochs)")
	runCmd.Flags().StringVar(&outputPath, "out", "", "Write a JSON report to this path")
	runCmd.Flags().IntVar(&timeoutSecs, "timeout", 0, "Wall-clock budget in seconds (0 = unbounded)")

	// Cooling schedule (zero values fall back to engine defaults)
	runCmd.Flags().Float64Var(&t0, "t0", 1000.0, "Initial temperature")
	runCmd.Flags().Float64Var(&alpha, "alpha", 0.95, "Geometric cooling factor in (0,1)")
	runCmd.Flags().IntVar(&epochLength, "epoch-length", 100, "Iterations per cooling epoch")
	runCmd.Flags().Float64Var(&tMin, "t-min", 0.001, "Terminal temperature")
	runCmd.Flags().IntVar(&maxIterations, "max-iterations", 200000, "Iteration budget")
	runCmd.Flags().Float64Var(&swapProb, "swap-prob", 0.3, "Probability a move is a two-block swap")

	rootCmd.AddCommand(runCmd)
}
