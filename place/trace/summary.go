package trace

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates statistics from a RunTrace.
type Summary struct {
	EpochCount       int     `json:"epoch_count"`
	TotalIterations  int     `json:"total_iterations"`
	TotalAccepted    int     `json:"total_accepted"`
	AcceptanceRate   float64 `json:"acceptance_rate"`
	MeanCurrentCost  float64 `json:"mean_current_cost"`
	StdCurrentCost   float64 `json:"std_current_cost"`
	MedianBestCost   float64 `json:"median_best_cost"`
	FinalTemperature float64 `json:"final_temperature"`
	FinalBestCost    float64 `json:"final_best_cost"`
}

// Summarize computes aggregate statistics from a RunTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RunTrace) *Summary {
	summary := &Summary{}
	if rt == nil || len(rt.Epochs) == 0 {
		return summary
	}

	summary.EpochCount = len(rt.Epochs)

	currentCosts := make([]float64, 0, len(rt.Epochs))
	bestCosts := make([]float64, 0, len(rt.Epochs))
	for _, e := range rt.Epochs {
		summary.TotalIterations += e.Iterations
		summary.TotalAccepted += e.Accepted
		currentCosts = append(currentCosts, e.CurrentCost)
		bestCosts = append(bestCosts, e.BestCost)
	}
	if summary.TotalIterations > 0 {
		summary.AcceptanceRate = float64(summary.TotalAccepted) / float64(summary.TotalIterations)
	}

	summary.MeanCurrentCost = stat.Mean(currentCosts, nil)
	if len(currentCosts) > 1 {
		summary.StdCurrentCost = stat.StdDev(currentCosts, nil)
	}

	sort.Float64s(bestCosts)
	summary.MedianBestCost = stat.Quantile(0.5, stat.Empirical, bestCosts, nil)

	last := rt.Epochs[len(rt.Epochs)-1]
	summary.FinalTemperature = last.Temperature
	summary.FinalBestCost = last.BestCost

	return summary
}
