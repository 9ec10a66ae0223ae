// Package trace provides run-trace recording for annealing analysis.
// This package has no dependencies on place/; it stores pure data types.
package trace

// EpochRecord captures the state of the search at the close of one cooling
// epoch, before the temperature decays.
type EpochRecord struct {
	Epoch       int     `json:"epoch"`
	Temperature float64 `json:"temperature"`
	Iterations  int     `json:"iterations"`
	Accepted    int     `json:"accepted"`
	CurrentCost float64 `json:"current_cost"`
	BestCost    float64 `json:"best_cost"`
}
