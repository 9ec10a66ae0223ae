// Tracks run-wide counters for final reporting. Useful for judging search
// behavior (acceptance rate, move mix) and debugging schedule choices.

package place

import "fmt"

// Metrics aggregates statistics about one annealing run.
type Metrics struct {
	Iterations    int // Total candidate moves attempted
	Accepted      int // Moves accepted by the Metropolis rule
	Rejected      int // Moves rejected
	Repositions   int // Single-block reposition moves proposed
	Swaps         int // Swap moves proposed
	SwapFallbacks int // Swaps that fell back to reposition on a boundary check
	BestUpdates   int // Times the best placement was replaced
	Epochs        int // Completed cooling epochs

	FinalTemperature float64 // Temperature when the run stopped
}

// AcceptanceRate returns the fraction of attempted moves that were accepted.
func (m *Metrics) AcceptanceRate() float64 {
	if m.Iterations == 0 {
		return 0
	}
	return float64(m.Accepted) / float64(m.Iterations)
}

// Print displays aggregated metrics at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Annealing Metrics ===")
	fmt.Printf("Iterations           : %d\n", m.Iterations)
	fmt.Printf("Accepted / Rejected  : %d / %d\n", m.Accepted, m.Rejected)
	fmt.Printf("Acceptance Rate      : %.3f\n", m.AcceptanceRate())
	fmt.Printf("Repositions / Swaps  : %d / %d (%d swap fallbacks)\n",
		m.Repositions, m.Swaps, m.SwapFallbacks)
	fmt.Printf("Best Updates         : %d\n", m.BestUpdates)
	fmt.Printf("Cooling Epochs       : %d\n", m.Epochs)
	fmt.Printf("Final Temperature    : %g\n", m.FinalTemperature)
}
