// Implements the placement cost function: weighted half-perimeter wirelength
// plus penalty terms that price overlap and boundary violations. The
// evaluator is a pure function of its inputs and keeps no state; breakdowns
// are always recomputable and never cached as authoritative.

package place

import "math"

// CostBreakdown decomposes a placement's cost into its terms.
// Total = Wirelength + KOverlap*Overlap + KBoundary*Boundary, with the
// K coefficients taken from the CostConfig that produced the breakdown.
type CostBreakdown struct {
	Wirelength float64 `json:"wirelength"`
	Overlap    float64 `json:"overlap"`
	Boundary   float64 `json:"boundary"`
	Total      float64 `json:"total"`
}

// Legal reports whether the evaluated placement had zero overlap area and
// zero boundary excess.
func (c CostBreakdown) Legal() bool {
	return c.Overlap == 0 && c.Boundary == 0
}

// Penalty coefficients. Both are deliberately large: no amount of wirelength
// improvement on a sane die can justify introducing or growing a violation
// of either hard constraint.
const (
	DefaultKOverlap  = 1e6
	DefaultKBoundary = 1e6
)

// CostConfig carries the run's penalty coefficients. The zero value is not
// usable; obtain one from DefaultCostConfig.
type CostConfig struct {
	KOverlap  float64
	KBoundary float64
}

// DefaultCostConfig returns the documented default coefficients.
func DefaultCostConfig() CostConfig {
	return CostConfig{KOverlap: DefaultKOverlap, KBoundary: DefaultKBoundary}
}

// TotalCost evaluates a placement under the default cost configuration.
// It fails with UnknownBlockReferenceError when the placement or a net refers
// to a block missing from the supplied sets; it never fails on legal inputs.
func TotalCost(p Placement, blocks []Block, nets []Net, die Die) (CostBreakdown, error) {
	return DefaultCostConfig().Evaluate(p, blocks, nets, die)
}

// Evaluate computes the cost breakdown of a placement.
//
// Wirelength: per net, the half-perimeter of the bounding box of its member
// block centers, scaled by the net weight. Overlap: summed positive-area
// pairwise rectangle intersections. Boundary: summed excess distance past any
// die edge. Terms are accumulated in a fixed order (input slice order) so
// identical inputs produce bit-identical floats.
func (cfg CostConfig) Evaluate(p Placement, blocks []Block, nets []Net, die Die) (CostBreakdown, error) {
	if err := ValidateBlocks(blocks); err != nil {
		return CostBreakdown{}, err
	}
	idx := BlockIndex(blocks)
	for id := range p {
		if _, ok := idx[id]; !ok {
			return CostBreakdown{}, &UnknownBlockReferenceError{BlockID: id, Context: "placement"}
		}
	}

	wirelength := 0.0
	for _, n := range nets {
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, m := range n.Members {
			b, ok := idx[m]
			if !ok {
				return CostBreakdown{}, &UnknownBlockReferenceError{BlockID: m, Context: "net " + n.ID}
			}
			pos, ok := p[m]
			if !ok {
				return CostBreakdown{}, &UnknownBlockReferenceError{BlockID: m, Context: "placement for net " + n.ID}
			}
			c := b.CenterAt(pos)
			minX = math.Min(minX, c.X)
			maxX = math.Max(maxX, c.X)
			minY = math.Min(minY, c.Y)
			maxY = math.Max(maxY, c.Y)
		}
		wirelength += n.Weight * ((maxX - minX) + (maxY - minY))
	}

	// Placed blocks in input slice order; map iteration would make the float
	// accumulation order, and therefore the bits of the result, run-dependent.
	placed := make([]Block, 0, len(blocks))
	positions := make([]Point, 0, len(blocks))
	for _, b := range blocks {
		if pos, ok := p[b.ID]; ok {
			placed = append(placed, b)
			positions = append(positions, pos)
		}
	}

	overlap := 0.0
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			overlap += intersectionArea(placed[i], positions[i], placed[j], positions[j])
		}
	}

	boundary := 0.0
	for i, b := range placed {
		boundary += boundaryExcess(b, positions[i], die)
	}

	cost := CostBreakdown{Wirelength: wirelength, Overlap: overlap, Boundary: boundary}
	cost.Total = wirelength + cfg.KOverlap*overlap + cfg.KBoundary*boundary
	return cost, nil
}

// intersectionArea returns the positive-area intersection of two placed
// blocks, or 0 when they merely touch or are disjoint.
func intersectionArea(a Block, pa Point, b Block, pb Point) float64 {
	dx := math.Min(pa.X+a.Width, pb.X+b.Width) - math.Max(pa.X, pb.X)
	if dx <= 0 {
		return 0
	}
	dy := math.Min(pa.Y+a.Height, pb.Y+b.Height) - math.Max(pa.Y, pb.Y)
	if dy <= 0 {
		return 0
	}
	return dx * dy
}

// boundaryExcess returns the summed distance by which a placed block extends
// past the die on any side.
func boundaryExcess(b Block, pos Point, die Die) float64 {
	excess := 0.0
	if pos.X < 0 {
		excess += -pos.X
	}
	if pos.Y < 0 {
		excess += -pos.Y
	}
	if over := pos.X + b.Width - die.Width; over > 0 {
		excess += over
	}
	if over := pos.Y + b.Height - die.Height; over > 0 {
		excess += over
	}
	return excess
}
