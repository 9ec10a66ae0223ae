// Defines the physical data model for macro placement: blocks, nets, the die
// boundary, and placements. These are immutable value types; all behavior
// beyond validation lives in the baseline, cost, and annealing code.

package place

// Point is a coordinate pair on the die, in the same units as block and die
// dimensions. The origin is the bottom-left corner of the die.
type Point struct {
	X float64
	Y float64
}

// Block is a rectangular macro with fixed dimensions. Power and heat are
// ordinal levels carried through from the input data; the engine does not
// simulate them, but adapters and future cost terms may read them.
// Blocks are immutable once constructed via NewBlock.
type Block struct {
	ID     string
	Width  float64
	Height float64
	Power  int
	Heat   int
}

// NewBlock validates and constructs a Block.
// Width and height must be strictly positive; power and heat non-negative.
func NewBlock(id string, width, height float64, power, heat int) (Block, error) {
	if id == "" {
		return Block{}, &InvalidBlockError{ID: id, Reason: "empty id"}
	}
	if width <= 0 || height <= 0 {
		return Block{}, &InvalidBlockError{ID: id,
			Reason: "width and height must be strictly positive"}
	}
	if power < 0 {
		return Block{}, &InvalidBlockError{ID: id, Reason: "power must be non-negative"}
	}
	if heat < 0 {
		return Block{}, &InvalidBlockError{ID: id, Reason: "heat must be non-negative"}
	}
	return Block{ID: id, Width: width, Height: height, Power: power, Heat: heat}, nil
}

// Area returns the block footprint area.
func (b Block) Area() float64 {
	return b.Width * b.Height
}

// CenterAt returns the block center for a given bottom-left position.
func (b Block) CenterAt(pos Point) Point {
	return Point{X: pos.X + b.Width/2, Y: pos.Y + b.Height/2}
}

// Net is a weighted connectivity relation among two or more distinct blocks.
// It references blocks by id only and owns nothing.
type Net struct {
	ID      string
	Members []string
	Weight  float64
}

// NewNet validates and constructs a Net. Members must name at least two
// distinct blocks; weight must be non-negative. Whether the member ids exist
// in a given block set is checked separately by ValidateNets, since a Net has
// no view of the model it will be evaluated against.
func NewNet(id string, members []string, weight float64) (Net, error) {
	if id == "" {
		return Net{}, &InvalidNetError{ID: id, Reason: "empty id"}
	}
	if weight < 0 {
		return Net{}, &InvalidNetError{ID: id, Reason: "weight must be non-negative"}
	}
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if seen[m] {
			return Net{}, &InvalidNetError{ID: id, Reason: "duplicate member " + m}
		}
		seen[m] = true
	}
	if len(seen) < 2 {
		return Net{}, &InvalidNetError{ID: id, Reason: "needs at least 2 distinct members"}
	}
	ms := make([]string, len(members))
	copy(ms, members)
	return Net{ID: id, Members: ms, Weight: weight}, nil
}

// Die is the rectangular placement boundary, immutable for a run.
type Die struct {
	Width  float64
	Height float64
}

// NewDie validates and constructs a Die.
func NewDie(width, height float64) (Die, error) {
	if width <= 0 || height <= 0 {
		return Die{}, &InvalidDieError{Width: width, Height: height}
	}
	return Die{Width: width, Height: height}, nil
}

// Placement maps block ids to bottom-left corner coordinates. Placements are
// treated as immutable values: every candidate the annealer proposes is a
// fresh copy, never an in-place mutation of a shared map.
type Placement map[string]Point

// Clone returns an independent copy of the placement.
func (p Placement) Clone() Placement {
	out := make(Placement, len(p))
	for id, pos := range p {
		out[id] = pos
	}
	return out
}

// TotalArea sums the footprint areas of a block set. Used by the baseline
// generator and die-capacity checks.
func TotalArea(blocks []Block) float64 {
	total := 0.0
	for _, b := range blocks {
		total += b.Area()
	}
	return total
}

// ValidateBlocks checks the block-set invariants that hold at every engine
// boundary: strictly positive dimensions and unique ids. A duplicate id is
// rejected rather than letting a map silently collapse two blocks into one.
func ValidateBlocks(blocks []Block) error {
	seen := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		if b.Width <= 0 || b.Height <= 0 {
			return &InvalidBlockError{ID: b.ID,
				Reason: "width and height must be strictly positive"}
		}
		if seen[b.ID] {
			return &InvalidBlockError{ID: b.ID, Reason: "duplicate id"}
		}
		seen[b.ID] = true
	}
	return nil
}

// BlockIndex builds an id lookup for a block set.
func BlockIndex(blocks []Block) map[string]Block {
	idx := make(map[string]Block, len(blocks))
	for _, b := range blocks {
		idx[b.ID] = b
	}
	return idx
}

// ValidateNets checks that every net member exists in the supplied block set.
// Returns an UnknownBlockReferenceError naming the offending net on failure.
func ValidateNets(blocks []Block, nets []Net) error {
	idx := BlockIndex(blocks)
	for _, n := range nets {
		for _, m := range n.Members {
			if _, ok := idx[m]; !ok {
				return &UnknownBlockReferenceError{BlockID: m, Context: "net " + n.ID}
			}
		}
	}
	return nil
}
