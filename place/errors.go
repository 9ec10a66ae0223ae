package place

import "fmt"

// InvalidBlockError reports a block that failed construction-time validation.
type InvalidBlockError struct {
	ID     string
	Reason string
}

func (e *InvalidBlockError) Error() string {
	return fmt.Sprintf("invalid block %q: %s", e.ID, e.Reason)
}

// InvalidNetError reports a net that failed construction-time validation.
type InvalidNetError struct {
	ID     string
	Reason string
}

func (e *InvalidNetError) Error() string {
	return fmt.Sprintf("invalid net %q: %s", e.ID, e.Reason)
}

// InvalidDieError reports a die with non-positive dimensions.
type InvalidDieError struct {
	Width  float64
	Height float64
}

func (e *InvalidDieError) Error() string {
	return fmt.Sprintf("invalid die %gx%g: dimensions must be strictly positive", e.Width, e.Height)
}

// InfeasibleDieError reports that row packing cannot fit all blocks in the die.
// This is a reported condition, never silently recovered.
type InfeasibleDieError struct {
	BlockID   string
	DieWidth  float64
	DieHeight float64
}

func (e *InfeasibleDieError) Error() string {
	return fmt.Sprintf("die %gx%g cannot fit block %q under row packing",
		e.DieWidth, e.DieHeight, e.BlockID)
}

// UnknownBlockReferenceError reports a placement or net referring to a block
// id that is absent from the supplied block set.
type UnknownBlockReferenceError struct {
	BlockID string
	Context string // "placement" or the referencing net id
}

func (e *UnknownBlockReferenceError) Error() string {
	return fmt.Sprintf("unknown block reference %q in %s", e.BlockID, e.Context)
}
