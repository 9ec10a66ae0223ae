// Implements the deterministic baseline placer: a shelf (row) packer that
// hands the annealer a legal, reproducible starting point. It is intentionally
// simple and non-optimal; wirelength is the annealer's job.

package place

import "sort"

// BaselinePlacement packs blocks into left-to-right rows, tallest blocks
// first. Identical inputs always yield an identical output; no randomness is
// involved.
//
// Blocks are sorted by decreasing height, ties broken by ascending id, then
// placed at a cursor that advances rightward and opens a new row when the
// current one is full. The result is legal by construction: rows never
// overlap and no block crosses the die boundary.
//
// Returns InfeasibleDieError when a block cannot fit even at the start of a
// fresh row, and InvalidBlockError/InvalidDieError on malformed inputs.
func BaselinePlacement(blocks []Block, die Die) (Placement, error) {
	if die.Width <= 0 || die.Height <= 0 {
		return nil, &InvalidDieError{Width: die.Width, Height: die.Height}
	}
	if err := ValidateBlocks(blocks); err != nil {
		return nil, err
	}

	sorted := make([]Block, len(blocks))
	copy(sorted, blocks)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Height != sorted[j].Height {
			return sorted[i].Height > sorted[j].Height
		}
		return sorted[i].ID < sorted[j].ID
	})

	placement := make(Placement, len(sorted))
	rowY, rowX, rowHeight := 0.0, 0.0, 0.0

	for _, b := range sorted {
		if b.Width > die.Width {
			// No row can ever hold this block.
			return nil, &InfeasibleDieError{BlockID: b.ID,
				DieWidth: die.Width, DieHeight: die.Height}
		}
		if rowX+b.Width > die.Width {
			// Close the row and start a new one.
			rowY += rowHeight
			rowX = 0
			rowHeight = 0
		}
		if rowY+b.Height > die.Height {
			return nil, &InfeasibleDieError{BlockID: b.ID,
				DieWidth: die.Width, DieHeight: die.Height}
		}
		placement[b.ID] = Point{X: rowX, Y: rowY}
		rowX += b.Width
		if b.Height > rowHeight {
			rowHeight = b.Height
		}
	}

	return placement, nil
}
