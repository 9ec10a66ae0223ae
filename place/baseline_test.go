package place

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaselinePlacement_TwoBlocksOneRow(t *testing.T) {
	// Two 10x10 blocks on a 20x20 die pack left-to-right in a single row.
	blocks := mustBlocks(t, [][2]float64{{10, 10}, {10, 10}})
	die := Die{Width: 20, Height: 20}

	p, err := BaselinePlacement(blocks, die)
	require.NoError(t, err)

	assert.Equal(t, Point{X: 0, Y: 0}, p["b0"])
	assert.Equal(t, Point{X: 10, Y: 0}, p["b1"])
}

func TestBaselinePlacement_Deterministic(t *testing.T) {
	blocks := mustBlocks(t, [][2]float64{{10, 10}, {6, 8}, {4, 8}, {12, 3}})
	die := Die{Width: 20, Height: 30}

	p1, err := BaselinePlacement(blocks, die)
	require.NoError(t, err)
	p2, err := BaselinePlacement(blocks, die)
	require.NoError(t, err)

	assert.Equal(t, p1, p2)

	// Input order must not matter either: the packer sorts internally.
	reversed := []Block{blocks[3], blocks[2], blocks[1], blocks[0]}
	p3, err := BaselinePlacement(reversed, die)
	require.NoError(t, err)
	assert.Equal(t, p1, p3)
}

func TestBaselinePlacement_SortsByHeightThenID(t *testing.T) {
	// Same height: id order decides. Different height: taller first.
	b1, _ := NewBlock("z", 5, 10, 0, 0)
	b2, _ := NewBlock("a", 5, 10, 0, 0)
	b3, _ := NewBlock("m", 5, 12, 0, 0)
	die := Die{Width: 100, Height: 100}

	p, err := BaselinePlacement([]Block{b1, b2, b3}, die)
	require.NoError(t, err)

	assert.Equal(t, Point{X: 0, Y: 0}, p["m"]) // tallest first
	assert.Equal(t, Point{X: 5, Y: 0}, p["a"])
	assert.Equal(t, Point{X: 10, Y: 0}, p["z"])
}

func TestBaselinePlacement_OpensNewRow(t *testing.T) {
	blocks := mustBlocks(t, [][2]float64{{8, 10}, {8, 10}, {8, 6}})
	die := Die{Width: 20, Height: 20}

	p, err := BaselinePlacement(blocks, die)
	require.NoError(t, err)

	// b0, b1 fill the first row (16 of 20 wide); b2 cannot fit and starts a
	// second row at the first row's height.
	assert.Equal(t, Point{X: 0, Y: 0}, p["b0"])
	assert.Equal(t, Point{X: 8, Y: 0}, p["b1"])
	assert.Equal(t, Point{X: 0, Y: 10}, p["b2"])
}

func TestBaselinePlacement_ResultIsLegal(t *testing.T) {
	blocks := mustBlocks(t, [][2]float64{{10, 10}, {6, 8}, {4, 8}, {12, 3}, {3, 3}, {5, 5}})
	die := Die{Width: 25, Height: 25}

	p, err := BaselinePlacement(blocks, die)
	require.NoError(t, err)

	cost, err := TotalCost(p, blocks, nil, die)
	require.NoError(t, err)
	assert.Zero(t, cost.Overlap)
	assert.Zero(t, cost.Boundary)
	assert.True(t, cost.Legal())
}

func TestBaselinePlacement_InfeasibleDie(t *testing.T) {
	tests := []struct {
		name string
		dims [][2]float64
		die  Die
	}{
		{"rows exceed die height", [][2]float64{{10, 10}, {10, 10}, {10, 10}}, Die{Width: 10, Height: 20}},
		{"block wider than die", [][2]float64{{30, 5}}, Die{Width: 20, Height: 20}},
		{"block taller than die", [][2]float64{{5, 30}}, Die{Width: 20, Height: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BaselinePlacement(mustBlocks(t, tt.dims), tt.die)
			var infeasible *InfeasibleDieError
			require.Error(t, err)
			assert.True(t, errors.As(err, &infeasible))
		})
	}
}

func TestBaselinePlacement_InvalidInputs(t *testing.T) {
	_, err := BaselinePlacement(nil, Die{Width: 0, Height: 10})
	var invalidDie *InvalidDieError
	assert.True(t, errors.As(err, &invalidDie))

	bad := Block{ID: "bad", Width: -1, Height: 5}
	_, err = BaselinePlacement([]Block{bad}, Die{Width: 10, Height: 10})
	var invalidBlock *InvalidBlockError
	assert.True(t, errors.As(err, &invalidBlock))
}

func TestBaselinePlacement_RejectsDuplicateIDs(t *testing.T) {
	// Two blocks sharing an id must fail loudly; a placement map would
	// otherwise collapse them into one entry and quietly drop a block.
	a, err := NewBlock("dup", 10, 10, 0, 0)
	require.NoError(t, err)
	b, err := NewBlock("dup", 5, 5, 0, 0)
	require.NoError(t, err)

	_, err = BaselinePlacement([]Block{a, b}, Die{Width: 40, Height: 40})
	var invalid *InvalidBlockError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "dup", invalid.ID)
}

func TestBaselinePlacement_EmptyBlockSet(t *testing.T) {
	p, err := BaselinePlacement(nil, Die{Width: 10, Height: 10})
	require.NoError(t, err)
	assert.Empty(t, p)
}
