package place

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlock_Validation(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		w, h    float64
		power   int
		heat    int
		wantErr bool
	}{
		{"valid", "b1", 10, 5, 1, 2, false},
		{"zero power and heat", "b2", 1, 1, 0, 0, false},
		{"empty id", "", 10, 5, 0, 0, true},
		{"zero width", "b1", 0, 5, 0, 0, true},
		{"negative height", "b1", 10, -5, 0, 0, true},
		{"negative power", "b1", 10, 5, -1, 0, true},
		{"negative heat", "b1", 10, 5, 0, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBlock(tt.id, tt.w, tt.h, tt.power, tt.heat)
			if tt.wantErr {
				var invalid *InvalidBlockError
				require.Error(t, err)
				assert.True(t, errors.As(err, &invalid))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, b.ID)
			assert.Equal(t, tt.w, b.Width)
			assert.Equal(t, tt.h, b.Height)
		})
	}
}

func TestBlock_DerivedGeometry(t *testing.T) {
	b, err := NewBlock("b1", 10, 4, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 40.0, b.Area())
	assert.Equal(t, Point{X: 8, Y: 5}, b.CenterAt(Point{X: 3, Y: 3}))
}

func TestNewNet_Validation(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		members []string
		weight  float64
		wantErr bool
	}{
		{"valid pair", "n1", []string{"a", "b"}, 1.0, false},
		{"valid multi", "n2", []string{"a", "b", "c"}, 0, false},
		{"empty id", "", []string{"a", "b"}, 1, true},
		{"single member", "n1", []string{"a"}, 1, true},
		{"duplicate members", "n1", []string{"a", "a"}, 1, true},
		{"negative weight", "n1", []string{"a", "b"}, -0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewNet(tt.id, tt.members, tt.weight)
			if tt.wantErr {
				var invalid *InvalidNetError
				require.Error(t, err)
				assert.True(t, errors.As(err, &invalid))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.members, n.Members)
		})
	}
}

func TestNewNet_CopiesMembers(t *testing.T) {
	members := []string{"a", "b"}
	n, err := NewNet("n1", members, 1)
	require.NoError(t, err)

	members[0] = "mutated"
	assert.Equal(t, "a", n.Members[0])
}

func TestNewDie_Validation(t *testing.T) {
	_, err := NewDie(0, 10)
	var invalid *InvalidDieError
	assert.True(t, errors.As(err, &invalid))

	d, err := NewDie(20, 30)
	require.NoError(t, err)
	assert.Equal(t, Die{Width: 20, Height: 30}, d)
}

func TestTotalArea(t *testing.T) {
	blocks := mustBlocks(t, [][2]float64{{10, 10}, {5, 4}})
	assert.Equal(t, 120.0, TotalArea(blocks))
	assert.Equal(t, 0.0, TotalArea(nil))
}

func TestValidateNets_UnknownReference(t *testing.T) {
	blocks := mustBlocks(t, [][2]float64{{10, 10}, {5, 4}})
	n, err := NewNet("n1", []string{"b0", "ghost"}, 1)
	require.NoError(t, err)

	err = ValidateNets(blocks, []Net{n})
	var unknown *UnknownBlockReferenceError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "ghost", unknown.BlockID)
}

func TestValidateBlocks(t *testing.T) {
	ok := mustBlocks(t, [][2]float64{{10, 10}, {5, 4}})
	assert.NoError(t, ValidateBlocks(ok))
	assert.NoError(t, ValidateBlocks(nil))

	var invalid *InvalidBlockError

	bad := Block{ID: "bad", Width: 0, Height: 5}
	err := ValidateBlocks([]Block{bad})
	require.True(t, errors.As(err, &invalid))

	dup, _ := NewBlock("b0", 3, 3, 0, 0)
	err = ValidateBlocks(append(ok, dup))
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "b0", invalid.ID)
}

func TestPlacement_CloneIsIndependent(t *testing.T) {
	p := Placement{"a": {X: 1, Y: 2}}
	q := p.Clone()
	q["a"] = Point{X: 9, Y: 9}

	assert.Equal(t, Point{X: 1, Y: 2}, p["a"])
}

// mustBlocks builds blocks b0..bN with the given dimensions.
func mustBlocks(t *testing.T, dims [][2]float64) []Block {
	t.Helper()
	blocks := make([]Block, 0, len(dims))
	for i, d := range dims {
		b, err := NewBlock(blockID(i), d[0], d[1], 0, 0)
		if err != nil {
			t.Fatalf("mustBlocks: %v", err)
		}
		blocks = append(blocks, b)
	}
	return blocks
}

func blockID(i int) string {
	return "b" + string(rune('0'+i))
}
