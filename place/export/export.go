// Package export serializes run results into UI-friendly JSON reports. It is
// the output adapter between the engine and whatever renders the placement;
// values here are display copies, and nothing in a report ever feeds back into
// cost evaluation or the search.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/laiopt/laiopt/place"
	"github.com/laiopt/laiopt/place/trace"
)

// Rect is one placed block in display form, with the derived center included
// so plotting code does not recompute geometry.
type Rect struct {
	ID      string  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Power   int     `json:"power"`
	Heat    int     `json:"heat"`
}

// Report is the serialized outcome of one annealing run.
type Report struct {
	RunID        string              `json:"run_id"`
	Seed         int64               `json:"seed"`
	DieWidth     float64             `json:"die_width"`
	DieHeight    float64             `json:"die_height"`
	Converged    bool                `json:"converged"`
	Cost         place.CostBreakdown `json:"cost"`
	BaselineCost place.CostBreakdown `json:"baseline_cost"`
	Blocks       []Rect              `json:"blocks"`
	Baseline     []Rect              `json:"baseline_blocks"`
	TraceSummary *trace.Summary      `json:"trace_summary,omitempty"`
}

// BuildReport assembles a Report from a run result. Rectangles are sorted by
// block id so the report bytes are stable for a given result.
func BuildReport(res *place.Result, blocks []place.Block, die place.Die, seed int64) *Report {
	return &Report{
		RunID:        uuid.NewString(),
		Seed:         seed,
		DieWidth:     die.Width,
		DieHeight:    die.Height,
		Converged:    res.Converged,
		Cost:         res.Cost,
		BaselineCost: res.BaselineCost,
		Blocks:       rects(res.Best, blocks),
		Baseline:     rects(res.Baseline, blocks),
		TraceSummary: trace.Summarize(res.Trace),
	}
}

// WriteJSON writes the report to path as indented JSON.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func rects(p place.Placement, blocks []place.Block) []Rect {
	out := make([]Rect, 0, len(p))
	for _, b := range blocks {
		pos, ok := p[b.ID]
		if !ok {
			continue
		}
		c := b.CenterAt(pos)
		out = append(out, Rect{
			ID: b.ID, X: pos.X, Y: pos.Y,
			Width: b.Width, Height: b.Height,
			CenterX: c.X, CenterY: c.Y,
			Power: b.Power, Heat: b.Heat,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
