package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/laiopt/laiopt/place"
	"github.com/laiopt/laiopt/place/trace"
)

// ScheduleSpec mirrors place.Schedule for YAML scenarios. Fields are pointers
// so an explicit zero (a zero-iteration budget, a zero swap probability) is
// distinguishable from an omitted field; omitted fields fall back to the
// defaults from place.DefaultSchedule.
type ScheduleSpec struct {
	T0              *float64 `yaml:"t0,omitempty"`
	Alpha           *float64 `yaml:"alpha,omitempty"`
	EpochLength     *int     `yaml:"epoch_length,omitempty"`
	TMin            *float64 `yaml:"t_min,omitempty"`
	MaxIterations   *int     `yaml:"max_iterations,omitempty"`
	SwapProbability *float64 `yaml:"swap_probability,omitempty"`
}

// DieSpec defines the placement boundary.
type DieSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Scenario is the top-level run configuration.
// Loaded from YAML via LoadScenario(path).
type Scenario struct {
	BlocksPath string       `yaml:"blocks"`
	NetsPath   string       `yaml:"nets,omitempty"`
	Die        DieSpec      `yaml:"die"`
	Seed       int64        `yaml:"seed"`
	Schedule   ScheduleSpec `yaml:"schedule,omitempty"`
	TraceLevel string       `yaml:"trace,omitempty"`
	OutputPath string       `yaml:"output,omitempty"`
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks scenario fields that the engine cannot check itself.
func (sc *Scenario) Validate() error {
	if sc.BlocksPath == "" {
		return fmt.Errorf("blocks path is required")
	}
	if sc.Die.Width <= 0 || sc.Die.Height <= 0 {
		return fmt.Errorf("die dimensions must be strictly positive, got %gx%g",
			sc.Die.Width, sc.Die.Height)
	}
	if !trace.IsValidLevel(sc.TraceLevel) {
		return fmt.Errorf("unknown trace level %q", sc.TraceLevel)
	}
	return nil
}

// EngineSchedule resolves the scenario schedule against the engine defaults.
// Only omitted (nil) fields take the default; explicit values, including
// explicit zeros, pass through to the engine untouched.
func (sc *Scenario) EngineSchedule() place.Schedule {
	s := place.DefaultSchedule()
	if sc.Schedule.T0 != nil {
		s.T0 = *sc.Schedule.T0
	}
	if sc.Schedule.Alpha != nil {
		s.Alpha = *sc.Schedule.Alpha
	}
	if sc.Schedule.EpochLength != nil {
		s.EpochLength = *sc.Schedule.EpochLength
	}
	if sc.Schedule.TMin != nil {
		s.TMin = *sc.Schedule.TMin
	}
	if sc.Schedule.MaxIterations != nil {
		s.MaxIterations = *sc.Schedule.MaxIterations
	}
	if sc.Schedule.SwapProbability != nil {
		s.SwapProbability = *sc.Schedule.SwapProbability
	}
	return s
}
