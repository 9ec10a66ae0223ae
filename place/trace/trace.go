package trace

// Level controls the verbosity of run tracing.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelEpochs captures one record per cooling epoch.
	LevelEpochs Level = "epochs"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:   true,
	LevelEpochs: true,
	"":          true, // empty defaults to none
}

// IsValidLevel returns true if the given level string is a recognized trace level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// Config controls trace collection behavior.
type Config struct {
	Level Level
}

// RunTrace collects epoch records during an annealing run.
type RunTrace struct {
	Config Config
	Epochs []EpochRecord
}

// NewRunTrace creates a RunTrace ready for recording.
func NewRunTrace(config Config) *RunTrace {
	return &RunTrace{
		Config: config,
		Epochs: make([]EpochRecord, 0),
	}
}

// RecordEpoch appends an epoch record. No-op when tracing is disabled.
func (rt *RunTrace) RecordEpoch(record EpochRecord) {
	if rt.Config.Level == LevelNone || rt.Config.Level == "" {
		return
	}
	rt.Epochs = append(rt.Epochs, record)
}
