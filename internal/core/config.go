package core

// RuntimeConfig contains the parameters a hunt session is initialized with.
type RuntimeConfig struct {
	Rows int   // Grid rows
	Cols int   // Grid columns
	Seed int64 // RNG seed for obstacle spawning; 0 means the host picks one
}

// DefaultConfig returns the classic 5x5 board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Rows: 5,
		Cols: 5,
		Seed: 0,
	}
}
