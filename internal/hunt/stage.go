package hunt

// Stage is the coarse game phase. Stages only advance Setup → Play → End.
type Stage uint8

const (
	StageSetup Stage = iota
	StagePlay
	StageEnd
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageSetup:
		return "setup"
	case StagePlay:
		return "play"
	case StageEnd:
		return "end"
	default:
		return "unknown"
	}
}

// EndReason records why the game reached StageEnd.
type EndReason uint8

const (
	EndNone        EndReason = iota
	EndNoTreasures           // every treasure collected, or none placed
	EndImmobilized           // hunter has no legal move
	EndForced                // host requested end of play
)

// String returns a short description of the reason.
func (r EndReason) String() string {
	switch r {
	case EndNoTreasures:
		return "no treasures left"
	case EndImmobilized:
		return "hunter cannot move"
	case EndForced:
		return "ended by player"
	default:
		return "none"
	}
}
