package core

// Action represents a semantic host action, abstracted from physical key presses.
// Terminal and scripted hosts translate their input into these before calling
// the engine.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPlaceTreasure5
	ActionPlaceTreasure6
	ActionPlaceTreasure7
	ActionPlaceTreasure8
	ActionPlaceObstacle
	ActionPlaceHunter
	ActionEndSetup
	ActionEndPlay
	ActionRestart
	ActionHelp
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPlaceTreasure5:
		return "Treasure5"
	case ActionPlaceTreasure6:
		return "Treasure6"
	case ActionPlaceTreasure7:
		return "Treasure7"
	case ActionPlaceTreasure8:
		return "Treasure8"
	case ActionPlaceObstacle:
		return "Obstacle"
	case ActionPlaceHunter:
		return "Hunter"
	case ActionEndSetup:
		return "EndSetup"
	case ActionEndPlay:
		return "EndPlay"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Dir returns the movement direction for directional actions and DirNone otherwise.
func (a Action) Dir() Dir {
	switch a {
	case ActionUp:
		return DirUp
	case ActionDown:
		return DirDown
	case ActionLeft:
		return DirLeft
	case ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// TreasureValue returns the treasure value for placement actions, or 0.
func (a Action) TreasureValue() int {
	switch a {
	case ActionPlaceTreasure5:
		return 5
	case ActionPlaceTreasure6:
		return 6
	case ActionPlaceTreasure7:
		return 7
	case ActionPlaceTreasure8:
		return 8
	default:
		return 0
	}
}
