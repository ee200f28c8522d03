package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/treasure-hunt/internal/core"
	"github.com/vovakirdan/treasure-hunt/internal/hunt"
)

// KeyMap defines the key bindings of a hunt session.
type KeyMap struct {
	CursorUp    key.Binding
	CursorDown  key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding
	Treasure5   key.Binding
	Treasure6   key.Binding
	Treasure7   key.Binding
	Treasure8   key.Binding
	Obstacle    key.Binding
	Hunter      key.Binding
	EndSetup    key.Binding

	MoveUp    key.Binding
	MoveDown  key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	EndPlay   key.Binding

	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		CursorUp:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "cursor up")),
		CursorDown:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "cursor down")),
		CursorLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "cursor left")),
		CursorRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "cursor right")),
		Treasure5:   key.NewBinding(key.WithKeys("5"), key.WithHelp("5-8", "treasure")),
		Treasure6:   key.NewBinding(key.WithKeys("6")),
		Treasure7:   key.NewBinding(key.WithKeys("7")),
		Treasure8:   key.NewBinding(key.WithKeys("8")),
		Obstacle:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "obstacle")),
		Hunter:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hunter")),
		EndSetup:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start hunt")),

		MoveUp:    key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "up")),
		MoveDown:  key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "down")),
		MoveLeft:  key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "left")),
		MoveRight: key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "right")),
		EndPlay:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end play")),

		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// stageHelp adapts the key map to help.KeyMap for the current stage.
type stageHelp struct {
	keys  KeyMap
	stage hunt.Stage
}

// ShortHelp returns key bindings for the short help view.
func (h stageHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.stage {
	case hunt.StageSetup:
		return []key.Binding{k.Treasure5, k.Obstacle, k.Hunter, k.EndSetup, k.Help, k.Quit}
	case hunt.StagePlay:
		return []key.Binding{k.MoveUp, k.MoveLeft, k.MoveDown, k.MoveRight, k.EndPlay, k.Quit}
	default:
		return []key.Binding{k.Restart, k.Quit}
	}
}

// FullHelp returns key bindings for the full help view.
func (h stageHelp) FullHelp() [][]key.Binding {
	k := h.keys
	switch h.stage {
	case hunt.StageSetup:
		return [][]key.Binding{
			{k.CursorUp, k.CursorDown, k.CursorLeft, k.CursorRight},
			{k.Treasure5, k.Obstacle, k.Hunter},
			{k.EndSetup, k.Restart, k.Help, k.Quit},
		}
	case hunt.StagePlay:
		return [][]key.Binding{
			{k.MoveUp, k.MoveDown, k.MoveLeft, k.MoveRight},
			{k.EndPlay, k.Restart, k.Help, k.Quit},
		}
	default:
		return [][]key.Binding{{k.Restart, k.Quit}}
	}
}

// KeyMapper translates Bubble Tea key messages to host actions.
// The same key means different things per stage: arrows move the cursor
// during setup and the hunter during play.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings the mapper uses.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action for the given stage.
// Returns ActionNone for keys without meaning in that stage.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, stage hunt.Stage) core.Action {
	k := km.keys

	// Global keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}

	switch stage {
	case hunt.StageSetup:
		switch {
		case key.Matches(msg, k.CursorUp):
			return core.ActionUp
		case key.Matches(msg, k.CursorDown):
			return core.ActionDown
		case key.Matches(msg, k.CursorLeft):
			return core.ActionLeft
		case key.Matches(msg, k.CursorRight):
			return core.ActionRight
		case key.Matches(msg, k.Treasure5):
			return core.ActionPlaceTreasure5
		case key.Matches(msg, k.Treasure6):
			return core.ActionPlaceTreasure6
		case key.Matches(msg, k.Treasure7):
			return core.ActionPlaceTreasure7
		case key.Matches(msg, k.Treasure8):
			return core.ActionPlaceTreasure8
		case key.Matches(msg, k.Obstacle):
			return core.ActionPlaceObstacle
		case key.Matches(msg, k.Hunter):
			return core.ActionPlaceHunter
		case key.Matches(msg, k.EndSetup):
			return core.ActionEndSetup
		}

	case hunt.StagePlay:
		switch {
		case key.Matches(msg, k.MoveUp):
			return core.ActionUp
		case key.Matches(msg, k.MoveDown):
			return core.ActionDown
		case key.Matches(msg, k.MoveLeft):
			return core.ActionLeft
		case key.Matches(msg, k.MoveRight):
			return core.ActionRight
		case key.Matches(msg, k.EndPlay):
			return core.ActionEndPlay
		}
	}

	return core.ActionNone
}
