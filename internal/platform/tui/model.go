// Package tui provides the terminal UI for treasure hunt sessions,
// including SSH server support via Wish.
package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treasure-hunt/internal/core"
	"github.com/vovakirdan/treasure-hunt/internal/hunt"
	"github.com/vovakirdan/treasure-hunt/internal/layout"
	"github.com/vovakirdan/treasure-hunt/internal/storage"
)

// Options configures a session model.
type Options struct {
	Store  *storage.Store // nil disables result history
	Layout *layout.Layout // nil starts from an empty board
	Player string
	Logger *log.Logger
}

// Model is the Bubble Tea model for one hunt session.
type Model struct {
	game    *hunt.Game
	screen  *core.Screen
	config  core.RuntimeConfig
	opts    Options
	keys    *KeyMapper
	help    help.Model
	cursor  core.Coord
	status  string
	isError bool

	width    int
	height   int
	saved    *storage.Result // set once the finished session is stored
	quitting bool
}

// NewModel creates a session model. A zero seed picks a time-based one.
func NewModel(cfg core.RuntimeConfig, opts Options) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	m := Model{
		config: cfg,
		opts:   opts,
		keys:   NewKeyMapper(),
		help:   help.New(),
	}
	if err := m.newGame(); err != nil {
		return Model{}, err
	}

	w, h := hunt.RequiredSize(m.game.Rows(), m.game.Cols())
	m.screen = core.NewScreen(w, h)
	return m, nil
}

// newGame starts a fresh session from the layout or an empty board.
func (m *Model) newGame() error {
	var (
		g   *hunt.Game
		err error
	)
	if m.opts.Layout != nil {
		g, err = m.opts.Layout.NewGame(m.config.Seed)
	} else {
		g, err = hunt.New(m.config)
	}
	if err != nil {
		return err
	}

	m.game = g
	m.cursor = core.At(0, 0)
	m.saved = nil
	m.setStatus("Place treasures (5-8), obstacles (o) and the hunter (h), then press enter.", false)
	if m.opts.Layout != nil {
		m.setStatus(fmt.Sprintf("Layout %q loaded. Adjust it or press enter to start.", m.opts.Layout.Name), false)
	}
	return nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w, h := hunt.RequiredSize(m.game.Rows(), m.game.Cols())
		m.screen.Resize(max(w, msg.Width), h)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for the current stage.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg, m.game.Stage())

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionRestart:
		m.config.Seed = time.Now().UnixNano()
		if err := m.newGame(); err != nil {
			m.setStatus(err.Error(), true)
		}
		return m, nil
	}

	switch m.game.Stage() {
	case hunt.StageSetup:
		m.handleSetup(action)
	case hunt.StagePlay:
		m.handlePlay(action)
	}
	return m, nil
}

// handleSetup moves the cursor and places objects.
func (m *Model) handleSetup(action core.Action) {
	if d := action.Dir(); d != core.DirNone {
		next := m.cursor.Step(d)
		if m.game.InBounds(next) {
			m.cursor = next
		}
		return
	}

	var cell hunt.Cell
	switch {
	case action.TreasureValue() > 0:
		cell = hunt.TreasureCell(action.TreasureValue())
	case action == core.ActionPlaceObstacle:
		cell = hunt.ObstacleCell()
	case action == core.ActionPlaceHunter:
		cell = hunt.HunterCell()
	case action == core.ActionEndSetup:
		if err := m.game.EndSetup(); err != nil {
			m.setStatus(describe(err), true)
			return
		}
		m.setStatus("The hunt is on! Move with WASD or the arrow keys.", false)
		m.checkEnd()
		return
	default:
		return
	}

	if err := m.game.PlaceObject(m.cursor, cell); err != nil {
		m.setStatus(describe(err), true)
		return
	}
	m.setStatus(fmt.Sprintf("Placed %s at %v.", cell, m.cursor), false)
}

// handlePlay moves the hunter.
func (m *Model) handlePlay(action core.Action) {
	if action == core.ActionEndPlay {
		if err := m.game.EndPlay(); err != nil {
			m.setStatus(describe(err), true)
			return
		}
		m.checkEnd()
		return
	}

	d := action.Dir()
	if d == core.DirNone {
		return
	}
	res, err := m.game.Move(d)
	if err != nil {
		m.setStatus(describe(err), true)
		return
	}

	switch {
	case res.Collected > 0 && res.Spawned != nil:
		m.setStatus(fmt.Sprintf("Collected %d! An obstacle appeared at %v.", res.Collected, *res.Spawned), false)
	case res.Collected > 0:
		m.setStatus(fmt.Sprintf("Collected %d!", res.Collected), false)
	default:
		m.setStatus(fmt.Sprintf("Moved %s.", d), false)
	}
	m.checkEnd()
}

// checkEnd stores the result once the game reaches End.
func (m *Model) checkEnd() {
	if m.game.Stage() != hunt.StageEnd || m.saved != nil {
		return
	}

	m.setStatus(fmt.Sprintf("Game over: %s. Press r to play again or q to quit.", m.game.EndReason()), false)

	r := m.result()
	m.saved = &r
	if m.opts.Store == nil {
		return
	}
	stored, err := m.opts.Store.SaveResult(r)
	if err != nil {
		if m.opts.Logger != nil {
			m.opts.Logger.Warn("could not save result", "player", m.opts.Player, "error", err)
		}
		return
	}
	m.saved = &stored
	if m.opts.Logger != nil {
		m.opts.Logger.Info("hunt finished",
			"player", stored.Player,
			"session", stored.SessionID,
			"score", stored.Score,
			"rounds", stored.Rounds,
			"index", stored.PerformanceIndex.StringFixed(2),
		)
	}
}

// result builds the storage record for the finished game.
func (m *Model) result() storage.Result {
	r := storage.Result{
		Player:           m.opts.Player,
		Rows:             m.game.Rows(),
		Cols:             m.game.Cols(),
		Score:            m.game.Score(),
		Rounds:           m.game.Rounds(),
		PerformanceIndex: m.game.PerformanceIndex(),
		EndReason:        m.game.EndReason().String(),
	}
	if m.opts.Layout != nil {
		r.LayoutID = m.opts.Layout.ID
	}
	return r
}

func (m *Model) setStatus(s string, isError bool) {
	m.status = s
	m.isError = isError
}

// describe turns engine errors into player-facing messages.
func describe(err error) string {
	switch {
	case errors.Is(err, hunt.ErrOccupiedCell):
		return "That cell is already occupied."
	case errors.Is(err, hunt.ErrDuplicateHunter):
		return "There is already a hunter on the board."
	case errors.Is(err, hunt.ErrNoHunterPlaced):
		return "Place a hunter before starting the hunt."
	case errors.Is(err, hunt.ErrOutOfBounds):
		return "The hunter cannot leave the board."
	case errors.Is(err, hunt.ErrObstacleBlocked):
		return "An obstacle blocks the way."
	case errors.Is(err, hunt.ErrInvalidDirection):
		return "That is not a direction."
	case errors.Is(err, hunt.ErrInvalidStage):
		return "That is not possible right now."
	default:
		return err.Error()
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var cursor *core.Coord
	if m.game.Stage() == hunt.StageSetup {
		c := m.cursor
		cursor = &c
	}
	m.game.Render(m.screen, cursor)

	status := statusStyle.Render(m.status)
	if m.isError {
		status = errorStyle.Render(m.status)
	}
	h := helpStyle.Render(m.help.View(stageHelp{keys: m.keys.Keys(), stage: m.game.Stage()}))
	return RenderScreen(m.screen) + "\n" + status + "\n" + h
}

// Game returns the session's game.
func (m Model) Game() *hunt.Game {
	return m.game
}

// Saved returns the result of the finished game, or nil while it runs.
// ID and SessionID are set only when a store is configured.
func (m Model) Saved() *storage.Result {
	return m.saved
}

// Run starts the Bubble Tea program with a new session model.
func Run(cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
