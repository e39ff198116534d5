// Package imgpuzzle adapts the puzzle engine to the platform's Game
// interface: a picture is cut into a grid of pieces, shuffled, and restored by
// swapping pairs of pieces.
package imgpuzzle

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-puzzle/internal/config"
	"github.com/vovakirdan/tui-puzzle/internal/core"
	"github.com/vovakirdan/tui-puzzle/internal/picture"
	"github.com/vovakirdan/tui-puzzle/internal/puzzle"
	"github.com/vovakirdan/tui-puzzle/internal/registry"
)

// Game implements the image puzzle.
type Game struct {
	cfg    config.PuzzleConfig
	preset config.Preset // Grid of the puzzle on the board
	log    *log.Logger

	rng     *rand.Rand
	engine  *puzzle.Puzzle
	tracker *puzzle.Tracker
	pic     *picture.Picture
	data    puzzle.Data
	hasData bool
	pending *puzzle.State // Restored on the next Reset

	tick   uint64
	cursor int
	moves  int
	hints  int
	score  int
	solved bool
	paused bool
	notice string // One-line message shown under the board

	// Screen layout
	screenW  int
	screenH  int
	board    core.Rect
	tooSmall bool
}

// New creates a puzzle game for a preset. The preset's grid overrides
// cfg.Grid.
func New(cfg config.PuzzleConfig, preset config.Preset) *Game {
	return &Game{cfg: cfg, preset: preset, log: log.New(io.Discard)}
}

// Custom creates a puzzle game with an ad-hoc grid size.
func Custom(cfg config.PuzzleConfig, rows, cols int) *Game {
	return New(cfg, gridPreset(cfg, rows, cols))
}

// gridPreset returns the configured preset for a grid size, or an ad-hoc one.
func gridPreset(cfg config.PuzzleConfig, rows, cols int) config.Preset {
	id := fmt.Sprintf("%dx%d", rows, cols)
	if p, ok := cfg.Preset(id); ok {
		return p
	}
	return config.Preset{ID: id, Rows: rows, Cols: cols}
}

func init() {
	Register(config.DefaultPuzzleConfig(), false)
}

// Register binds every preset of cfg to the registry. With replace set,
// existing registrations are overwritten, which is how a loaded config
// takes over from the built-in defaults.
func Register(cfg config.PuzzleConfig, replace bool) {
	for _, p := range cfg.Presets {
		f := func() registry.Game { return New(cfg, p) }
		if replace {
			registry.Replace(p.ID, f)
		} else {
			registry.Register(p.ID, f)
		}
	}
}

// RegisterGrid registers an ad-hoc "RxC" grid id so a saved custom game can
// be created again. It reports whether id names a grid.
func RegisterGrid(cfg config.PuzzleConfig, id string) bool {
	var rows, cols int
	if _, err := fmt.Sscanf(id, "%dx%d", &rows, &cols); err != nil {
		return false
	}
	if rows <= 0 || cols <= 0 || fmt.Sprintf("%dx%d", rows, cols) != id {
		return false
	}
	if !registry.Exists(id) {
		registry.Register(id, func() registry.Game { return Custom(cfg, rows, cols) })
	}
	return true
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.preset.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.preset.Title()
}

// Reset builds the picture and starts a freshly shuffled puzzle, or the
// pending saved one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.Logger != nil {
		g.log = cfg.Logger
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.notice = ""
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.pic = g.openPicture()
	g.engine = puzzle.New(g.rng)
	g.engine.OnRender(g.observe)
	g.engine.OnUpdate(g.observe)
	g.tracker = puzzle.NewTracker(g.swap, nil)
	g.resetProgress()

	if g.pending != nil {
		s := *g.pending
		g.pending = nil
		if err := g.restore(s); err == nil {
			return
		}
		g.notice = "Saved puzzle unusable, started a new one"
	}

	data := puzzle.Data{Image: g.image(), Rows: g.preset.Rows, Cols: g.preset.Cols}
	if _, err := g.engine.Run(data); err != nil {
		g.logger().Error("cannot build puzzle", "err", err)
		g.notice = err.Error()
		return
	}
	g.logger().Info("puzzle built", "picture", g.pic.Source, "seed", cfg.Seed)
	g.layout()
}

// openPicture opens the configured picture, falling back to the default
// pattern when the file cannot be used.
func (g *Game) openPicture() *picture.Picture {
	spec := picture.Spec{
		Path:    g.cfg.Image.Path,
		Pattern: g.cfg.Image.Pattern,
		Width:   g.cfg.Image.Width,
		Height:  g.cfg.Image.Height,
	}
	pic, err := picture.Open(spec)
	if err == nil {
		return pic
	}

	g.logger().Warn("cannot open picture, using default pattern", "path", spec.Path, "err", err)
	g.notice = "Picture unavailable, using " + picture.DefaultPattern
	pic, err = picture.Generate(picture.DefaultPattern, max(spec.Width, 2), max(spec.Height, 2))
	if err != nil {
		// Generate only fails for unknown patterns or empty sizes.
		panic(err)
	}
	return pic
}

func (g *Game) image() puzzle.Image {
	return puzzle.Image{
		Source: g.pic.Source,
		Width:  float64(g.pic.Width()),
		Height: float64(g.pic.Height()),
	}
}

// observe receives every state the engine produces. nil means the puzzle
// was torn down.
func (g *Game) observe(data *puzzle.Data) {
	if data == nil {
		g.hasData = false
		return
	}
	g.data = *data
	g.hasData = true
}

func (g *Game) resetProgress() {
	g.cursor = 0
	g.moves = 0
	g.hints = 0
	g.score = 0
	g.solved = false
	g.tracker.Reset()
}

// swap is the tracker's select callback: a completed pair of selections is
// one move.
func (g *Game) swap(a, b int) {
	g.moves++
	g.flip(a, b)
}

func (g *Game) flip(a, b int) {
	data, err := g.engine.Flip(a, b, g.data)
	if err != nil {
		g.logger().Error("flip failed", "a", a, "b", b, "err", err)
		return
	}
	g.logger().Debug("pieces swapped", "a", a, "b", b, "moves", g.moves)

	if g.engine.Win(data) {
		g.solved = true
		g.score = g.cfg.Scoring.Score(g.moves, g.hints)
		g.tracker.Reset()
		g.logger().Info("puzzle solved", "moves", g.moves, "hints", g.hints, "score", g.score)
	}
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	dirty := !in.Empty()

	if g.engine == nil || !g.hasData {
		return core.StepResult{State: g.State(), Dirty: dirty}
	}

	if in.Has(core.ActionRestart) && g.solved {
		g.rebuild(g.data.Rows, g.data.Cols)
		return core.StepResult{State: g.State(), Dirty: true}
	}

	if in.Has(core.ActionPause) && !g.solved {
		g.paused = !g.paused
	}

	if g.paused || g.solved || g.tooSmall {
		return core.StepResult{State: g.State(), Dirty: dirty}
	}

	if dirty {
		g.notice = ""
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	if in.Click != nil {
		if idx, ok := g.pieceAt(in.Click.X, in.Click.Y); ok {
			g.cursor = idx
			g.tracker.Select(idx)
		}
	}

	switch {
	case in.Has(core.ActionSelect):
		g.tracker.Select(g.cursor)
	case in.Has(core.ActionHint):
		g.hint()
	case in.Has(core.ActionShuffle):
		g.shuffle()
	case in.Has(core.ActionRebuild):
		rows, cols := g.nextGrid()
		g.rebuild(rows, cols)
	}

	return core.StepResult{State: g.State(), Dirty: dirty}
}

func (g *Game) moveCursor(dRow, dCol int) {
	row := core.Clamp(g.cursor/g.data.Cols+dRow, 0, g.data.Rows-1)
	col := core.Clamp(g.cursor%g.data.Cols+dCol, 0, g.data.Cols-1)
	g.cursor = row*g.data.Cols + col
}

// hint performs one swap that puts a piece home.
func (g *Game) hint() {
	a, b, ok := puzzle.Hint(g.data)
	if !ok {
		return
	}
	g.hints++
	g.tracker.Reset()
	g.cursor = a
	g.flip(a, b)
}

func (g *Game) shuffle() {
	if _, err := g.engine.Reshuffle(); err != nil {
		g.logger().Error("shuffle failed", "err", err)
		return
	}
	g.resetProgress()
	g.logger().Debug("puzzle reshuffled")
}

// rebuild replaces the puzzle with a new one of the given size.
func (g *Game) rebuild(rows, cols int) {
	if _, err := g.engine.Rebuild(rows, cols); err != nil {
		g.logger().Error("rebuild failed", "rows", rows, "cols", cols, "err", err)
		g.notice = err.Error()
		return
	}
	g.resetProgress()
	g.setGrid(rows, cols)
	g.layout()
	g.logger().Info("puzzle rebuilt", "rows", rows, "cols", cols)
}

// nextGrid returns the size of the preset after the current grid, cycling
// through the configured presets.
func (g *Game) nextGrid() (rows, cols int) {
	presets := g.cfg.Presets
	if len(presets) == 0 {
		return g.data.Rows, g.data.Cols
	}
	for i, p := range presets {
		if p.Rows == g.data.Rows && p.Cols == g.data.Cols {
			next := presets[(i+1)%len(presets)]
			return next.Rows, next.Cols
		}
	}
	return presets[0].Rows, presets[0].Cols
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Moves:    g.moves,
		GameOver: g.solved,
		Paused:   g.paused,
	}
}

// SaveState returns the encoded state of the current puzzle.
func (g *Game) SaveState() (rows, cols int, state []byte, err error) {
	if g.engine == nil || !g.hasData {
		return 0, 0, nil, fmt.Errorf("imgpuzzle: nothing to save: %w", puzzle.ErrState)
	}
	s := g.engine.State()
	b, err := puzzle.EncodeState(s)
	if err != nil {
		return 0, 0, nil, err
	}
	return s.Rows, s.Cols, b, nil
}

// RestoreState resumes an encoded puzzle. Before the first Reset the state
// is kept and used by Reset.
func (g *Game) RestoreState(state []byte) error {
	s, err := puzzle.DecodeState(state)
	if err != nil {
		return err
	}
	if g.engine == nil {
		g.pending = &s
		return nil
	}
	g.paused = false
	return g.restore(s)
}

// restore replaces the puzzle with a saved one. A saved board that is already
// solved comes back solved, with no score since its moves are unknown.
func (g *Game) restore(s puzzle.State) error {
	data, err := g.engine.Restore(s, g.image())
	if err != nil {
		g.logger().Warn("cannot restore puzzle", "rows", s.Rows, "cols", s.Cols, "err", err)
		return err
	}
	g.resetProgress()
	g.setGrid(s.Rows, s.Cols)
	g.solved = g.engine.Win(data)
	g.layout()
	g.logger().Info("puzzle restored", "rows", s.Rows, "cols", s.Cols, "solved", g.solved)
	return nil
}

// setGrid makes ID and Title follow the grid on the board.
func (g *Game) setGrid(rows, cols int) {
	if g.preset.Rows != rows || g.preset.Cols != cols {
		g.preset = gridPreset(g.cfg, rows, cols)
	}
}

func (g *Game) logger() *log.Logger {
	return g.log.With("game", g.preset.ID)
}

var _ registry.Saver = (*Game)(nil)
