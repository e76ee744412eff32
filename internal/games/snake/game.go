// Package snake implements Snake on a square grid. The snake starts in the
// centre heading left, grows by one segment per food and respawns at full
// starting length when it leaves the grid or runs into itself.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

// Directions are ordered like the arrow key codes 37 to 40.
const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// delta returns the grid step for one move.
func (d Direction) delta() Point {
	switch d {
	case DirLeft:
		return Point{X: -1}
	case DirUp:
		return Point{Y: -1}
	case DirRight:
		return Point{X: 1}
	default:
		return Point{Y: 1}
	}
}

// DirectionForKeyCode maps the DOM arrow key codes (37 left, 38 up, 39 right,
// 40 down) to a direction.
func DirectionForKeyCode(code int) (Direction, bool) {
	if code < 37 || code > 40 {
		return 0, false
	}
	return Direction(code - 37), true
}

var actionDirections = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionLeft, DirLeft},
	{core.ActionUp, DirUp},
	{core.ActionRight, DirRight},
	{core.ActionDown, DirDown},
}

// Point represents a grid tile.
type Point struct {
	X, Y int
}

// Game implements the Snake game.
type Game struct {
	cfg config.SnakeConfig
	rng *rand.Rand

	// Snake state
	snake     []Point // Head at index 0
	direction Direction
	food      Point

	tick   uint64
	deaths int

	runtime core.RuntimeConfig
	log     *log.Logger
}

func init() {
	registry.Register("snake", func() registry.Game { return New() })
}

// New creates a Snake game with the default configuration.
func New() *Game {
	return &Game{cfg: config.DefaultSnakeConfig()}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Configure loads and validates the configuration. Snake has no difficulty
// presets; the name is still checked.
func (g *Game) Configure(path, preset string) error {
	cfg, err := config.LoadSnake(path)
	if err != nil {
		return err
	}
	if _, err := config.ParsePreset(preset); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// TickRate returns the configured move rate.
func (g *Game) TickRate() int {
	return g.cfg.TickRate
}

// CanvasSize returns the logical canvas dimensions.
func (g *Game) CanvasSize() (w, h float64) {
	side := float64(g.cfg.TilesPerRow) * g.cfg.TileSize
	return side, side
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = core.Logger(runtime)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.tick = 0
	g.deaths = 0
	g.spawn()
	g.food = g.randomTile()
}

// spawn places a fresh snake with its head on the centre tile and the rest of
// its body trailing to the right.
func (g *Game) spawn() {
	centre := g.cfg.TilesPerRow / 2
	g.snake = make([]Point, g.cfg.StartSegments)
	for i := range g.snake {
		g.snake[i] = Point{X: centre + i, Y: centre}
	}
	g.direction = DirLeft
}

func (g *Game) randomTile() Point {
	return Point{X: g.rng.Intn(g.cfg.TilesPerRow), Y: g.rng.Intn(g.cfg.TilesPerRow)}
}

// Step advances the game by one move.
// Any arrow changes direction immediately, including straight back into the body.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	for _, ad := range actionDirections {
		if in.Has(ad.action) {
			g.direction = ad.dir
		}
	}

	d := g.direction.delta()
	head := Point{X: g.snake[0].X + d.X, Y: g.snake[0].Y + d.Y}
	g.snake = append([]Point{head}, g.snake...)

	switch {
	case head == g.food:
		// Keeping the tail grows the snake by one
		g.food = g.randomTile()
	case g.dead():
		g.deaths++
		g.log.Info("snake died", "length", len(g.snake)-1, "deaths", g.deaths)
		g.spawn()
	default:
		g.snake = g.snake[:len(g.snake)-1]
	}

	return core.StepResult{State: g.State()}
}

// dead reports whether the head left the grid or hit the body.
func (g *Game) dead() bool {
	head := g.snake[0]
	n := g.cfg.TilesPerRow
	if head.X < 0 || head.X >= n || head.Y < 0 || head.Y >= n {
		return true
	}
	for _, p := range g.snake[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Ticks:  g.tick,
		Score:  len(g.snake) - g.cfg.StartSegments,
		Status: fmt.Sprintf("length %d  deaths %d", len(g.snake), g.deaths),
	}
}

// Render draws the checkered board, the snake and the food.
func (g *Game) Render(dst core.Canvas) {
	w, h := g.CanvasSize()
	dst.FillRect(0, 0, w, h, core.ColorGrass)

	n := g.cfg.TilesPerRow
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// Even rows shift the overlay one tile right
			offset := 0
			if j%2 == 0 {
				offset = 1
			}
			if i%2 == 0 {
				g.drawTile(dst, Point{X: i + offset, Y: j}, core.ColorMeadow)
			}
		}
	}

	for _, p := range g.snake {
		g.drawTile(dst, p, core.ColorBlack)
	}
	g.drawTile(dst, g.food, core.ColorRed)
}

func (g *Game) drawTile(dst core.Canvas, p Point, c core.Color) {
	size := g.cfg.TileSize
	dst.FillRect(float64(p.X)*size, float64(p.Y)*size, size, size, c)
}
