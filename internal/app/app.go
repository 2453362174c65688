//go:build ebiten

package app

import (
	"image/color"
	"time"

	"evo-plants/internal/board"
	"evo-plants/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game displays a board snapshot through the ebiten.Game interface. It only
// reads the board; a fresh snapshot comes from the rebuild callback.
type Game struct {
	board   board.Board
	rebuild func(seed int64) board.Board
	painter *render.FieldPainter

	onColor  color.Color
	offColor color.Color

	scale int
	seed  int64
}

// New constructs a Game for the provided board. rebuild, when non-nil, is
// invoked to regenerate the board on the R and S keys.
func New(b board.Board, rebuild func(seed int64) board.Board, scale int, seed int64) *Game {
	w, h := b.Fields.Size().Dimensions()
	return &Game{
		board:    b,
		rebuild:  rebuild,
		painter:  render.NewFieldPainter(w, h),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset swaps in a freshly generated board for the provided seed.
func (g *Game) Reset(seed int64) {
	if g.rebuild == nil {
		return
	}
	g.seed = seed
	g.board = g.rebuild(seed)
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	return nil
}

// Draw renders the board's light field.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board.Fields.Light(), g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.board.Fields.Size().Dimensions()
	return w * g.scale, h * g.scale
}
