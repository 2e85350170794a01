package main

import (
	"context"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"limbo/artwork"
	"limbo/config"
	"limbo/pages"
	"limbo/reveal"
)

var background = color.RGBA{0xf4, 0xf1, 0xea, 0xff}

var artworkKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func artworkKey(i int) string { return strconv.Itoa(i + 1) }

type Game struct {
	cfg *config.Config
	log logrus.FieldLogger
	ctx context.Context

	catalog artwork.Catalog
	nav     *pages.Navigator
	views   map[string]*ebiten.Image
	loads   map[string]<-chan artwork.Result

	masks   reveal.MaskBuilder
	pending <-chan artwork.Result
	canvas  *reveal.Canvas
	input   reveal.InputRouter
	art     image.Image

	width, height int
	scale         float64
	canvasScale   float64

	player *audio.Player
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		if g.canvas != nil {
			g.canvas.Stop()
		}
		return ebiten.Termination
	default:
	}

	g.pollArtwork()
	g.pollViews()
	g.handleKeys()

	if g.canvas == nil || g.nav.Active() != pages.Home {
		return nil
	}
	if g.scale != g.canvasScale {
		g.log.WithField("scale", g.scale).Debug("device scale changed, rebuilding canvas")
		g.newCanvas()
	}
	if err := g.canvas.Resize(g.width, g.height); err != nil {
		g.log.WithError(err).Error("reveal disabled")
		g.canvas.Stop()
		g.canvas = nil
		return nil
	}
	g.trackPointer()
	if n := g.canvas.Step(); n > 0 && g.cfg.Debug {
		g.log.Debugf("erased %d cells, %d left", n, g.canvas.Remaining())
	}
	return nil
}

// newCanvas builds the reveal canvas for the current device scale factor.
func (g *Game) newCanvas() {
	if g.canvas != nil {
		g.canvas.Stop()
	}
	g.canvasScale = g.scale
	opts := reveal.Options{
		CellSize:    g.cfg.CellSize,
		EraseRadius: g.cfg.EraseRadius,
		ArtScale:    g.cfg.ArtScale,
		Logger:      g.log,
	}
	g.canvas = reveal.New(g.art, g.masks, opts.Scaled(g.scale))
}

// pollArtwork starts the canvas once the home artwork has loaded.
func (g *Game) pollArtwork() {
	if g.pending == nil {
		return
	}
	select {
	case res := <-g.pending:
		g.pending = nil
		if res.Err != nil {
			g.log.WithError(res.Err).Error("artwork failed to load, reveal disabled")
			return
		}
		g.art = res.Image
		g.newCanvas()
		g.log.WithField("artwork", res.Piece.Title).Info("reveal ready")
	default:
	}
}

func (g *Game) pollViews() {
	for id, ch := range g.loads {
		select {
		case res := <-ch:
			delete(g.loads, id)
			if res.Err != nil {
				g.log.WithError(res.Err).WithField("page", id).Warn("artwork page unavailable")
				continue
			}
			g.views[id] = ebiten.NewImageFromImage(res.Image)
		default:
		}
	}
}

func (g *Game) handleKeys() {
	for i, k := range artworkKeys {
		if i >= len(g.catalog) || !inpututil.IsKeyJustPressed(k) {
			continue
		}
		id := artworkKey(i)
		if err := g.nav.ShowArtwork(id); err != nil {
			g.log.WithError(err).Warn("cannot open artwork")
			continue
		}
		if g.canvas != nil {
			g.canvas.LeavePointer()
		}
		if _, ok := g.views[id]; !ok && g.loads[id] == nil {
			g.loads[id] = artwork.LoadAsync(g.catalog[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.nav.Back()
	}
}

// trackPointer collects this tick's touch and mouse input for the router.
func (g *Game) trackPointer() {
	var f reveal.InputFrame
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		f.Pressed = append(f.Pressed, reveal.TouchSample{ID: int(id), X: float64(x), Y: float64(y)})
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		f.Touches = append(f.Touches, reveal.TouchSample{ID: int(id), X: float64(x), Y: float64(y)})
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		f.Released = append(f.Released, int(id))
	}

	x, y := ebiten.CursorPosition()
	f.CursorX, f.CursorY = float64(x), float64(y)
	f.CursorInside = ebiten.IsFocused() && image.Pt(x, y).In(image.Rect(0, 0, g.width, g.height))
	f.Clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	g.input.Apply(g.canvas, f)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if id, ok := g.nav.IsArtwork(); ok {
		screen.Fill(background)
		if view := g.views[id]; view != nil {
			drawFitted(screen, view)
		}
		return
	}
	if g.canvas == nil {
		screen.Fill(background)
		return
	}
	g.canvas.Draw(&screenRenderer{dst: screen})
}

// Layout sizes the canvas in device pixels so cells stay sharp on HiDPI
// displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = 1
	if g.cfg.HiDPI {
		g.scale = ebiten.Monitor().DeviceScaleFactor()
	}
	g.width = int(math.Ceil(float64(outsideWidth) * g.scale))
	g.height = int(math.Ceil(float64(outsideHeight) * g.scale))
	return g.width, g.height
}

// screenRenderer draws canvas cells onto an ebiten image.
type screenRenderer struct {
	dst *ebiten.Image
}

func (r *screenRenderer) Clear() {
	r.dst.Fill(background)
}

func (r *screenRenderer) FillRect(x, y, w, h int, c color.Color) {
	vector.DrawFilledRect(r.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// drawFitted draws img centered on dst, scaled down to fit.
func drawFitted(dst, img *ebiten.Image) {
	db, ib := dst.Bounds(), img.Bounds()
	s := math.Min(float64(db.Dx())/float64(ib.Dx()), float64(db.Dy())/float64(ib.Dy()))
	if s > 1 {
		s = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate((float64(db.Dx())-float64(ib.Dx())*s)/2, (float64(db.Dy())-float64(ib.Dy())*s)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
