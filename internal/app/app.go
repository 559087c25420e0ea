//go:build ebiten

package app

import (
	"log/slog"

	"lifeloop/internal/engine"
	"lifeloop/internal/rules"
	"lifeloop/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var presetKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6,
}

// Game presents engine frames through ebiten and turns input into engine
// commands. It never touches the grid directly.
type Game struct {
	eng *engine.Engine
	log *slog.Logger
	hud *ui.HUD
	img *ebiten.Image

	viewport
}

// New constructs a Game for the provided engine.
func New(eng *engine.Engine, scale, hudWidth int, log *slog.Logger) *Game {
	if scale <= 0 {
		scale = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Game{
		eng: eng,
		log: log,
		hud: ui.NewHUD(eng, hudWidth),
		viewport: viewport{
			scale:    scale,
			hudWidth: hudWidth,
			gridW:    eng.Width(),
			gridH:    eng.Height(),
		},
	}
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.eng.IsRunning() {
			g.eng.Stop()
		} else {
			g.report("run", g.eng.Run(g.eng.Mode()))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.report("run", g.eng.Run(engine.RandomSeed))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.report("run", g.eng.Run(engine.Stamp))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.report("clear", g.eng.Clear())
	}
	names := rules.Presets()
	for i, key := range presetKeys {
		if i < len(names) && inpututil.IsKeyJustPressed(key) {
			g.report("rules", g.eng.SetAutomatonRules(names[i]))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx < g.gridW*g.scale && my < g.gridH*g.scale {
			g.report("stamp", g.eng.AddStampAtPoint(mx/g.scale, my/g.scale))
		}
	}
	g.hud.Update(g.gridW * g.scale)
	return nil
}

func (g *Game) report(op string, err error) {
	if err != nil {
		g.log.Warn("app: command failed", "op", op, "err", err)
	}
}

// Draw copies the latest frame out of the engine and renders it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.eng.Read(func(f engine.Frame) {
		if g.img == nil || g.img.Bounds().Dx() != f.Width || g.img.Bounds().Dy() != f.Height {
			if g.img != nil {
				g.img.Dispose()
			}
			g.img = ebiten.NewImage(f.Width, f.Height)
		}
		g.img.WritePixels(f.Pix)
	})
	if g.img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(g.scale), float64(g.scale))
		screen.DrawImage(g.img, op)
	}
	g.hud.Draw(screen, g.gridW*g.scale, g.gridH*g.scale)
}

// Layout maps the window size onto grid dimensions and resizes the engine
// when they change.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h, ok := g.resizeTarget(outsideWidth, outsideHeight); ok {
		if err := g.eng.OnViewResized(w, h); err != nil {
			g.rejected = [2]int{w, h}
			g.report("resize", err)
		} else {
			g.gridW, g.gridH = w, h
		}
	}
	return outsideWidth, outsideHeight
}
