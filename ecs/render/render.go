package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/fruitmerge/common"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
	"github.com/milk9111/fruitmerge/physics"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	wallColor   = color.NRGBA{R: 0x6b, G: 0x4f, B: 0x3a, A: 0xff}
	floorColor  = color.NRGBA{R: 0xf4, G: 0xe3, B: 0xc1, A: 0xff}
	outlineGray = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0x90}
	hudFace     = ebtext.NewGoXFace(basicfont.Face7x13)
)

// Renderer draws the arena, fruit and effects. It only reads the world.
type Renderer struct {
	Physics *physics.World
	Debug   bool
}

func NewRenderer(pw *physics.World) *Renderer {
	return &Renderer{Physics: pw}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || r.Physics == nil || w == nil || screen == nil {
		return
	}
	r.drawArena(screen)
	r.drawFruit(w, screen)
	r.drawBursts(w, screen)
	r.drawDropper(w, screen)
	r.drawHUD(w, screen)
}

func (r *Renderer) drawArena(screen *ebiten.Image) {
	a := r.Physics.Config().Arena
	vector.FillRect(screen, float32(a.Left), float32(a.Top), float32(a.Width()), float32(a.Height()), floorColor, false)
	vector.StrokeLine(screen, float32(a.Left), float32(a.Top), float32(a.Left), float32(a.Bottom), 4, wallColor, true)
	vector.StrokeLine(screen, float32(a.Right), float32(a.Top), float32(a.Right), float32(a.Bottom), 4, wallColor, true)
	vector.StrokeLine(screen, float32(a.Left), float32(a.Bottom), float32(a.Right), float32(a.Bottom), 4, wallColor, true)
	// open top, dashed
	for x := a.Left; x < a.Right; x += 16 {
		vector.StrokeLine(screen, float32(x), float32(a.Top), float32(min(x+8, a.Right)), float32(a.Top), 1, colornames.Lightgrey, false)
	}
}

func (r *Renderer) drawFruit(w *ecs.World, screen *ebiten.Image) {
	for _, e := range r.Physics.Bodies() {
		b, ok := r.Physics.Body(e)
		if !ok {
			continue
		}
		c := color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}
		if f, ok := ecs.Get(w, e, component.FruitComponent.Kind()); ok {
			c = f.Color
		}
		x, y, rad := float32(b.Current.X), float32(b.Current.Y), float32(b.Radius)
		vector.FillCircle(screen, x, y, rad, c, true)
		vector.StrokeCircle(screen, x, y, rad, 1.5, outlineGray, true)
		if r.Debug {
			v := physics.Velocity(&b)
			vector.StrokeLine(screen, x, y, x+float32(v.X*10), y+float32(v.Y*10), 1, colornames.Blue, true)
		}
	}
}

func (r *Renderer) drawBursts(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach2(w, component.BurstComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Burst, tr *component.Transform) {
		progress := 1.0
		if ttl, ok := ecs.Get(w, e, component.TTLComponent.Kind()); ok {
			progress = ttl.Progress()
		}
		c := b.Color
		c.A = uint8(common.Lerp(float64(c.A), 0, progress))
		rad := common.Lerp(b.Radius, b.Radius*1.8, progress) * tr.Scale
		vector.StrokeCircle(screen, float32(tr.X), float32(tr.Y), float32(rad), 3, c, true)
	})
}

func (r *Renderer) drawDropper(w *ecs.World, screen *ebiten.Image) {
	e, ok := w.First(component.DropperComponent.Kind())
	if !ok {
		return
	}
	d, _ := ecs.Get(w, e, component.DropperComponent.Kind())
	a := r.Physics.Config().Arena
	vector.StrokeLine(screen, float32(d.X), float32(d.Y), float32(d.X), float32(a.Bottom), 1, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60}, false)

	rad, ok := r.Physics.Config().Tiers.Radius(d.NextTier)
	if !ok {
		return
	}
	c := color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xc0}
	if d.Cooldown > 0 {
		c.A = 0x60
	}
	vector.FillCircle(screen, float32(d.X), float32(d.Y), float32(rad), c, true)
}

func (r *Renderer) drawHUD(w *ecs.World, screen *ebiten.Image) {
	line := fmt.Sprintf("fruit %d  frame %d", r.Physics.Len(), r.Physics.Frame())
	if e, ok := w.First(component.ScoreComponent.Kind()); ok {
		if sc, ok := ecs.Get(w, e, component.ScoreComponent.Kind()); ok {
			best := ""
			if spec, ok := r.Physics.Config().Tiers.Spec(sc.Best); ok && sc.Merges > 0 {
				best = spec.Name
			}
			line = fmt.Sprintf("score %d  merges %d  best %s  ", sc.Points, sc.Merges, best) + line
		}
	}
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(colornames.White)
	ebtext.Draw(screen, line, hudFace, op)
}
