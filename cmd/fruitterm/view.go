package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
	"github.com/milk9111/fruitmerge/ecs/entity"
	"github.com/milk9111/fruitmerge/physics"
	"github.com/milk9111/fruitmerge/prefabs"
)

// hudRows are reserved above the arena for the status line.
const hudRows = 1

// canvas is the part of tcell.Screen the view draws through.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// view maps arena coordinates onto terminal cells. A cell is roughly twice
// as tall as it is wide, so one row covers two columns worth of world units.
type view struct {
	arena      physics.Arena
	cols, rows int
	unit       float64
	offX, offY int
}

func newView(arena physics.Arena, cols, rows int) view {
	v := view{arena: arena, cols: cols, rows: rows}
	avail := rows - hudRows
	if cols <= 0 || avail <= 0 || arena.Width() <= 0 || arena.Height() <= 0 {
		v.unit = 1
		return v
	}
	v.unit = math.Max(arena.Width()/float64(cols), arena.Height()/(2*float64(avail)))
	v.offX = (cols - int(arena.Width()/v.unit)) / 2
	v.offY = hudRows + (avail-int(arena.Height()/(2*v.unit)))/2
	return v
}

func (v view) cell(p cp.Vector) (int, int) {
	col := v.offX + int(math.Floor((p.X-v.arena.Left)/v.unit))
	row := v.offY + int(math.Floor((p.Y-v.arena.Top)/(2*v.unit)))
	return col, row
}

// center returns the world position at the middle of a cell.
func (v view) center(col, row int) cp.Vector {
	return cp.Vector{
		X: v.arena.Left + (float64(col-v.offX)+0.5)*v.unit,
		Y: v.arena.Top + (float64(row-v.offY)+0.5)*2*v.unit,
	}
}

func (v view) inside(col, row int) bool {
	return col >= 0 && col < v.cols && row >= hudRows && row < v.rows
}

func (v view) draw(c canvas, w *ecs.World, pw *physics.World, spec *prefabs.WorldSpec, dropper ecs.Entity, paused bool) {
	v.drawWalls(c)

	for _, e := range pw.Bodies() {
		body, ok := pw.Body(e)
		if !ok {
			continue
		}
		col := color.NRGBA{R: 200, G: 200, B: 200, A: 255}
		if fruit, ok := ecs.Get(w, e, component.FruitComponent.Kind()); ok {
			col = fruit.Color
		}
		v.fillDisc(c, body.Current, body.Radius, '█', rgb(col))
	}

	ecs.ForEach2(w, component.BurstComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.Burst, t *component.Transform) {
		x, y := v.cell(cp.Vector{X: t.X, Y: t.Y})
		if v.inside(x, y) {
			c.SetContent(x, y, '*', nil, rgb(b.Color))
		}
	})

	d, ok := ecs.Get(w, dropper, component.DropperComponent.Kind())
	if !ok {
		return
	}
	x, y := v.cell(cp.Vector{X: d.X, Y: d.Y})
	if v.inside(x, y) {
		c.SetContent(x, y, '▼', nil, rgb(entity.TierColor(spec, d.NextTier)))
	}

	status := fmt.Sprintf("next %s  bodies %d", spec.TierName(int(d.NextTier)), pw.Len())
	if sc, ok := ecs.Get(w, dropper, component.ScoreComponent.Kind()); ok {
		status = fmt.Sprintf("score %d  merges %d  best %s  %s", sc.Points, sc.Merges, spec.TierName(int(sc.Best)), status)
	}
	if paused {
		status += "  [paused]"
	}
	drawText(c, 0, 0, status, tcell.StyleDefault)
}

func (v view) drawWalls(c canvas) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	left, top := v.cell(cp.Vector{X: v.arena.Left, Y: v.arena.Top})
	right, bottom := v.cell(cp.Vector{X: v.arena.Right, Y: v.arena.Bottom})
	for row := top; row <= bottom; row++ {
		if v.inside(left-1, row) {
			c.SetContent(left-1, row, '│', nil, style)
		}
		if v.inside(right, row) {
			c.SetContent(right, row, '│', nil, style)
		}
	}
	for col := left - 1; col <= right; col++ {
		if v.inside(col, bottom) {
			c.SetContent(col, bottom, '─', nil, style)
		}
	}
}

// fillDisc paints every cell whose center lies within radius of p.
func (v view) fillDisc(c canvas, p cp.Vector, radius float64, r rune, style tcell.Style) {
	minCol, minRow := v.cell(p.Sub(cp.Vector{X: radius, Y: radius}))
	maxCol, maxRow := v.cell(p.Add(cp.Vector{X: radius, Y: radius}))
	painted := false
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !v.inside(col, row) || v.center(col, row).DistanceSq(p) > radius*radius {
				continue
			}
			c.SetContent(col, row, r, nil, style)
			painted = true
		}
	}
	if !painted {
		if col, row := v.cell(p); v.inside(col, row) {
			c.SetContent(col, row, r, nil, style)
		}
	}
}

func drawText(c canvas, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.SetContent(x, y, r, nil, style)
		x++
	}
}

func rgb(c color.NRGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
