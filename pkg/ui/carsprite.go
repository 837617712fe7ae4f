package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/golangdaddy/duelrace/pkg/geom"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewCarSprite renders a top-down car of w x h pixels with the bonnet at
// the top of the image.
func NewCarSprite(w, h int, paint color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(paint)

	fill := func(x0, y0, x1, y1 int, c color.Color) {
		img.SubImage(image.Rect(x0, y0, x1, y1)).(*ebiten.Image).Fill(c)
	}

	outline := color.RGBA{20, 20, 20, 255}
	const border = 2
	fill(0, 0, w, border, outline)
	fill(0, h-border, w, h, outline)
	fill(0, 0, border, h, outline)
	fill(w-border, 0, w, h, outline)

	// windshield and rear window
	glass := color.RGBA{150, 200, 255, 220}
	gw := w * 6 / 10
	fill((w-gw)/2, h/5, (w+gw)/2, h/5+h/6, glass)
	fill((w-gw)/2, h*7/10, (w+gw)/2, h*7/10+h/12, glass)

	// wheels
	tyre := color.RGBA{30, 30, 30, 255}
	ww, wh := max(w/8, 3), max(h/8, 4)
	for _, y := range []int{h / 10, h - h/10 - wh} {
		fill(border, y, border+ww, y+wh, tyre)
		fill(w-border-ww, y, w-border, y+wh, tyre)
	}

	// headlights
	light := color.RGBA{255, 250, 200, 255}
	fill(border+1, border, border+1+ww, border+3, light)
	fill(w-border-1-ww, border, w-border-1, border+3, light)

	return img
}

// DrawCar draws sprite centred on box, rotated clockwise by heading degrees
func DrawCar(screen, sprite *ebiten.Image, box geom.Rect, heading float64) {
	sw, sh := sprite.Bounds().Dx(), sprite.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(sw)/2, -float64(sh)/2)
	op.GeoM.Rotate(heading * math.Pi / 180)
	op.GeoM.Translate(float64(box.X)+float64(box.W)/2, float64(box.Y)+float64(box.H)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// DrawHitbox outlines the axis-aligned collision box
func DrawHitbox(screen *ebiten.Image, box geom.Rect, clr color.Color) {
	x, y, w, h := float64(box.X), float64(box.Y), float64(box.W), float64(box.H)
	FillRect(screen, x, y, w, 1, clr)
	FillRect(screen, x, y+h-1, w, 1, clr)
	FillRect(screen, x, y, 1, h, clr)
	FillRect(screen, x+w-1, y, 1, h, clr)
}
