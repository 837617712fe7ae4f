package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Face is the bitmap font used for every screen
var Face = text.NewGoXFace(bitmapfont.Face)

var pixel *ebiten.Image

// DrawText draws s with its top-left corner at x, y
func DrawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, Face, op)
}

// DrawCenteredText draws s horizontally centered on cx
func DrawCenteredText(screen *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	w := text.Advance(s, Face) * scale
	DrawText(screen, s, cx-w/2, y, scale, clr)
}

// FillRect fills a screen rectangle with clr
func FillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(pixel, op)
}

// DrawPanel draws a filled box with a border
func DrawPanel(screen *ebiten.Image, x, y, w, h float64, bg, border color.Color) {
	const bw = 2
	FillRect(screen, x, y, w, h, bg)
	FillRect(screen, x, y, w, bw, border)
	FillRect(screen, x, y+h-bw, w, bw, border)
	FillRect(screen, x, y, bw, h, border)
	FillRect(screen, x+w-bw, y, bw, h, border)
}

// DrawButton draws a menu button, highlighted when selected
func DrawButton(screen *ebiten.Image, label string, cx, y float64, selected bool) {
	const w, h = 240.0, 40.0
	bg := color.RGBA{40, 40, 60, 255}
	border := color.RGBA{100, 100, 120, 255}
	fg := color.RGBA{200, 200, 200, 255}
	if selected {
		bg = color.RGBA{80, 60, 20, 255}
		border = color.RGBA{255, 200, 50, 255}
		fg = color.RGBA{255, 220, 100, 255}
	}
	DrawPanel(screen, cx-w/2, y, w, h, bg, border)
	DrawCenteredText(screen, label, cx, y+h/2-8, 1, fg)
}
