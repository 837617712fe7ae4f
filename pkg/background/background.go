package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/golangdaddy/duelrace/pkg/geom"
	"github.com/golangdaddy/duelrace/pkg/road"
)

// CheckerSize is the square size of the finish line pattern
const CheckerSize = 6

var (
	asphalt   = color.RGBA{70, 70, 76, 255}
	kerbRed   = color.RGBA{200, 30, 30, 255}
	kerbWhite = color.RGBA{235, 235, 235, 255}
	grass     = color.RGBA{30, 100, 30, 255}
)

// Generator paints track backdrops
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateTrack paints the track: asphalt everywhere inside the world,
// each obstacle as a kerbed patch of forest, and a checkered finish line.
// The same seed always gives the same picture.
func (g *Generator) GenerateTrack(track *road.Track, seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))
	full := geom.Rect{W: g.Width, H: g.Height}

	// outside the world is grass
	g.fill(img, full, grass)
	g.fill(img, track.World, asphalt)

	// surface grain
	for i := 0; i < g.Width*g.Height/12; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		if !inside(track.World, x, y) {
			continue
		}
		shade := uint8(60 + rng.Intn(25))
		img.Set(x, y, color.RGBA{shade, shade, shade + 6, 255})
	}

	for _, obs := range track.Obstacles {
		g.generateForest(img, obs, rng)
		g.drawKerb(img, obs)
	}

	g.drawFinishLine(img, track.FinishLine)
	return img
}

// generateForest fills one rect with grass, bushes and trees, clipped to it
func (g *Generator) generateForest(img *image.RGBA, area geom.Rect, rng *rand.Rand) {
	g.fill(img, area, grass)

	for i := 0; i < area.W*area.H/10; i++ {
		x := area.X + rng.Intn(max(area.W, 1))
		y := area.Y + rng.Intn(max(area.H, 1))
		shade := uint8(80 + rng.Intn(60))
		g.plot(img, area, x, y, color.RGBA{30, shade, 30, 255})
	}

	for y := area.Y; y < area.Bottom(); y += 10 {
		density := 0.5 + 0.3*math.Sin(float64(y)*0.01)

		for x := area.X; x < area.Right(); x += 5 + rng.Intn(15) {
			if rng.Float64() > density {
				continue
			}
			drawX := x + rng.Intn(10) - 5
			drawY := y + rng.Intn(10) - 5

			if rng.Float64() < 0.3 {
				g.drawTree(img, area, drawX, drawY, rng)
			} else {
				g.drawBush(img, area, drawX, drawY, rng)
			}
		}
	}
}

// drawTree draws a small pine seen from above as stacked triangles
func (g *Generator) drawTree(img *image.RGBA, clip geom.Rect, x, y int, rng *rand.Rand) {
	height := 20 + rng.Intn(15)
	width := 12 + rng.Intn(8)

	trunkColor := color.RGBA{60, 40, 20, 255}
	trunkW := 2 + rng.Intn(3)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx < trunkW/2+1; tx++ {
			g.plot(img, clip, x+tx, y-ty, trunkColor)
		}
	}

	leaves := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}
	for l := 0; l < 3; l++ {
		layerY := y - height/3 - l*height/4
		layerW := max(width-l*4, 4)
		for ly := 0; ly < height/3; ly++ {
			rowW := layerW * (height/3 - ly) / (height / 3)
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				g.plot(img, clip, x+lx, layerY-ly, leaves)
			}
		}
	}
}

// drawBush draws a round bush
func (g *Generator) drawBush(img *image.RGBA, clip geom.Rect, x, y int, rng *rand.Rand) {
	radius := 3 + rng.Intn(6)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.plot(img, clip, x+dx, y+dy, c)
			}
		}
	}
}

// drawKerb rings an obstacle with alternating red and white blocks
func (g *Generator) drawKerb(img *image.RGBA, r geom.Rect) {
	const thick = 3
	for x := r.X; x < r.Right(); x++ {
		c := kerbColor(x - r.X)
		for t := 0; t < thick; t++ {
			g.plot(img, r, x, r.Y+t, c)
			g.plot(img, r, x, r.Bottom()-1-t, c)
		}
	}
	for y := r.Y; y < r.Bottom(); y++ {
		c := kerbColor(y - r.Y)
		for t := 0; t < thick; t++ {
			g.plot(img, r, r.X+t, y, c)
			g.plot(img, r, r.Right()-1-t, y, c)
		}
	}
}

func kerbColor(offset int) color.RGBA {
	if (offset/10)%2 == 0 {
		return kerbRed
	}
	return kerbWhite
}

// drawFinishLine paints a black and white checkerboard over the line
func (g *Generator) drawFinishLine(img *image.RGBA, line geom.Rect) {
	for y := line.Y; y < line.Bottom(); y++ {
		for x := line.X; x < line.Right(); x++ {
			c := color.RGBA{245, 245, 245, 255}
			if ((x-line.X)/CheckerSize+(y-line.Y)/CheckerSize)%2 == 1 {
				c = color.RGBA{15, 15, 15, 255}
			}
			g.plot(img, line, x, y, c)
		}
	}
}

func (g *Generator) fill(img *image.RGBA, r geom.Rect, c color.RGBA) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			g.plot(img, r, x, y, c)
		}
	}
}

// plot sets one pixel if it lies inside both clip and the image
func (g *Generator) plot(img *image.RGBA, clip geom.Rect, x, y int, c color.RGBA) {
	if !inside(clip, x, y) || x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	img.SetRGBA(x, y, c)
}

func inside(r geom.Rect, x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
