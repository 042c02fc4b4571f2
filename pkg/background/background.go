package background

import (
	"image"
	"image/color"
	"math/rand"
)

// Generator renders the scenery around the road: a sky gradient with a row
// of trees on the horizon above the road, and textured grass below it.
type Generator struct {
	Width  int
	Height int
	// Screen rows of the road edges; the road itself is left transparent.
	RoadTop    int
	RoadBottom int
}

var (
	skyTop      = color.RGBA{135, 206, 250, 255}
	skyHorizon  = color.RGBA{0, 0, 128, 255}
	grassKerb   = color.RGBA{51, 204, 51, 255}
	grassBottom = color.RGBA{0, 128, 0, 255}
)

// NewGenerator creates a generator for a field whose road occupies screen
// rows [roadTop, roadBottom).
func NewGenerator(width, height, roadTop, roadBottom int) *Generator {
	return &Generator{
		Width:      width,
		Height:     height,
		RoadTop:    roadTop,
		RoadBottom: roadBottom,
	}
}

// Render draws the scenery into a plain RGBA image
func (g *Generator) Render(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	// Sky: light at the top, dark towards the horizon
	for y := 0; y < g.RoadTop && y < g.Height; y++ {
		c := blend(skyTop, skyHorizon, float64(y)/float64(max(g.RoadTop, 1)))
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	// Grass: light at the kerb, dark at the bottom edge
	grassRows := g.Height - g.RoadBottom
	for y := g.RoadBottom; y < g.Height; y++ {
		c := blend(grassKerb, grassBottom, float64(y-g.RoadBottom)/float64(max(grassRows, 1)))
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	// Grass texture
	for i := 0; i < g.Width*grassRows/10; i++ {
		x := rng.Intn(g.Width)
		y := g.RoadBottom + rng.Intn(max(grassRows, 1))
		if y >= g.Height {
			continue
		}
		base := img.RGBAAt(x, y)
		shade := uint8(rng.Intn(40))
		img.SetRGBA(x, y, color.RGBA{base.R / 2, clampAdd(base.G, shade), base.B / 2, 255})
	}

	// Treeline sitting on the horizon
	for x := 0; x < g.Width; x += 25 + rng.Intn(40) {
		if rng.Float64() < 0.3 {
			continue
		}
		g.drawTree(img, x, g.RoadTop-1, rng)
	}

	return img
}

// drawTree draws a simple pine tree whose trunk stands on baseY
func (g *Generator) drawTree(img *image.RGBA, x, baseY int, rng *rand.Rand) {
	height := 30 + rng.Intn(30)
	width := 16 + rng.Intn(12)

	trunkColor := color.RGBA{60, 40, 20, 255}
	trunkW := 4 + rng.Intn(3)
	trunkH := height / 4
	for ty := 0; ty < trunkH; ty++ {
		for tx := -trunkW / 2; tx < trunkW/2; tx++ {
			g.set(img, x+tx, baseY-ty, trunkColor)
		}
	}

	leavesColor := color.RGBA{
		uint8(10 + rng.Intn(20)),
		uint8(60 + rng.Intn(50)),
		uint8(20 + rng.Intn(20)),
		255,
	}
	crownH := height - trunkH
	for ly := 0; ly < crownH; ly++ {
		rowW := width * (crownH - ly) / crownH
		for lx := -rowW / 2; lx < rowW/2; lx++ {
			g.set(img, x+lx, baseY-trunkH-ly, leavesColor)
		}
	}
}

func (g *Generator) set(img *image.RGBA, x, y int, c color.RGBA) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		img.SetRGBA(x, y, c)
	}
}

func blend(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(p, q uint8) uint8 {
		return uint8(float64(p) + (float64(q)-float64(p))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

func clampAdd(v, d uint8) uint8 {
	if int(v)+int(d) > 255 {
		return 255
	}
	return v + d
}
