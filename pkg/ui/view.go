package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/zebra/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	roadGrey    = color.RGBA{128, 128, 128, 255}
	stripeWhite = color.RGBA{255, 255, 255, 255}
	poleGrey    = color.RGBA{77, 77, 77, 255}
	housingGrey = color.RGBA{51, 51, 51, 255}
	lampRed     = color.RGBA{255, 0, 0, 255}
	lampGreen   = color.RGBA{0, 255, 0, 255}
	walkerAmber = color.RGBA{255, 204, 0, 255}
)

// view draws world-space shapes onto the screen. World y grows upwards, so
// every rectangle is flipped against the field height.
type view struct {
	screen  *ebiten.Image
	cfg     sim.Config
	screenH int
}

func newView(screen *ebiten.Image, cfg sim.Config) *view {
	return &view{
		screen:  screen,
		cfg:     cfg,
		screenH: screen.Bounds().Dy(),
	}
}

// fillRect fills the world rectangle whose lower-left corner is (x, y).
func (v *view) fillRect(x, y, w, h float64, clr color.Color) {
	top := v.cfg.Height - y - h
	vector.DrawFilledRect(v.screen, float32(x), float32(top), float32(w), float32(h), clr, false)
}

// drawRoad paints the road band and the zebra stripes, 10 wide every 20
func (v *view) drawRoad() {
	c := v.cfg
	v.fillRect(0, c.RoadBottom, c.Width, c.RoadTop-c.RoadBottom, roadGrey)
	for x := c.ZebraStart; x < c.ZebraEnd; x += 20 {
		v.fillRect(x, c.RoadBottom, 10, c.RoadTop-c.RoadBottom, stripeWhite)
	}
}

// lightGeometry returns the pole and housing rectangles of the traffic
// light, which stands on the far kerb just before the crossing.
func (v *view) lightGeometry() (poleX0, poleX1, poleY0, poleY1, boxX0, boxX1, boxY0, boxY1 float64) {
	c := v.cfg
	poleX0 = c.ZebraStart - c.Width/16
	poleX1 = c.ZebraStart - 3*c.Width/80
	poleY0 = c.RoadTop
	poleY1 = c.RoadTop + c.Height/6

	boxX0 = poleX0 - c.Width/80
	boxX1 = poleX1 + c.Width/80
	boxY0 = poleY0 + 2*c.Height/15
	boxY1 = poleY1 + c.Height/12
	return
}

// drawTrafficLight paints the pole, the housing and the lit lamp
func (v *view) drawTrafficLight(state sim.LightState) {
	poleX0, poleX1, poleY0, poleY1, boxX0, boxX1, boxY0, boxY1 := v.lightGeometry()
	v.fillRect(poleX0, poleY0, poleX1-poleX0, poleY1-poleY0, poleGrey)
	v.fillRect(boxX0, boxY0, boxX1-boxX0, boxY1-boxY0, housingGrey)

	lamp := lampGreen
	if state == sim.Red {
		lamp = lampRed
	}
	insetX := (boxX1 - boxX0) * 0.2
	insetY := (boxY1 - boxY0) * 0.25
	v.fillRect(boxX0+insetX, boxY0+insetY, boxX1-boxX0-2*insetX, boxY1-boxY0-2*insetY, lamp)
}

// drawTimer prints the seconds left in the current phase above the light
func (v *view) drawTimer(seconds int, manual bool) {
	c := v.cfg
	label := fmt.Sprintf("%d", seconds)
	if manual {
		label = "M"
	}
	_, _, _, _, boxX0, _, _, boxY1 := v.lightGeometry()
	worldY := boxY1 + c.Height/40
	drawTextAt(v.screen, label, boxX0, c.Height-worldY-18, 18, stripeWhite)
}

// drawPedestrian paints a walker with a darker head
func (v *view) drawPedestrian(p sim.Pedestrian) {
	v.fillRect(p.X, p.Y, sim.PedestrianWidth, sim.PedestrianHeight, walkerAmber)
	v.fillRect(p.X+3, p.Y+sim.PedestrianHeight-9, sim.PedestrianWidth-6, 7, color.RGBA{140, 90, 40, 255})
}

// drawAdvisory prints the current advisory in the top-left corner
func (v *view) drawAdvisory(msg string) {
	margin := v.cfg.Height / 30
	drawTextAt(v.screen, msg, margin, margin, 18, lampRed)
}

// drawGameOver dims the scene and shows the accident overlay
func (v *view) drawGameOver() {
	w, h := float32(v.screen.Bounds().Dx()), float32(v.screenH)
	vector.DrawFilledRect(v.screen, 0, 0, w, h, color.RGBA{0, 0, 0, 178}, false)

	cx, cy := float64(w)/2, float64(h)/2
	drawTextCentered(v.screen, "GAME OVER", cx, cy-48, 36, lampRed)
	drawTextCentered(v.screen, "Press R to Reset or Q to Quit", cx, cy+8, 18, stripeWhite)
}
