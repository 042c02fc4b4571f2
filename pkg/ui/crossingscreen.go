package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/zebra/pkg/background"
	"github.com/golangdaddy/zebra/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

const scenerySeed = 1

// CrossingScreen runs the simulation: one tick per Update, one snapshot
// rendered per Draw.
type CrossingScreen struct {
	sim *sim.Simulation

	// Scenery is rendered once per field size
	scenery            *ebiten.Image
	sceneryW, sceneryH int
}

// NewCrossingScreen creates the main simulation screen
func NewCrossingScreen(s *sim.Simulation) *CrossingScreen {
	return &CrossingScreen{sim: s}
}

// Update handles operator input, then advances the simulation one tick.
// It returns ebiten.Termination once quit is accepted.
func (cs *CrossingScreen) Update() error {
	for _, cmd := range pressedCommands() {
		err := cs.sim.Execute(cmd)
		if cmd == sim.CmdQuit && err == nil {
			return ebiten.Termination
		}
	}
	cs.sim.Tick()
	return nil
}

// Draw renders the crossing
func (cs *CrossingScreen) Draw(screen *ebiten.Image) {
	snap := cs.sim.Snapshot()
	v := newView(screen, snap.Config)

	screen.DrawImage(cs.sceneryFor(snap.Config), nil)
	v.drawRoad()
	v.drawTrafficLight(snap.Light)
	for _, vehicle := range snap.Vehicles {
		v.drawVehicle(vehicle)
	}
	for _, p := range snap.Pedestrians {
		v.drawPedestrian(p)
	}
	v.drawTimer(snap.SecondsToSwitch, snap.Manual)
	v.drawHUD(snap)
	if snap.Advisory.Active() {
		v.drawAdvisory(snap.Advisory.Message)
	}
	if snap.Halted {
		v.drawGameOver()
	}
}

// sceneryFor returns the cached scenery, regenerating it when the field
// size has changed.
func (cs *CrossingScreen) sceneryFor(cfg sim.Config) *ebiten.Image {
	w, h := int(cfg.Width), int(cfg.Height)
	if cs.scenery != nil && cs.sceneryW == w && cs.sceneryH == h {
		return cs.scenery
	}
	if cs.scenery != nil {
		cs.scenery.Deallocate()
	}
	gen := background.NewGenerator(w, h, h-int(cfg.RoadTop), h-int(cfg.RoadBottom))
	cs.scenery = ebiten.NewImageFromImage(gen.Render(scenerySeed))
	cs.sceneryW, cs.sceneryH = w, h
	return cs.scenery
}

// drawHUD prints entity counts and the light mode along the bottom edge
func (v *view) drawHUD(snap sim.Snapshot) {
	mode := "AUTO"
	if snap.Manual {
		mode = "MANUAL"
	}
	line := fmt.Sprintf("Vehicles: %d   Pedestrians: %d   Light: %s", len(snap.Vehicles), len(snap.Pedestrians), mode)
	if snap.Held {
		line += " (holding red)"
	}
	drawTextAt(v.screen, line, 10, float64(v.screenH)-48, 14, color.RGBA{230, 230, 230, 255})
	drawTextAt(v.screen, keyHelp[0]+"   "+keyHelp[1], 10, float64(v.screenH)-26, 12, color.RGBA{200, 220, 200, 255})
}
