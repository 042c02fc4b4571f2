package game

import (
	"log"

	"github.com/golangdaddy/zebra/pkg/sim"
	"github.com/golangdaddy/zebra/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and switches between screens
type Game struct {
	sim           *sim.Simulation
	alarm         *ui.Alarm
	currentScreen Screen
	width, height int
}

// NewGame creates a game around an existing simulation. alarm may be nil.
func NewGame(s *sim.Simulation, alarm *ui.Alarm) *Game {
	cfg := s.Config()
	g := &Game{
		sim:    s,
		alarm:  alarm,
		width:  int(cfg.Width),
		height: int(cfg.Height),
	}
	g.subscribe()

	g.currentScreen = ui.NewTitleScreen(func() {
		log.Printf("Simulation started (%dx%d, cycle %d ticks)", g.width, g.height, cfg.CycleTicks)
		g.currentScreen = ui.NewCrossingScreen(g.sim)
	})

	return g
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout follows the window size. A changed size replaces the simulation's
// geometry so the road and crossing keep their proportions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.sim.Resize(outsideWidth, outsideHeight)
		log.Printf("Field resized to %dx%d", outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

// subscribe logs simulation events and sounds the alarm on accidents
func (g *Game) subscribe() {
	bus := g.sim.Events()
	bus.Subscribe(sim.EventLightChanged, func(e sim.Event) {
		if e.Manual {
			log.Printf("Light set to %s (manual)", e.Light)
			return
		}
		log.Printf("Light changed to %s", e.Light)
	})
	bus.Subscribe(sim.EventPedestrianHold, func(e sim.Event) {
		log.Printf("Holding red for %d pedestrians", e.Count)
	})
	bus.Subscribe(sim.EventAccident, func(e sim.Event) {
		c := e.Collision
		log.Printf("Accident: vehicle %s at (%.1f, %.1f) hit pedestrian %s at (%.1f, %.1f)",
			c.Vehicle.ID, c.Vehicle.X, c.Vehicle.Y, c.Pedestrian.ID, c.Pedestrian.X, c.Pedestrian.Y)
		g.alarm.Play()
	})
	bus.Subscribe(sim.EventReset, func(sim.Event) {
		log.Printf("Simulation reset")
	})
	bus.Subscribe(sim.EventRejected, func(e sim.Event) {
		log.Printf("Command %v", e.Err)
	})
}
