package main

import (
	"fmt"
	"log"
	"os"

	"github.com/akamensky/argparse"
	"github.com/golangdaddy/zebra/pkg/game"
	"github.com/golangdaddy/zebra/pkg/models"
	"github.com/golangdaddy/zebra/pkg/sim"
	"github.com/golangdaddy/zebra/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	parser := argparse.NewParser("zebra", "Signal-controlled zebra crossing simulator")
	configPath := parser.String("c", "config", &argparse.Options{Help: "YAML settings file"})
	width := parser.Int("W", "width", &argparse.Options{Help: "Field width in pixels"})
	height := parser.Int("H", "height", &argparse.Options{Help: "Field height in pixels"})
	vehicleSpeed := parser.Float("v", "vehicle-speed", &argparse.Options{Help: "Vehicle speed in pixels per tick"})
	pedestrianSpeed := parser.Float("p", "pedestrian-speed", &argparse.Options{Help: "Pedestrian speed in pixels per tick"})
	cycle := parser.Int("C", "cycle", &argparse.Options{Help: "Ticks between automatic light changes"})
	seed := parser.Int("s", "seed", &argparse.Options{Help: "Random seed (0 = from clock)"})
	mute := parser.Flag("m", "mute", &argparse.Options{Help: "Disable the accident alarm"})
	writeConfig := parser.String("w", "write-config", &argparse.Options{Help: "Write the effective settings to this file and exit"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	settings := models.DefaultSettings()
	if *configPath != "" {
		loaded, err := models.LoadFromFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		settings = loaded
	}

	// Flags override the file; zero means "not given"
	if *width > 0 {
		settings.Width = *width
	}
	if *height > 0 {
		settings.Height = *height
	}
	if *vehicleSpeed > 0 {
		settings.VehicleSpeed = *vehicleSpeed
	}
	if *pedestrianSpeed > 0 {
		settings.PedestrianSpeed = *pedestrianSpeed
	}
	if *cycle > 0 {
		settings.CycleTicks = *cycle
	}
	if *seed != 0 {
		settings.Seed = int64(*seed)
	}
	if *mute {
		settings.Mute = true
	}

	if err := settings.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	if *writeConfig != "" {
		if err := settings.SaveToFile(*writeConfig); err != nil {
			log.Fatalf("Failed to write settings: %v", err)
		}
		log.Printf("Settings written to %s", *writeConfig)
		return
	}

	simulation := sim.New(settings.Config(), settings.EffectiveSeed())

	var alarm *ui.Alarm
	if !settings.Mute {
		alarm = ui.NewAlarm()
	}

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle("Zebra Crossing")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(sim.TicksPerSecond)

	if err := ebiten.RunGame(game.NewGame(simulation, alarm)); err != nil {
		log.Fatal(err)
	}
}
