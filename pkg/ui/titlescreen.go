package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen is shown before the simulation starts
type TitleScreen struct {
	startTime      time.Time
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	screen.Fill(color.RGBA{15, 20, 35, 255})
	elapsed := time.Since(ts.startTime).Seconds()

	drawTitleStripes(screen, width, height, elapsed)

	// Title pulses between 1.0 and 1.1 of its base size
	pulse := 1.0 + 0.1*math.Sin(elapsed*2.0)
	drawTextCentered(screen, "ZEBRA CROSSING", centerX, centerY-40, 48*pulse, color.RGBA{255, 200, 50, 255})
	drawTextCentered(screen, "Signal-controlled crossing simulator", centerX, centerY+40, 20, color.RGBA{180, 180, 200, 255})

	helpY := centerY + 100
	for _, line := range keyHelp {
		drawTextCentered(screen, line, centerX, helpY, 16, color.RGBA{150, 150, 170, 255})
		helpY += 24
	}

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		drawTextCentered(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-80, 20, color.RGBA{150, 200, 255, 255})
	}
}

// drawTitleStripes draws a band of zebra stripes drifting across the bottom
func drawTitleStripes(screen *ebiten.Image, width, height int, elapsed float64) {
	bandY := float32(height) * 5 / 6
	vector.DrawFilledRect(screen, 0, bandY, float32(width), 24, color.RGBA{50, 60, 80, 255}, false)

	offset := float32(math.Mod(elapsed*30, 40))
	for x := -40 + offset; x < float32(width); x += 40 {
		vector.DrawFilledRect(screen, x, bandY+2, 20, 20, color.RGBA{220, 220, 220, 255}, false)
	}
}
