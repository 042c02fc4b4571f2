package ui

import (
	"image/color"

	"github.com/golangdaddy/zebra/pkg/sim"
)

var (
	outlineColor    = color.RGBA{20, 20, 20, 255}
	windshieldColor = color.RGBA{150, 200, 255, 255}
	wheelColor      = color.RGBA{30, 30, 30, 255}
)

// drawVehicle renders a top-down car facing right: body, outline,
// windshield towards the front and four wheels.
func (v *view) drawVehicle(car sim.Vehicle) {
	const (
		w            = sim.VehicleWidth
		h            = sim.VehicleHeight
		outlineWidth = 2.0
		wheelLength  = 10.0
		wheelDepth   = 4.0
	)

	// Wheels stick out slightly above and below the body
	for _, wx := range []float64{car.X + 6, car.X + w - 6 - wheelLength} {
		v.fillRect(wx, car.Y-wheelDepth/2, wheelLength, wheelDepth, wheelColor)
		v.fillRect(wx, car.Y+h-wheelDepth/2, wheelLength, wheelDepth, wheelColor)
	}

	v.fillRect(car.X, car.Y, w, h, outlineColor)
	v.fillRect(car.X+outlineWidth, car.Y+outlineWidth, w-2*outlineWidth, h-2*outlineWidth, car.Color)

	// Windshield across 60% of the width, just behind the bonnet
	wsLength := w * 0.2
	wsDepth := h * 0.6
	v.fillRect(car.X+w*0.6, car.Y+(h-wsDepth)/2, wsLength, wsDepth, windshieldColor)
}
