package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// face is shared by every screen; bitmapfont glyphs are 12px tall at scale 1.
var face = text.NewGoXFace(bitmapfont.Face)

const faceSize = 12.0

// drawTextAt draws str with its top-left corner at (x, y), scaled so the
// glyphs are size pixels tall.
func drawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / faceSize

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)

	text.Draw(screen, str, face, op)
}

// drawTextCentered draws str horizontally centred on cx.
func drawTextCentered(screen *ebiten.Image, str string, cx, y float64, size float64, clr color.Color) {
	width := text.Advance(str, face) * size / faceSize
	drawTextAt(screen, str, cx-width/2, y, size, clr)
}
