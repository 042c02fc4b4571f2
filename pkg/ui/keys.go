package ui

import (
	"github.com/golangdaddy/zebra/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = []struct {
	key ebiten.Key
	cmd sim.Command
}{
	{ebiten.KeyL, sim.CmdToggleLightMode},
	{ebiten.KeyP, sim.CmdRequestPedestrians},
	{ebiten.KeyV, sim.CmdSpawnVehicle},
	{ebiten.KeyR, sim.CmdReset},
	{ebiten.KeyQ, sim.CmdQuit},
}

var keyHelp = []string{
	"V: spawn vehicle   P: pedestrians (red light only)",
	"L: automatic / manual light   R: reset",
}

// pressedCommands returns the commands whose keys went down this frame, in
// binding order.
func pressedCommands() []sim.Command {
	var cmds []sim.Command
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}
