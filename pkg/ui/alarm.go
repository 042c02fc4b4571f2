package ui

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate    = 44100
	alarmDuration = 0.6 // seconds
	alarmVolume   = 0.3
)

// Alarm plays a two-tone siren when an accident happens. A nil *Alarm is
// silent.
type Alarm struct {
	player *audio.Player
}

// NewAlarm creates the audio context and renders the siren. Only one audio
// context may exist per process.
func NewAlarm() *Alarm {
	ctx := audio.NewContext(sampleRate)
	return &Alarm{player: ctx.NewPlayerFromBytes(sirenPCM())}
}

// Play restarts the siren from the beginning
func (a *Alarm) Play() {
	if a == nil || a.player == nil {
		return
	}
	if err := a.player.SetPosition(0); err != nil {
		log.Printf("alarm: rewind failed: %v", err)
		return
	}
	a.player.Play()
}

// sirenPCM renders 16-bit little-endian stereo samples alternating between
// two pitches every 0.15s.
func sirenPCM() []byte {
	frames := int(sampleRate * alarmDuration)
	buf := make([]byte, frames*4)
	phase := 0.0
	for i := 0; i < frames; i++ {
		freq := 880.0
		if (i/(sampleRate*15/100))%2 == 1 {
			freq = 660.0
		}
		phase += 2 * math.Pi * freq / sampleRate
		sample := int16(math.Sin(phase) * alarmVolume * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}
	return buf
}
