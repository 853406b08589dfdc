// Package audio maps gameplay cue events to short tones. It is a passive
// collaborator: the core raises events, this package plays them, and nothing
// flows back.
package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/9MidhunPM/Nostalgia-Sim/internal/pacman"
)

const sampleRate = 44100

var (
	ctxOnce sync.Once
	ctx     *audio.Context
)

// audioContext creates the shared ebiten audio context at most once. Audio is
// suppressed entirely when NOSTALGIA_DISABLE_AUDIO=1, which tests set so no
// device is touched.
func audioContext() *audio.Context {
	if os.Getenv("NOSTALGIA_DISABLE_AUDIO") == "1" {
		return nil
	}
	ctxOnce.Do(func() {
		ctx = audio.NewContext(sampleRate)
	})
	return ctx
}

// Manager synthesizes a distinct beep per event. It implements
// pacman.EventSink.
type Manager struct {
	ctx    *audio.Context
	sounds map[pacman.Event][]byte
}

// NewManager builds the cue table. With audio disabled the manager still
// exists and OnEvent is a no-op, so callers never nil-check.
func NewManager() *Manager {
	return &Manager{
		ctx: audioContext(),
		sounds: map[pacman.Event][]byte{
			pacman.EventRoundStarted: beepWAV(120, 523),
			pacman.EventPelletEaten:  beepWAV(60, 880),
			pacman.EventPowerPellet:  beepWAV(150, 660),
			pacman.EventGhostEaten:   beepWAV(200, 440),
			pacman.EventPlayerDied:   beepWAV(400, 220),
		},
	}
}

// OnEvent implements pacman.EventSink. Each play decodes from bytes so cues
// can overlap.
func (m *Manager) OnEvent(e pacman.Event) {
	if m == nil || m.ctx == nil {
		return
	}
	raw, ok := m.sounds[e]
	if !ok {
		return
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return
	}
	p, err := m.ctx.NewPlayer(stream)
	if err != nil {
		return
	}
	p.Play()
}

// beepWAV renders a 16-bit PCM mono WAV containing a sine tone.
func beepWAV(durationMs int, freq float64) []byte {
	numSamples := sampleRate * durationMs / 1000
	dataSize := numSamples * 2
	buf := make([]byte, 44+dataSize)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16) // PCM chunk size
	binary.LittleEndian.PutUint16(buf[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(buf[22:24], 1)  // mono
	binary.LittleEndian.PutUint32(buf[24:28], sampleRate)
	binary.LittleEndian.PutUint32(buf[28:32], sampleRate*2) // byte rate
	binary.LittleEndian.PutUint16(buf[32:34], 2)            // block align
	binary.LittleEndian.PutUint16(buf[34:36], 16)           // bits per sample
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))

	const amp = 0.25
	for i := 0; i < numSamples; i++ {
		t := float64(i) / sampleRate
		v := int16(math.Sin(2*math.Pi*freq*t) * 32767 * amp)
		binary.LittleEndian.PutUint16(buf[44+i*2:], uint16(v))
	}
	return buf
}
