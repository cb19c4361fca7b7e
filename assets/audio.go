package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/automoto/fpsmelee/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader handles synthesizing and caching of sound effects
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte // Cache rendered PCM per sound
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
// Call this at startup to avoid a hitch on first play.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := config.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}
	l.sfxCache[id] = SynthesizeTone(l.context.SampleRate(), tone, uint64(id))
	return nil
}

// LoadSFX returns a new player for the sound each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// SynthesizeTone renders t as 16-bit little-endian stereo PCM, the format
// ebiten's audio players consume. The noise is seeded so a sound renders the
// same every time.
func SynthesizeTone(sampleRate int, t config.Tone, seed uint64) []byte {
	n := int(t.Duration.Seconds() * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	attack := int(t.Attack.Seconds() * float64(sampleRate))
	rng := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))

	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Freq + (t.EndFreq-t.Freq)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		env := 1 - progress
		if attack > 0 && i < attack {
			env = float64(i) / float64(attack)
		}
		v := (1-t.Noise)*math.Sin(phase) + t.Noise*(rng.Float64()*2-1)
		s := int16(math.Max(-1, math.Min(1, v*env)) * math.MaxInt16 * 0.8)

		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
