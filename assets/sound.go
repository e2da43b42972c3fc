package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/arrowlanes/common"
)

const SampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// Context returns the process wide audio context, creating it on first use.
func Context() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// Tone describes a short decaying sine blip.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64
}

// HitTone is played when an arrow lands.
var HitTone = Tone{Freq: 880, Duration: 120 * time.Millisecond, Volume: 0.4}

// PCM renders t as 16-bit little endian stereo at SampleRate, the format
// ebiten's audio players consume.
func (t Tone) PCM() []byte {
	n := int(math.Round(t.Duration.Seconds() * SampleRate))
	if n <= 0 {
		return nil
	}

	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := common.Lerp(1, 0, common.Clamp01(float32(i)/float32(n)))
		v := math.Sin(2*math.Pi*t.Freq*float64(i)/SampleRate) * t.Volume * float64(env*env)
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}

// NewPlayer creates a player for t on the shared context.
func (t Tone) NewPlayer() (*audio.Player, error) {
	pcm := t.PCM()
	if len(pcm) == 0 {
		return nil, fmt.Errorf("assets: empty tone %+v", t)
	}
	return Context().NewPlayerFromBytes(pcm), nil
}
