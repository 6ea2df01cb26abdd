package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"go.uber.org/zap"
)

const (
	sampleRate   = 44100
	channelCount = 1
)

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxErr        error
)

// Tone describes one note of a chime
type Tone struct {
	Frequency float64
	Duration  time.Duration
}

// SuccessChime is played after a subject is added.
var SuccessChime = []Tone{
	{Frequency: 880, Duration: 90 * time.Millisecond},
	{Frequency: 1320, Duration: 140 * time.Millisecond},
}

// Player plays short chimes on the shared audio context
type Player struct {
	logger *zap.Logger
	volume float64

	mu      sync.Mutex
	current *oto.Player
}

// NewPlayer creates a player. Volume is clamped to [0, 1].
func NewPlayer(volume float64, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{logger: logger, volume: math.Max(0, math.Min(1, volume))}
}

func initAudioContext() (*oto.Context, error) {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			audioCtxErr = err
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan
		globalAudioCtx = ctx
	})
	return globalAudioCtx, audioCtxErr
}

// Play starts the chime and returns without waiting for it to finish.
// Audio failures are logged; a missing sound device is not an error for callers.
func (p *Player) Play(tones []Tone) {
	if p == nil || len(tones) == 0 {
		return
	}

	go func() {
		ctx, err := initAudioContext()
		if err != nil {
			p.logger.Warn("audio context unavailable", zap.Error(err))
			return
		}

		player := ctx.NewPlayer(bytes.NewReader(Synthesize(tones, p.volume)))

		p.mu.Lock()
		if p.current != nil {
			p.current.Pause()
			p.current.Close()
		}
		p.current = player
		p.mu.Unlock()

		player.Play()
	}()
}

// Stop stops the chime that is currently playing
func (p *Player) Stop() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		p.current.Pause()
		if err := p.current.Close(); err != nil {
			p.logger.Debug("failed to close audio player", zap.Error(err))
		}
		p.current = nil
	}
}

// Synthesize renders tones as signed 16-bit little-endian mono PCM. Each tone
// fades out linearly to avoid clicks.
func Synthesize(tones []Tone, volume float64) []byte {
	var buf bytes.Buffer
	amplitude := volume * math.MaxInt16

	for _, tone := range tones {
		n := int(tone.Duration.Seconds() * sampleRate)
		for i := 0; i < n; i++ {
			fade := 1 - float64(i)/float64(n)
			v := amplitude * fade * math.Sin(2*math.Pi*tone.Frequency*float64(i)/sampleRate)
			binary.Write(&buf, binary.LittleEndian, int16(v))
		}
	}
	return buf.Bytes()
}
