package sound

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/plus3/blockfall/loop"
)

// SampleRate is the output rate in Hz.
const SampleRate = 44100

// Voices is the number of cues that can sound at once. A cue that arrives
// while every voice is busy cuts off the next voice in turn.
const Voices = 4

const (
	bytesPerFrame = 4
	toneGap       = 10 * time.Millisecond
	fade          = 3 * time.Millisecond
)

// output is the part of *oto.Player a voice drives.
type output interface {
	Play()
	IsPlaying() bool
	Seek(offset int64, whence int) (int64, error)
}

// pcmSource is a rewindable PCM buffer that can be refilled while its
// output reads from it.
type pcmSource struct {
	mu sync.Mutex
	r  bytes.Reader
}

func (s *pcmSource) Read(b []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Read(b)
}

func (s *pcmSource) Seek(offset int64, whence int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Seek(offset, whence)
}

func (s *pcmSource) load(pcm []byte) {
	s.mu.Lock()
	s.r.Reset(pcm)
	s.mu.Unlock()
}

// voice is one reusable output channel.
type voice struct {
	src *pcmSource
	out output
}

// start replaces whatever the voice was playing with pcm. Seeking drops the
// output's buffered samples.
func (v *voice) start(pcm []byte) {
	v.src.load(pcm)
	if _, err := v.out.Seek(0, io.SeekStart); err != nil {
		return
	}
	v.out.Play()
}

// Player renders cues and plays them on a fixed set of voices. A Player
// with no voices is silent.
type Player struct {
	mu      sync.Mutex
	ctx     *oto.Context
	voices  []*voice
	next    int
	enabled bool
	volume  float64
}

// NewPlayer opens the audio device. Only one device context may exist per
// process.
func NewPlayer() (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	voices := make([]*voice, Voices)
	for i := range voices {
		src := &pcmSource{}
		voices[i] = &voice{src: src, out: ctx.NewPlayer(src)}
	}
	return &Player{ctx: ctx, voices: voices, enabled: true, volume: 0.7}, nil
}

// Silent returns a player that never makes a sound.
func Silent() *Player {
	return &Player{}
}

func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	p.enabled = enabled
	p.mu.Unlock()
}

func (p *Player) SetVolume(volume float64) {
	p.mu.Lock()
	p.volume = clampVolume(volume)
	p.mu.Unlock()
}

// Enabled reports whether Play will produce output.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled && len(p.voices) > 0
}

// Play starts a cue on a free voice and returns immediately.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || len(p.voices) == 0 {
		return
	}

	pcm := Render(c, p.volume)
	if len(pcm) == 0 {
		return
	}
	p.pickVoice().start(pcm)
}

// pickVoice returns the first idle voice at or after next, or the voice at
// next when all are busy.
func (p *Player) pickVoice() *voice {
	n := len(p.voices)
	idx := p.next
	for i := range n {
		if j := (p.next + i) % n; !p.voices[j].out.IsPlaying() {
			idx = j
			break
		}
	}
	p.next = (idx + 1) % n
	return p.voices[idx]
}

// Listener plays the cue for each loop event.
func (p *Player) Listener() loop.Listener {
	return func(ev loop.Event) {
		if c, ok := CueFor(ev); ok {
			p.Play(c)
		}
	}
}

// Render synthesizes a cue as interleaved stereo signed 16-bit PCM.
func Render(c Cue, volume float64) []byte {
	tones := c.tones()
	if len(tones) == 0 {
		return nil
	}

	gapFrames := frames(toneGap)
	total := 0
	for i, t := range tones {
		total += frames(t.duration)
		if i < len(tones)-1 {
			total += gapFrames
		}
	}

	buf := make([]byte, total*bytesPerFrame)
	offset := 0
	for _, t := range tones {
		renderTone(buf[offset:], t, t.volume*clampVolume(volume))
		offset += (frames(t.duration) + gapFrames) * bytesPerFrame
	}
	return buf
}

func frames(d time.Duration) int {
	return int(float64(SampleRate) * d.Seconds())
}

func renderTone(buf []byte, t tone, volume float64) {
	const maxInt16 = 1<<15 - 1
	n := frames(t.duration)
	fadeFrames := frames(fade)

	for i := range n {
		env := 1.0
		if i < fadeFrames {
			env = float64(i) / float64(fadeFrames)
		} else if i > n-fadeFrames {
			env = float64(n-i) / float64(fadeFrames)
		}

		sample := math.Sin(2 * math.Pi * t.frequency * float64(i) / SampleRate)
		v := int16(sample * volume * env * maxInt16)
		buf[i*4] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}
}

func clampVolume(v float64) float64 {
	return max(0, min(v, 1))
}
