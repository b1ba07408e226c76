package app

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies the game's procedural sound effects.
type SoundKind int

const (
	SoundCrash SoundKind = iota
	SoundGameOver
	SoundMenuSelect
	SoundWhoosh // an opponent recycling past
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume = 0.55

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect. Safe to call
// before InitAudio or when init failed; it just does nothing.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundCrash:
		return genCrash()
	case SoundGameOver:
		return genGameOver()
	case SoundMenuSelect:
		return genMenuSelect()
	case SoundWhoosh:
		return genWhoosh()
	}
	return nil
}

// genCrash: low thump plus a burst of filtered noise.
func genCrash() []byte {
	n := sampleRate * 220 / 1000
	buf := makeBuf(n)
	noise := uint64(0x9E3779B97F4A7C15)
	prev := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.005, 0.4, 0.2, 0.35)

		noise ^= noise >> 12
		noise ^= noise << 25
		noise ^= noise >> 27
		white := float64(int64(noise*2685821657736338717)>>11) / (1 << 52)
		prev += (white - prev) * 0.18 // crude lowpass
		thump := math.Sin(2*math.Pi*(70-30*p)*t) * 0.8
		s := (thump + prev*0.7) * env * 0.85
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: slow descending triad.
func genGameOver() []byte {
	n := sampleRate * 900 / 1000
	buf := makeBuf(n)
	freqs := [3]float64{392, 311, 233}
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		seg := int(p * 3)
		if seg > 2 {
			seg = 2
		}
		segP := p*3 - float64(seg)
		env := adsr(segP, 0.02, 0.5, 0.25, 0.3)
		s := fm(t, freqs[seg], 0.5, 0.8) * env * 0.42
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

func genMenuSelect() []byte {
	n := sampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genWhoosh: band of noise swept downward.
func genWhoosh() []byte {
	n := sampleRate * 180 / 1000
	buf := makeBuf(n)
	noise := uint64(0xC2B2AE3D27D4EB4F)
	prev := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := adsr(p, 0.15, 0.3, 0.4, 0.4)

		noise ^= noise >> 12
		noise ^= noise << 25
		noise ^= noise >> 27
		white := float64(int64(noise*2685821657736338717)>>11) / (1 << 52)
		cutoff := 0.35 - 0.25*p
		prev += (white - prev) * cutoff
		putStereoF32(buf, i, softSat(prev*env*0.5))
	}
	return buf
}

// SetSfxVolume adjusts effect volume; 0 disables effects entirely.
func SetSfxVolume(vol float64) {
	if vol < 0 {
		vol = 0
	}
	if vol > 1 {
		vol = 1
	}
	sfxVolume = vol
}
