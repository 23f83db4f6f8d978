package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

const sfxVolume = 0.8

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundExplosion SoundKind = iota
	SoundShatter
	SoundOrb
	SoundSpore
	SoundThrust
	SoundLevelUp
	SoundGameOver
	SoundMenuSelect
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

// activeExplosions limits simultaneous explosion sounds to avoid speaker clipping.
var activeExplosions int32

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	PlaySoundWithGain(kind, 1.0)
}

func PlaySoundWithGain(kind SoundKind, gain float64) {
	if globalAudio == nil || gain <= 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	// Limit simultaneous explosions to 2 — more causes speaker clipping.
	if kind == SoundExplosion {
		if atomic.LoadInt32(&activeExplosions) >= 2 {
			return
		}
		atomic.AddInt32(&activeExplosions, 1)
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		if kind == SoundExplosion {
			atomic.AddInt32(&activeExplosions, -1)
		}
		return
	}
	go func() {
		if kind == SoundExplosion {
			defer atomic.AddInt32(&activeExplosions, -1)
		}
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * clampF(gain, 0, 1))
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

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
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

// softSat applies gentle tanh-like saturation — no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
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

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundExplosion:
		return genExplosion()
	case SoundShatter:
		return genShatter()
	case SoundOrb:
		return genOrb()
	case SoundSpore:
		return genSpore()
	case SoundThrust:
		return genThrust()
	case SoundLevelUp:
		return genLevelUp()
	case SoundGameOver:
		return genGameOver()
	case SoundMenuSelect:
		return genMenuSelect()
	}
	return nil
}

// genExplosion: sub boom + noise body with a fast exponential tail.
func genExplosion() []byte {
	n := int(0.5 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0xB00B00)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		boom := math.Sin(2*math.Pi*(60-30*p)*t) * math.Exp(-p*5)
		lp = lp*0.82 + lcg(&seed)*0.18
		body := lp * math.Exp(-p*7) * 0.9
		putStereoF32(buf, i, softSat(boom*0.9+body))
	}
	return buf
}

// genShatter: bright inharmonic FM ping over a short glassy noise burst.
func genShatter() []byte {
	n := int(0.28 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0xC4757A1)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 9)
		ping := fm(t, 1680, 2.76, 2.2*env) * env * 0.5
		glass := lcg(&seed) * math.Exp(-p*16) * 0.22
		putStereoF32(buf, i, softSat(ping+glass))
	}
	return buf
}

// genOrb: ascending FM bell — bright and short.
func genOrb() []byte {
	n := int(0.14 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.5, 0.0, 0.1)
		freq := 620 + 740*p
		s := fm(t, freq, 2.0, 3.0*env) * env * 0.45
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.05
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genSpore: dull filtered-noise whump.
func genSpore() []byte {
	n := int(0.18 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x5B04E)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 8)
		lp = lp*0.9 + lcg(&seed)*0.1
		thump := fm(t, 90, 0.5, 1.0) * math.Exp(-p*14)
		putStereoF32(buf, i, softSat((lp*0.5+thump*0.4)*env))
	}
	return buf
}

// genThrust: short airy whoosh, quiet so repeats can layer.
func genThrust() []byte {
	n := int(0.22 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x7845757)
	lp := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := adsr(p, 0.2, 0.2, 0.6, 0.4)
		lp = lp*0.7 + lcg(&seed)*0.3
		putStereoF32(buf, i, softSat(lp*env*0.16))
	}
	return buf
}

// genLevelUp: rising three-note arpeggio.
func genLevelUp() []byte {
	n := int(0.6 * SampleRate)
	buf := makeBuf(n)
	notes := []float64{392, 494, 659}
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		idx := int(p * 3)
		if idx > 2 {
			idx = 2
		}
		np := p*3 - float64(idx)
		env := adsr(np, 0.05, 0.4, 0.3, 0.3)
		s := fm(t, notes[idx], 2.0, 1.6*env) * env * 0.4
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: slow falling tone with a grim sub layer.
func genGameOver() []byte {
	n := int(1.1 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.2, 0.6, 0.4)
		freq := 300 - 180*p
		s := fm(t, freq, 0.5, 1.2) * env * 0.4
		s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.2
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genMenuSelect: tight click-pop.
func genMenuSelect() []byte {
	n := int(0.07 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.6, 0.0, 0.1)
		s := fm(t, 880, 1.5, 2.0*env) * env * 0.4
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
