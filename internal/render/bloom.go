package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
)

// bloomFactors weight the mip levels from sharpest to widest.
var bloomFactors = []float64{1.0, 0.8, 0.6, 0.4, 0.2}

// LevelWeights returns the contribution of each mip level. Radius 0 favours
// the sharp levels, radius 1 the wide ones.
func LevelWeights(radius float64) []float64 {
	w := make([]float64, len(bloomFactors))
	for i, f := range bloomFactors {
		w[i] = f + (1.2-2*f)*radius
	}
	return w
}

// Bloom adds a glow around bright pixels: a bright pass, a chain of
// half-size blurred copies, and an additive composite.
type Bloom struct {
	Strength  float64
	Radius    float64
	Threshold float64
	// Pulse is added to Strength for the next frames.
	Pulse float64

	bright *ebiten.Image
	mips   []*ebiten.Image
}

func NewBloom(strength, radius, threshold float64) *Bloom {
	return &Bloom{Strength: strength, Radius: radius, Threshold: threshold}
}

// Resize reallocates the buffers for a w×h source.
func (b *Bloom) Resize(w, h int) {
	b.release()
	b.bright = ebiten.NewImage(w, h)
	for i := range bloomFactors {
		w, h = max(w/2, 1), max(h/2, 1)
		b.mips = append(b.mips, ebiten.NewImage(w, h))
	}
}

func (b *Bloom) release() {
	if b.bright != nil {
		b.bright.Deallocate()
		b.bright = nil
	}
	for _, m := range b.mips {
		m.Deallocate()
	}
	b.mips = b.mips[:0]
}

// Apply composites the glow of src onto dst. Resize must have been called
// with the size of src.
func (b *Bloom) Apply(dst, src *ebiten.Image) {
	strength := b.Strength + b.Pulse
	if b.bright == nil || strength <= 0 {
		return
	}

	// Bright pass: (c - threshold) / (1 - threshold), clamped at zero.
	var cm colorm.ColorM
	cm.Translate(-b.Threshold, -b.Threshold, -b.Threshold, 0)
	cm.Scale(1/(1-b.Threshold), 1/(1-b.Threshold), 1/(1-b.Threshold), 1)
	b.bright.Clear()
	colorm.DrawImage(b.bright, src, cm, &colorm.DrawImageOptions{})

	prev := b.bright
	for _, m := range b.mips {
		m.Clear()
		downsample(m, prev)
		prev = m
	}

	dw, dh := dst.Bounds().Dx(), dst.Bounds().Dy()
	for i, w := range LevelWeights(b.Radius) {
		m := b.mips[i]
		mw, mh := m.Bounds().Dx(), m.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(dw)/float64(mw), float64(dh)/float64(mh))
		op.Filter = ebiten.FilterLinear
		op.Blend = ebiten.BlendLighter
		op.ColorScale.ScaleAlpha(float32(w * strength))
		dst.DrawImage(m, op)
	}
}

// tentTaps blur while halving: four offset linear samples averaged.
var tentTaps = [4][2]float64{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

func downsample(dst, src *ebiten.Image) {
	sx := float64(dst.Bounds().Dx()) / float64(src.Bounds().Dx())
	sy := float64(dst.Bounds().Dy()) / float64(src.Bounds().Dy())
	for _, t := range tentTaps {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(t[0], t[1])
		op.GeoM.Scale(sx, sy)
		op.Filter = ebiten.FilterLinear
		op.Blend = ebiten.BlendLighter
		op.ColorScale.ScaleAlpha(0.25)
		dst.DrawImage(src, op)
	}
}
