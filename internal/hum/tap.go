package hum

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last samples into a ring buffer
// so the renderer can follow the loudness of what is playing.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	t.record(samples[:n])
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// record copies s into the ring. Only the newest len(buffer) samples survive.
func (t *Tap) record(s [][2]float64) {
	size := len(t.buffer)
	if len(s) == 0 || size == 0 {
		return
	}
	if len(s) > size {
		s = s[len(s)-size:]
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for len(s) > 0 {
		c := copy(t.buffer[t.nextIndex:], s)
		s = s[c:]
		t.nextIndex = (t.nextIndex + c) % size
		t.filled = min(t.filled+c, size)
	}
}

// Level returns the RMS of the last n recorded samples, mixed to mono.
func (t *Tap) Level(n int) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, t.filled)
	if n == 0 {
		return 0
	}
	var sum float64
	idx := t.nextIndex
	for i := 0; i < n; i++ {
		// newest first
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		mono := (t.buffer[idx][0] + t.buffer[idx][1]) / 2
		sum += mono * mono
	}
	return math.Sqrt(sum / float64(n))
}
