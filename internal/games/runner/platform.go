package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Platform is a scrolling ground segment. X and Y are the centre, in
// viewport pixels.
type Platform struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	active bool
}

// Active reports whether the platform is part of the visible stream.
func (p *Platform) Active() bool {
	return p.active
}

// Bounds returns the platform's box in world space.
func (p *Platform) Bounds() core.RectF {
	return core.RectF{CX: p.X, CY: p.Y, W: p.Width, H: p.Height}
}

// PlatformStream owns every platform of a run. A platform is either in the
// active slice (spawn order, left to right on screen) or in the pool, never
// both. Platforms are only allocated when the pool is empty, so the total
// stays at the run's peak on-screen count.
type PlatformStream struct {
	active    []*Platform
	pool      []*Platform
	nextGap   float64
	allocated int

	viewportW  float64
	platformY  float64
	height     float64
	spawnRange config.Range
	sizeRange  config.Range
	rng        *rand.Rand
}

// NewPlatformStream creates an empty stream. The config must already be valid.
func NewPlatformStream(cfg config.RunnerConfig, rng *rand.Rand) *PlatformStream {
	return &PlatformStream{
		active:     make([]*Platform, 0, 8),
		pool:       make([]*Platform, 0, 8),
		viewportW:  cfg.Viewport.Width,
		platformY:  cfg.PlatformY(),
		height:     cfg.Platforms.Height,
		spawnRange: cfg.Platforms.SpawnRange,
		sizeRange:  cfg.Platforms.SizeRange,
		rng:        rng,
	}
}

// Spawn places a platform of the given width centred at posX at the tail of
// the stream, reusing a pooled platform when one is available. Every spawn
// re-rolls the gap target.
func (s *PlatformStream) Spawn(width, posX float64) *Platform {
	var p *Platform
	if n := len(s.pool); n > 0 {
		p = s.pool[n-1]
		s.pool[n-1] = nil
		s.pool = s.pool[:n-1]
	} else {
		p = &Platform{}
		s.allocated++
	}

	p.X = posX
	p.Y = s.platformY
	p.Width = width
	p.Height = s.height
	p.active = true
	s.active = append(s.active, p)

	s.nextGap = s.roll(s.spawnRange)
	return p
}

// Advance scrolls every active platform left by speed*dt and returns the
// smallest distance between a platform's trailing edge and the right edge of
// the viewport (the viewport width when the stream is empty). Platforms that
// have fully left the screen are moved to the pool.
func (s *PlatformStream) Advance(dt, speed float64) float64 {
	minGap := s.viewportW
	step := speed * dt

	kept := s.active[:0]
	for _, p := range s.active {
		p.X -= step
		if gap := s.viewportW - p.X - p.Width/2; gap < minGap {
			minGap = gap
		}
		if p.X < -p.Width/2 {
			p.active = false
			s.pool = append(s.pool, p)
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = kept

	return minGap
}

// Reset moves every active platform into the pool.
func (s *PlatformStream) Reset() {
	for i, p := range s.active {
		p.active = false
		s.pool = append(s.pool, p)
		s.active[i] = nil
	}
	s.active = s.active[:0]
}

// RollWidth draws a platform width from the configured size range.
func (s *PlatformStream) RollWidth() float64 {
	return s.roll(s.sizeRange)
}

// NextGapTarget is the clearance that must open before the next spawn.
func (s *PlatformStream) NextGapTarget() float64 {
	return s.nextGap
}

// Active returns the visible platforms in spawn order. The slice is owned by
// the stream and only valid until the next Spawn, Advance or Reset.
func (s *PlatformStream) Active() []*Platform {
	return s.active
}

// PoolSize returns the number of platforms waiting for reuse.
func (s *PlatformStream) PoolSize() int {
	return len(s.pool)
}

// Allocated returns how many platforms the stream has ever created.
func (s *PlatformStream) Allocated() int {
	return s.allocated
}

func (s *PlatformStream) roll(r config.Range) float64 {
	return r.Min() + s.rng.Float64()*(r.Max()-r.Min())
}
