package runner

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	bannerDrop = 0.6 // seconds for the banner to drop into place
	bannerHold = 1.8 // seconds the banner stays visible in total
)

// Banner is the "you fell" message shown after a restart. It drops from
// the top of the screen with an eased tween and disappears after a hold.
type Banner struct {
	text    string
	tween   *gween.Tween
	pos     float32
	elapsed float32
	visible bool
}

// Show starts the banner animation with the given text.
func (b *Banner) Show(text string) {
	b.text = text
	b.tween = gween.New(0, 1, bannerDrop, ease.OutBounce)
	b.pos = 0
	b.elapsed = 0
	b.visible = true
}

// Update advances the animation by dt seconds.
func (b *Banner) Update(dt float64) {
	if !b.visible {
		return
	}
	b.pos, _ = b.tween.Update(float32(dt))
	b.elapsed += float32(dt)
	if b.elapsed >= bannerHold {
		b.visible = false
	}
}

// Hide removes the banner immediately.
func (b *Banner) Hide() {
	b.visible = false
}

// Visible reports whether the banner should be drawn.
func (b *Banner) Visible() bool {
	return b.visible
}

// Progress is the eased drop position in [0, 1].
func (b *Banner) Progress() float64 {
	return float64(b.pos)
}

// Text returns the banner message.
func (b *Banner) Text() string {
	return b.text
}
