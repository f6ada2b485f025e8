package runner

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Body is the player's handle in the physics collaborator. Positions are the
// body centre in viewport pixels.
type Body interface {
	SetGravity(g float64)
	SetVelocityX(v float64)
	SetVelocityY(v float64)
	Velocity() (vx, vy float64)
	Position() (x, y float64)
	SetPosition(x, y float64)
	TouchingGround() bool
}

// Physics integrates the player and resolves contact with active platforms.
// The run loop never computes collision geometry itself.
type Physics interface {
	Player() Body
	Step(dt float64, platforms []*Platform)
}

const (
	tagPlatform = "platform"
	tagPlayer   = "player"
	cellSize    = 32
	landSlop    = 0.5 // px of penetration still treated as landing from above
)

// ArcadePhysics is a Physics backed by a resolv space. Platforms are solid
// only from above: the player lands on top surfaces and falls past sides.
type ArcadePhysics struct {
	space  *resolv.Space
	player *arcadeBody
	solids map[*Platform]*solid

	// World coordinates are shifted by this much so that platforms sliding
	// off the left edge and a player above the viewport stay inside the space.
	originX, originY float64
}

type solid struct {
	obj     *resolv.Object
	inSpace bool
}

// NewArcadePhysics creates a space sized for the configured viewport.
func NewArcadePhysics(cfg config.RunnerConfig) *ArcadePhysics {
	originX := cfg.Platforms.SizeRange.Max()
	originY := cfg.Viewport.Height
	spaceW := int(math.Ceil(cfg.Viewport.Width + 3*originX))
	spaceH := int(math.Ceil(3 * cfg.Viewport.Height))

	ap := &ArcadePhysics{
		space:   resolv.NewSpace(spaceW, spaceH, cellSize, cellSize),
		solids:  make(map[*Platform]*solid),
		originX: originX,
		originY: originY,
	}

	w, h := cfg.Player.Width, cfg.Player.Height
	ap.player = &arcadeBody{
		physics: ap,
		obj:     resolv.NewObject(originX+cfg.Player.StartX-w/2, originY+cfg.PlayerStartY()-h/2, w, h, tagPlayer),
	}
	ap.space.Add(ap.player.obj)
	return ap
}

// Player returns the player body.
func (ap *ArcadePhysics) Player() Body {
	return ap.player
}

// Step syncs platform solids with the active stream, then integrates the
// player. Large moves are split so a single sub-step never skips a cell.
func (ap *ArcadePhysics) Step(dt float64, platforms []*Platform) {
	ap.syncSolids(platforms)

	b := ap.player
	b.vy += b.gravity * dt

	steps := int(math.Ceil(math.Abs(b.vy*dt) / (cellSize / 2)))
	if steps < 1 {
		steps = 1
	}
	sub := dt / float64(steps)

	b.grounded = false
	for i := 0; i < steps && !b.grounded; i++ {
		ap.moveX(b.vx * sub)
		ap.moveY(b.vy * sub)
	}
}

func (ap *ArcadePhysics) moveX(dx float64) {
	if dx == 0 {
		return
	}
	ap.player.obj.X += dx
	ap.player.obj.Update()
}

// moveY moves the player vertically, landing on the highest platform top
// crossed while falling.
func (ap *ArcadePhysics) moveY(dy float64) {
	b := ap.player
	if dy <= 0 {
		b.obj.Y += dy
		b.obj.Update()
		return
	}

	prevBottom := b.obj.Y + b.obj.H
	landY, landed := 0.0, false

	if check := b.obj.Check(0, dy, tagPlatform); check != nil {
		_, cy := b.Position()
		box := core.RectF{CX: b.obj.X - ap.originX + b.obj.W/2, CY: cy + dy, W: b.obj.W, H: b.obj.H}
		for _, o := range check.ObjectsByTags(tagPlatform) {
			p, ok := o.Data.(*Platform)
			if !ok || !p.active {
				continue
			}
			pb := p.Bounds()
			top := pb.Top() + ap.originY
			if !box.OverlapsX(pb) || prevBottom > top+landSlop || prevBottom+dy < top {
				continue
			}
			if !landed || top < landY {
				landY, landed = top, true
			}
		}
	}

	if landed {
		b.obj.Y = landY - b.obj.H
		b.vy = 0
		b.grounded = true
	} else {
		b.obj.Y += dy
	}
	b.obj.Update()
}

func (ap *ArcadePhysics) syncSolids(platforms []*Platform) {
	for _, p := range platforms {
		s, ok := ap.solids[p]
		if !ok {
			s = &solid{obj: resolv.NewObject(0, 0, p.Width, p.Height, tagPlatform)}
			s.obj.Data = p
			ap.solids[p] = s
		}
		s.obj.X = ap.originX + p.X - p.Width/2
		s.obj.Y = ap.originY + p.Y - p.Height/2
		s.obj.W = p.Width
		s.obj.H = p.Height
		if !s.inSpace {
			ap.space.Add(s.obj)
			s.inSpace = true
		}
		s.obj.Update()
	}

	for p, s := range ap.solids {
		if s.inSpace && !p.active {
			ap.space.Remove(s.obj)
			s.inSpace = false
		}
	}
}

// arcadeBody is the player's resolv object plus the velocity state resolv
// does not track.
type arcadeBody struct {
	physics  *ArcadePhysics
	obj      *resolv.Object
	vx, vy   float64
	gravity  float64
	grounded bool
}

func (b *arcadeBody) SetGravity(g float64)   { b.gravity = g }
func (b *arcadeBody) SetVelocityX(v float64) { b.vx = v }
func (b *arcadeBody) SetVelocityY(v float64) { b.vy = v }

func (b *arcadeBody) Velocity() (float64, float64) {
	return b.vx, b.vy
}

func (b *arcadeBody) Position() (float64, float64) {
	return b.obj.X - b.physics.originX + b.obj.W/2, b.obj.Y - b.physics.originY + b.obj.H/2
}

func (b *arcadeBody) SetPosition(x, y float64) {
	b.obj.X = b.physics.originX + x - b.obj.W/2
	b.obj.Y = b.physics.originY + y - b.obj.H/2
	b.obj.Update()
}

// TouchingGround reports whether the last step ended resting on a platform.
func (b *arcadeBody) TouchingGround() bool {
	return b.grounded
}
