package runner

// JumpState is the player's contact state as last reported by physics.
type JumpState int

const (
	Airborne JumpState = iota
	Grounded
)

// String returns a human-readable name for the state.
func (s JumpState) String() string {
	switch s {
	case Grounded:
		return "Grounded"
	case Airborne:
		return "Airborne"
	default:
		return "Unknown"
	}
}

// JumpController decides whether a jump request is honoured.
//
// Charge 0 is the ground jump; charges 1..maxJumps-1 are air jumps. An air
// jump needs at least one jump already spent in the current airborne phase,
// so walking off an edge never grants a free jump.
type JumpController struct {
	state     JumpState
	jumpsUsed int
	maxJumps  int
	jumpForce float64
}

// NewJumpController creates a controller in the Airborne state: the player
// spawns in the air and only becomes Grounded once physics reports contact.
func NewJumpController(maxJumps int, jumpForce float64) *JumpController {
	return &JumpController{
		state:     Airborne,
		maxJumps:  maxJumps,
		jumpForce: jumpForce,
	}
}

// Observe feeds the ground-contact flag for this tick.
func (j *JumpController) Observe(grounded bool) {
	if grounded {
		j.state = Grounded
		j.jumpsUsed = 0
		return
	}
	j.state = Airborne
}

// RequestJump applies the jump impulse to body if a charge is available and
// reports whether it did.
func (j *JumpController) RequestJump(body Body) bool {
	grounded := j.state == Grounded
	if !grounded && !(j.jumpsUsed > 0 && j.jumpsUsed < j.maxJumps) {
		return false
	}

	if grounded {
		j.jumpsUsed = 0
	}
	body.SetVelocityY(-j.jumpForce)
	j.jumpsUsed++
	j.state = Airborne
	return true
}

// Reset returns the controller to its spawn state.
func (j *JumpController) Reset() {
	j.state = Airborne
	j.jumpsUsed = 0
}

// State returns the current contact state.
func (j *JumpController) State() JumpState {
	return j.state
}

// JumpsUsed returns the charges spent since the last landing.
func (j *JumpController) JumpsUsed() int {
	return j.jumpsUsed
}

// JumpsLeft returns how many more requests would be honoured right now.
func (j *JumpController) JumpsLeft() int {
	switch {
	case j.state == Grounded:
		return j.maxJumps
	case j.jumpsUsed == 0:
		return 0
	default:
		return j.maxJumps - j.jumpsUsed
	}
}
