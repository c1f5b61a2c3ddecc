package sim

import "math"

// Motion reports what happened while advancing the player.
type Motion struct {
	Jumped          bool
	BoundaryContact bool // pinned against the anti-gravity ceiling this tick
}

// Advance moves the player one tick under the rules of dim.
// simTimeMS drives the force-field oscillation.
func Advance(p *Player, dim Dimension, in Input, tun Tuning, simTimeMS float64) Motion {
	var m Motion

	switch {
	case in.Left:
		p.Vel.X = -tun.MoveSpeed
	case in.Right:
		p.Vel.X = tun.MoveSpeed
	default:
		p.Vel.X *= tun.Friction
	}

	// OnGround still holds last tick's contact here.
	if in.Jump {
		m.Jumped = applyJump(p, dim, tun)
	}
	p.OnGround = false

	p.Vel.Y += gravityStep(p.Vel.Y, dim, tun)

	if dim.ForceField {
		p.Vel.X += math.Sin(simTimeMS*tun.FieldFreqX) * tun.FieldAmplitude
		p.Vel.Y += math.Cos(simTimeMS*tun.FieldFreqY) * tun.FieldAmplitude
	}

	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y
	p.Pos.X = clampF(p.Pos.X, 0, tun.World.W-p.W)

	if dim.Inverted() {
		if p.Vel.Y < -tun.MaxRiseSpeed {
			p.Vel.Y = -tun.MaxRiseSpeed
		}
		if p.Pos.Y < tun.UpperBoundary && p.Vel.Y < 0 {
			p.Pos.Y = tun.UpperBoundary
			p.Vel.Y = 0
			p.OnGround = true
			m.BoundaryContact = true
		}
	}

	p.pushTrail(tun.TrailLength)
	return m
}

// applyJump sets the jump impulse if the player is grounded.
// The impulse points away from the gravity direction.
func applyJump(p *Player, dim Dimension, tun Tuning) bool {
	if !p.OnGround {
		return false
	}
	if dim.Gravity > 0 {
		p.Vel.Y = -tun.JumpImpulse
	} else {
		p.Vel.Y = tun.JumpImpulse
	}
	return true
}

// gravityStep returns this tick's vertical velocity change.
func gravityStep(vy float64, dim Dimension, tun Tuning) float64 {
	mult := 1.0
	if dim.ID == DimensionTimeWarp {
		switch {
		case vy > 0:
			mult = tun.WarpFallMultiplier
		case vy < 0:
			mult = tun.WarpRiseMultiplier
		}
	}
	return dim.Gravity * mult
}
