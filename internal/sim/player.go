package sim

// Player is the controlled entity.
type Player struct {
	Pos      Vec
	Vel      Vec
	W, H     float64
	OnGround bool
	Trail    []Vec // recent centre points, oldest first
}

// NewPlayer creates a player at the spawn point of the given tuning.
func NewPlayer(tun Tuning) Player {
	p := Player{W: tun.PlayerW, H: tun.PlayerH}
	p.Reset(tun)
	return p
}

// Rect returns the player's bounding box.
func (p *Player) Rect() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.W, H: p.H}
}

// Center returns the centre of the bounding box.
func (p *Player) Center() Vec {
	return Vec{X: p.Pos.X + p.W/2, Y: p.Pos.Y + p.H/2}
}

// Reset moves the player back to spawn and clears motion and trail.
func (p *Player) Reset(tun Tuning) {
	p.Pos = tun.Spawn
	p.Vel = Vec{}
	p.OnGround = false
	p.Trail = p.Trail[:0]
}

func (p *Player) pushTrail(limit int) {
	p.Trail = append(p.Trail, p.Center())
	if over := len(p.Trail) - limit; over > 0 {
		p.Trail = append(p.Trail[:0], p.Trail[over:]...)
	}
}

func (p Player) clone() Player {
	c := p
	c.Trail = append([]Vec(nil), p.Trail...)
	return c
}
