package sim

// Contacts is the collision report for one tick.
type Contacts struct {
	Landed      bool
	Collected   []int // indices of collectibles picked up this call
	HazardHits  int   // overlapping hazards, one hit each
	FellThrough bool
}

// Resolve settles the player against the level's platforms and reports
// collectible, hazard and fall-through contacts. Collected flags on lvl
// are flipped here; applying heal and damage is the caller's job.
func Resolve(p *Player, lvl *Level, dim Dimension, world Bounds) Contacts {
	var c Contacts

	for i := range lvl.Platforms {
		pl := &lvl.Platforms[i]
		if !pl.ActiveIn(dim.ID) {
			continue
		}
		if landOn(p, pl.Rect, dim) {
			c.Landed = true
		}
	}

	pr := p.Rect()
	for i := range lvl.Collectibles {
		col := &lvl.Collectibles[i]
		if col.Collected || !pr.Intersects(col.Rect) {
			continue
		}
		col.Collected = true
		c.Collected = append(c.Collected, i)
	}

	for i := range lvl.Hazards {
		hz := &lvl.Hazards[i]
		if hz.Dimension == dim.ID && pr.Intersects(hz.Rect) {
			c.HazardHits++
		}
	}

	if !p.OnGround && p.Pos.Y > world.H && !canLand(p, lvl, dim) {
		c.FellThrough = true
	}
	return c
}

// landOn snaps the player onto plat when it is moving into it along the
// gravity direction. The swept test uses next tick's leading edge; the
// overlap test catches whatever the swept test misses.
func landOn(p *Player, plat Rect, dim Dimension) bool {
	pr := p.Rect()
	nextY := p.Pos.Y + p.Vel.Y

	switch {
	case dim.Gravity > 0:
		swept := p.Vel.Y > 0 &&
			nextY+p.H >= plat.Y &&
			pr.Bottom() <= plat.Y &&
			pr.OverlapsX(plat)
		overlap := pr.Intersects(plat) && p.Vel.Y > 0 && p.Pos.Y < plat.Y
		if !swept && !overlap {
			return false
		}
		p.Pos.Y = plat.Y - p.H
	case dim.Gravity < 0:
		swept := p.Vel.Y < 0 &&
			nextY <= plat.Bottom() &&
			pr.Y >= plat.Bottom() &&
			pr.OverlapsX(plat)
		overlap := pr.Intersects(plat) && p.Vel.Y < 0 && p.Pos.Y > plat.Y
		if !swept && !overlap {
			return false
		}
		p.Pos.Y = plat.Bottom()
	default:
		return false
	}

	p.Vel.Y = 0
	p.OnGround = true
	return true
}

// canLand reports whether any participating platform could still catch
// a player that has left the world vertically.
func canLand(p *Player, lvl *Level, dim Dimension) bool {
	pr := p.Rect()
	lead := pr.Bottom()
	if dim.Gravity < 0 {
		lead = pr.Y
	}
	for i := range lvl.Platforms {
		pl := &lvl.Platforms[i]
		if !pl.ActiveIn(dim.ID) || !pr.OverlapsX(pl.Rect) {
			continue
		}
		if dim.Gravity > 0 && pl.Rect.Y >= lead {
			return true
		}
		if dim.Gravity < 0 && pl.Rect.Bottom() <= lead {
			return true
		}
	}
	return false
}
