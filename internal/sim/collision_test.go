package sim

import "testing"

func groundLevel() Level {
	return Level{
		Number: 1,
		Platforms: []Platform{
			{Rect: R(0, 550, 800, 50), Dimension: IntPtr(DimensionNormal)},
		},
	}
}

func TestFreeFallLandsOnGround(t *testing.T) {
	tun := DefaultTuning()
	dim := DimensionByID(DimensionNormal)
	lvl := groundLevel()
	p := NewPlayer(tun)

	landedAt := -1
	for i := range 200 {
		Advance(&p, dim, Input{}, tun, 0)
		c := Resolve(&p, &lvl, dim, tun.World)
		if c.FellThrough {
			t.Fatalf("tick %d: unexpected fall-through", i)
		}
		if c.Landed && landedAt < 0 {
			landedAt = i
		}
	}

	if landedAt < 0 {
		t.Fatal("player never landed")
	}
	if p.Pos.Y != 550-p.H {
		t.Errorf("y = %v, want %v", p.Pos.Y, 550-p.H)
	}
	if p.Vel.Y != 0 {
		t.Errorf("vy = %v, want 0", p.Vel.Y)
	}
	if !p.OnGround {
		t.Error("expected OnGround")
	}
}

func TestSweptLandingAtHighSpeed(t *testing.T) {
	tun := DefaultTuning()
	dim := DimensionByID(DimensionNormal)
	lvl := Level{Platforms: []Platform{{Rect: R(0, 300, 800, 10)}}}

	// Bottom sits just above the thin platform and would pass it next tick.
	p := NewPlayer(tun)
	p.Pos.Y = 275
	p.Vel.Y = 40

	c := Resolve(&p, &lvl, dim, tun.World)
	if !c.Landed || p.Pos.Y != 280 || p.Vel.Y != 0 {
		t.Errorf("landed=%v y=%v vy=%v, want landing at 280", c.Landed, p.Pos.Y, p.Vel.Y)
	}
}

func TestInvertedLanding(t *testing.T) {
	tun := DefaultTuning()
	dim := DimensionByID(DimensionAntiGravity)
	lvl := Level{Platforms: []Platform{{Rect: R(0, 150, 800, 50)}}}

	p := NewPlayer(tun)
	p.Pos.Y = 210
	p.Vel.Y = -12

	c := Resolve(&p, &lvl, dim, tun.World)
	if !c.Landed {
		t.Fatal("expected landing on platform underside")
	}
	if p.Pos.Y != 200 || p.Vel.Y != 0 || !p.OnGround {
		t.Errorf("y=%v vy=%v ground=%v, want 200 0 true", p.Pos.Y, p.Vel.Y, p.OnGround)
	}
}

func TestPlatformDimensionFilter(t *testing.T) {
	tun := DefaultTuning()
	lvl := Level{Platforms: []Platform{{Rect: R(0, 300, 800, 20), Dimension: IntPtr(DimensionTimeWarp)}}}

	p := NewPlayer(tun)
	p.Pos.Y = 285
	p.Vel.Y = 5
	if c := Resolve(&p, &lvl, DimensionByID(DimensionNormal), tun.World); c.Landed {
		t.Error("platform from another dimension must not collide")
	}
	if c := Resolve(&p, &lvl, DimensionByID(DimensionTimeWarp), tun.World); !c.Landed {
		t.Error("platform in the active dimension must collide")
	}
}

func TestCollectIsIdempotent(t *testing.T) {
	tun := DefaultTuning()
	dim := DimensionByID(DimensionNormal)
	lvl := Level{Collectibles: []Collectible{{Rect: R(105, 305, 15, 15)}}}
	p := NewPlayer(tun)

	first := Resolve(&p, &lvl, dim, tun.World)
	second := Resolve(&p, &lvl, dim, tun.World)

	if len(first.Collected) != 1 || first.Collected[0] != 0 {
		t.Errorf("first pass collected %v, want [0]", first.Collected)
	}
	if len(second.Collected) != 0 {
		t.Errorf("second pass collected %v, want none", second.Collected)
	}
	if !lvl.Collectibles[0].Collected {
		t.Error("collectible flag not set")
	}
}

func TestHazardHitsPerTick(t *testing.T) {
	tun := DefaultTuning()
	lvl := Level{Hazards: []Hazard{
		{Rect: R(90, 290, 40, 40), Dimension: DimensionNormal, Type: "laser"},
		{Rect: R(100, 310, 40, 40), Dimension: DimensionNormal, Type: "laser"},
		{Rect: R(90, 290, 40, 40), Dimension: DimensionForceField, Type: "laser"},
	}}
	p := NewPlayer(tun)

	for i := range 3 {
		c := Resolve(&p, &lvl, DimensionByID(DimensionNormal), tun.World)
		if c.HazardHits != 2 {
			t.Errorf("tick %d: hits = %d, want 2", i, c.HazardHits)
		}
	}
	if c := Resolve(&p, &lvl, DimensionByID(DimensionAntiGravity), tun.World); c.HazardHits != 0 {
		t.Errorf("anti-gravity hits = %d, want 0", c.HazardHits)
	}
}

func TestFallThrough(t *testing.T) {
	tun := DefaultTuning()

	tests := []struct {
		name      string
		dim       int
		platforms []Platform
		y         float64
		grounded  bool
		want      bool
	}{
		{"nothing below", DimensionNormal, nil, 610, false, true},
		{"still inside world", DimensionNormal, nil, 590, false, false},
		{"grounded", DimensionNormal, nil, 610, true, false},
		{"platform further down", DimensionNormal, []Platform{{Rect: R(0, 700, 800, 20)}}, 610, false, false},
		{"platform not overlapping x", DimensionNormal, []Platform{{Rect: R(400, 700, 100, 20)}}, 610, false, true},
		{"platform in other dimension", DimensionNormal, []Platform{{Rect: R(0, 700, 800, 20), Dimension: IntPtr(2)}}, 610, false, true},
		{"inverted catches on ground underside", DimensionAntiGravity, []Platform{{Rect: R(0, 550, 800, 50)}}, 610, false, false},
		{"inverted with nothing", DimensionAntiGravity, nil, 610, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := Level{Platforms: tt.platforms}
			p := NewPlayer(tun)
			p.Pos.Y = tt.y
			p.OnGround = tt.grounded
			c := Resolve(&p, &lvl, DimensionByID(tt.dim), tun.World)
			if c.FellThrough != tt.want {
				t.Errorf("FellThrough = %v, want %v", c.FellThrough, tt.want)
			}
		})
	}
}
