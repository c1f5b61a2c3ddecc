package levels

import "github.com/vovakirdan/quantum-jumper/internal/sim"

// GenParams shapes procedurally generated levels.
type GenParams struct {
	Seed int64

	BasePlatforms    int     // platforms before the per-level bonus
	PlatformSpacing  float64 // horizontal step between platforms
	BaseShards       int     // shards before the per-level bonus
	ShardSpacing     float64 // horizontal step between shards
	HazardsFromLevel int     // hazards appear on levels above this
	HazardSpacing    float64 // horizontal step between hazards
}

// DefaultGenParams returns the stock generator settings.
func DefaultGenParams() GenParams {
	return GenParams{
		BasePlatforms:    5,
		PlatformSpacing:  120,
		BaseShards:       3,
		ShardSpacing:     200,
		HazardsFromLevel: 3,
		HazardSpacing:    200,
	}
}

// RNG is a deterministic pseudo-random number generator (xorshift64).
type RNG struct {
	state uint64
}

// NewRNG creates a generator for one level. The same seed and level
// always produce the same sequence, so a respawn rebuilds the same layout.
func NewRNG(seed int64, level int) *RNG {
	s := uint64(seed)*0x9E3779B97F4A7C15 + uint64(level)*0xBF58476D1CE4E5B9 //#nosec G115 -- seed mixing
	if s == 0 {
		s = 88172645463325252
	}
	r := &RNG{state: s}
	// Discard the first outputs; nearby seeds start out correlated.
	for range 4 {
		r.Next()
	}
	return r
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is positive
}

// Generate builds a level for a number without authored data.
// Higher numbers get more platforms and shards, more dimensions in play,
// and hazards once past HazardsFromLevel.
func Generate(number int, p GenParams) sim.Level {
	rng := NewRNG(p.Seed, number)
	lvl := sim.Level{
		Number:    number,
		Name:      "Quantum Rift",
		Generated: true,
	}

	lvl.Platforms = append(lvl.Platforms, sim.Platform{
		Rect:      sim.R(0, 550, 200, 50),
		Dimension: sim.IntPtr(sim.DimensionNormal),
	})

	dims := min(sim.DimensionCount, 1+number/3)
	for i := range p.BasePlatforms + number/2 {
		dim := rng.Intn(dims)
		x := 200 + float64(i)*p.PlatformSpacing + rng.Float()*60
		y := 100 + rng.Float()*400
		w := 80 + rng.Float()*40
		lvl.Platforms = append(lvl.Platforms, sim.Platform{
			Rect:      sim.R(x, y, w, 20),
			Dimension: sim.IntPtr(dim),
		})
	}

	for i := range max(1, p.BaseShards+number/2) {
		x := 150 + float64(i)*p.ShardSpacing + rng.Float()*100
		y := 50 + rng.Float()*450
		lvl.Collectibles = append(lvl.Collectibles, sim.Collectible{Rect: sim.R(x, y, 15, 15)})
	}

	if number > p.HazardsFromLevel {
		for i := range number / 3 {
			x := 300 + float64(i)*p.HazardSpacing + rng.Float()*100
			y := 400 + rng.Float()*100
			w := 60 + rng.Float()*40
			lvl.Hazards = append(lvl.Hazards, sim.Hazard{
				Rect:      sim.R(x, y, w, 20),
				Dimension: rng.Intn(sim.DimensionCount),
				Type:      "laser",
			})
		}
	}

	return lvl
}
