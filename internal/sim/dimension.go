package sim

// Dimension IDs. The ID doubles as the index into the dimension table.
const (
	DimensionNormal      = 0
	DimensionAntiGravity = 1
	DimensionTimeWarp    = 2
	DimensionForceField  = 3

	DimensionCount = 4
)

// Dimension is one of the four fixed rule-sets.
type Dimension struct {
	ID         int
	Name       string
	Color      string // hex, presentation only
	Gravity    float64
	TimeScale  float64
	ForceField bool
}

var dimensions = [DimensionCount]Dimension{
	{ID: DimensionNormal, Name: "Normal", Color: "#3b82f6", Gravity: 0.5, TimeScale: 1},
	{ID: DimensionAntiGravity, Name: "Anti-Gravity", Color: "#8b5cf6", Gravity: -0.5, TimeScale: 1},
	{ID: DimensionTimeWarp, Name: "Time Warp", Color: "#06b6d4", Gravity: 0.6, TimeScale: 2},
	{ID: DimensionForceField, Name: "Force Field", Color: "#f97316", Gravity: 0.5, TimeScale: 1, ForceField: true},
}

// DimensionByID returns the dimension with the given id.
// Out-of-range ids fall back to the normal dimension.
func DimensionByID(id int) Dimension {
	if id < 0 || id >= DimensionCount {
		return dimensions[DimensionNormal]
	}
	return dimensions[id]
}

// Dimensions returns a copy of the dimension table.
func Dimensions() []Dimension {
	out := make([]Dimension, DimensionCount)
	copy(out, dimensions[:])
	return out
}

// Inverted reports whether gravity pulls the player upward.
func (d Dimension) Inverted() bool {
	return d.Gravity < 0
}
