package region

// Width and Height are the fixed dimensions of every region grid, per
// spec.md §3 (X=80 columns, Y=21 rows).
const (
	Width  = 80
	Height = 21
)

// NoGate is the sentinel gate offset meaning "this side has no gate",
// either because it faces the world boundary or because the generator
// chose not to open one.
const NoGate = -1

// Region owns one generated 80x21 tile map: its terrain grid, its height
// field, and the four gate offsets that connect it to its neighbors.
type Region struct {
	terrain [Height][Width]Kind
	height  [Height][Width]uint8

	// North/South gate offsets are a column index in [1, Width-2];
	// East/West gate offsets are a row index in [1, Height-2]. NoGate
	// means the side has no gate.
	North, South, East, West int
}

// New returns a Region with every cell set to the Uninitialized sentinel
// and no gates. Callers run the generation pipeline (height, terrain,
// scatter, roads, buildings) to produce a spec-conformant region before
// using it for play.
func New() *Region {
	r := &Region{North: NoGate, South: NoGate, East: NoGate, West: NoGate}
	return r
}

// InBounds reports whether (x, y) is inside the region grid.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Terrain returns the terrain kind at (x, y). Callers must only call this
// with in-bounds coordinates; it is a programmer error otherwise and will
// panic on the underlying array access, matching the teacher's unchecked
// grid-index convention in pkg/world/state.go's Tiles slice.
func (r *Region) Terrain(x, y int) Kind {
	return r.terrain[y][x]
}

// SetTerrain sets the terrain kind at (x, y).
func (r *Region) SetTerrain(x, y int, k Kind) {
	r.terrain[y][x] = k
}

// Height returns the height value at (x, y).
func (r *Region) Height(x, y int) uint8 {
	return r.height[y][x]
}

// SetHeight sets the height value at (x, y).
func (r *Region) SetHeight(x, y int, h uint8) {
	r.height[y][x] = h
}

// IsBorder reports whether (x, y) lies on the outermost ring of the grid.
func IsBorder(x, y int) bool {
	return x == 0 || x == Width-1 || y == 0 || y == Height-1
}

// GateCells returns the two cells that form the region's gate on side,
// matching the two-cell span rule in spec.md §3 ((n,0) and (n,1) for
// north, etc). ok is false if that side has no gate.
func (r *Region) GateCells(side Side) (a, b [2]int, ok bool) {
	switch side {
	case North:
		if r.North == NoGate {
			return a, b, false
		}
		return [2]int{r.North, 0}, [2]int{r.North, 1}, true
	case South:
		if r.South == NoGate {
			return a, b, false
		}
		return [2]int{r.South, Height - 1}, [2]int{r.South, Height - 2}, true
	case West:
		if r.West == NoGate {
			return a, b, false
		}
		return [2]int{0, r.West}, [2]int{1, r.West}, true
	case East:
		if r.East == NoGate {
			return a, b, false
		}
		return [2]int{Width - 1, r.East}, [2]int{Width - 2, r.East}, true
	default:
		return a, b, false
	}
}

// Side identifies one of the four region borders.
type Side uint8

const (
	North Side = iota
	South
	East
	West
)

// Opposite returns the side facing s across a shared region boundary.
func (s Side) Opposite() Side {
	switch s {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// GateOffset returns the gate offset this region carries for side s.
func (r *Region) GateOffset(s Side) int {
	switch s {
	case North:
		return r.North
	case South:
		return r.South
	case East:
		return r.East
	default:
		return r.West
	}
}

// SetGateOffset sets the gate offset this region carries for side s.
func (r *Region) SetGateOffset(s Side, offset int) {
	switch s {
	case North:
		r.North = offset
	case South:
		r.South = offset
	case East:
		r.East = offset
	case West:
		r.West = offset
	}
}
