// Package worldmap owns the sparse grid of regions that make up the
// overworld, the player's current-region cursor, and the neighbor-gate
// reconciliation that keeps adjacent regions' borders connected.
package worldmap

import (
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/patchwork-games/overworld/pkg/logging"
	"github.com/patchwork-games/overworld/pkg/region"
)

// Size is the width and height of the world's region grid (spec.md §3).
const Size = 401

// Origin is the region index the player starts at, and the reference point
// every displayed coordinate is relative to.
const Origin = Size / 2

// Index identifies one region slot in the world grid.
type Index struct {
	X, Y int
}

// Delta returns idx's offset from the world origin (Δx, Δy), matching the
// status-line coordinates in spec.md §6.
func (idx Index) Delta() (dx, dy int) {
	return idx.X - Origin, idx.Y - Origin
}

// World is the sparse WORLD_SIZE x WORLD_SIZE grid of regions. Regions are
// created lazily on first visit and are never regenerated afterward.
// A map keyed by Index realizes the "sparse 2D array" spec.md describes;
// only visited slots ever hold an entry.
type World struct {
	regions map[Index]*region.Region
	cursor  Index
	rng     *rand.Rand
	seed    int64
	logger  *logrus.Logger
	log     *logrus.Entry
}

// New creates a world whose single shared random stream is seeded with
// seed. Every region generated from this world draws from that one
// stream, in visit order — the same sequencing the original simulation's
// single global PRNG produced, which is what makes a given seed's overworld
// reproducible turn-for-turn.
func New(seed int64, logger *logrus.Logger) *World {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &World{
		regions: make(map[Index]*region.Region),
		cursor:  Index{X: Origin, Y: Origin},
		rng:     rand.New(rand.NewSource(seed)),
		seed:    seed,
		logger:  logger,
		log:     logging.SystemLogger(logger, "worldmap"),
	}
}

// RNG returns the world's shared random source, for generation pipelines
// that need to draw deterministically-ordered random values.
func (w *World) RNG() *rand.Rand {
	return w.rng
}

// Cursor returns the current region index.
func (w *World) Cursor() Index {
	return w.cursor
}

// Region returns the region at idx, or nil if it has not been generated
// yet.
func (w *World) Region(idx Index) *region.Region {
	return w.regions[idx]
}

// CurrentRegion returns the region at the current cursor, which is always
// populated once EnsureRegion has been called for the cursor's slot.
func (w *World) CurrentRegion() *region.Region {
	return w.regions[w.cursor]
}

// inBounds reports whether idx is a legal world grid slot.
func inBounds(idx Index) bool {
	return idx.X >= 0 && idx.X < Size && idx.Y >= 0 && idx.Y < Size
}

// GateOffsets computes the four gate offsets a new region at idx must use,
// reconciling against any already-generated neighbor and leaving NoGate on
// sides that face the world boundary, per spec.md §3.
func (w *World) GateOffsets(idx Index) (north, south, east, west int) {
	if idx.Y == 0 {
		north = region.NoGate
	} else if n := w.regions[Index{idx.X, idx.Y - 1}]; n != nil {
		north = n.South
	} else {
		north = 1 + w.rng.Intn(region.Width-2)
	}

	if idx.Y == Size-1 {
		south = region.NoGate
	} else if s := w.regions[Index{idx.X, idx.Y + 1}]; s != nil {
		south = s.North
	} else {
		south = 1 + w.rng.Intn(region.Width-2)
	}

	if idx.X == 0 {
		west = region.NoGate
	} else if ww := w.regions[Index{idx.X - 1, idx.Y}]; ww != nil {
		west = ww.East
	} else {
		west = 1 + w.rng.Intn(region.Height-2)
	}

	if idx.X == Size-1 {
		east = region.NoGate
	} else if e := w.regions[Index{idx.X + 1, idx.Y}]; e != nil {
		east = e.West
	} else {
		east = 1 + w.rng.Intn(region.Height-2)
	}

	return north, south, east, west
}

// Generator builds and populates a brand-new region using the gate offsets
// already chosen by GateOffsets. It is supplied by the caller (see
// pkg/procgen) so that worldmap does not itself depend on the generation
// pipeline — worldmap only owns placement, lookup, and gate bookkeeping.
type Generator func(rng *rand.Rand, north, south, east, west int) *region.Region

// EnsureRegion returns the region at idx, generating it via gen if this is
// the first visit. The second return value reports whether generation ran.
func (w *World) EnsureRegion(idx Index, gen Generator) (*region.Region, bool) {
	if existing := w.regions[idx]; existing != nil {
		return existing, false
	}
	n, s, e, west := w.GateOffsets(idx)
	r := gen(w.rng, n, s, e, west)
	w.regions[idx] = r
	logging.GeneratorLogger(w.logger, "region", w.seed, idx.X-Origin, idx.Y-Origin).
		WithFields(logrus.Fields{"north": n, "south": s, "east": e, "west": west}).
		Debug("region generated")
	return r, true
}

// Move steps the cursor one region in direction dir if that does not cross
// the world boundary, generating the destination region on first visit.
// It reports whether the cursor actually moved.
func (w *World) Move(dir Side, gen Generator) bool {
	next := w.cursor
	switch dir {
	case North:
		if w.cursor.Y == 0 {
			return false
		}
		next.Y--
	case South:
		if w.cursor.Y == Size-1 {
			return false
		}
		next.Y++
	case East:
		if w.cursor.X == Size-1 {
			return false
		}
		next.X++
	case West:
		if w.cursor.X == 0 {
			return false
		}
		next.X--
	}
	w.cursor = next
	w.EnsureRegion(next, gen)
	return true
}

// Teleport moves the cursor directly to idx (world-relative coordinates
// already translated to absolute grid indices by the caller), generating
// the destination region on first visit. It reports whether idx was in
// bounds.
func (w *World) Teleport(idx Index, gen Generator) bool {
	if !inBounds(idx) {
		return false
	}
	w.cursor = idx
	w.EnsureRegion(idx, gen)
	return true
}

// Side identifies a cursor movement direction; it mirrors region.Side so
// callers can use one vocabulary for both gate sides and cursor steps.
type Side = region.Side

const (
	North = region.North
	South = region.South
	East  = region.East
	West  = region.West
)
