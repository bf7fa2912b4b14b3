// Package npc implements the non-player character roster and the per-class
// movement policies described in spec.md §4.8: gradient-descending
// pursuers (hiker, rival), a fixed-axis pacer, a terrain-bound wanderer, a
// stationary sentry, and an explorer.
package npc

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/patchwork-games/overworld/pkg/logging"
	"github.com/patchwork-games/overworld/pkg/pathfield"
	"github.com/patchwork-games/overworld/pkg/region"
)

// Class identifies an NPC's behavioral policy by the single-character
// labels used throughout spec.md and at the rendering/command-parsing
// boundary.
type Class byte

const (
	Hiker    Class = 'h'
	Rival    Class = 'r'
	Pacer    Class = 'p'
	Wanderer Class = 'w'
	Sentry   Class = 's'
	Explorer Class = 'e'
)

// classLetters is the draw pool for roster slots 2-9, per spec.md §3.
var classLetters = [6]Class{Hiker, Rival, Pacer, Wanderer, Sentry, Explorer}

// RosterSize is the fixed total NPC count, per spec.md §3. The
// --TOTAL_NUM_TRAINERS CLI flag is validated and logged by cmd/overworld
// but never changes this; nothing else in the simulation reads it either.
const RosterSize = 10

// NPC is one non-player character: its position, behavioral class, stored
// movement direction, and the terrain kind recorded at spawn (used by the
// wanderer to detect when it has wandered off its home biome).
type NPC struct {
	Pos            [2]int
	Class          Class
	Direction      [2]int
	InitialTerrain region.Kind
}

// costClass maps an NPC's behavioral class to the terrain cost table used
// for its own passability checks. Hiker and Rival use their dedicated
// pursuer rows; every other class (pacer, wanderer, sentry, explorer)
// shares the Other row, which has the same passability as PC (see
// SPEC_FULL.md's Open Question decision on the Pacer cost class).
func costClass(c Class) region.Class {
	switch c {
	case Hiker:
		return region.Hiker
	case Rival:
		return region.Rival
	default:
		return region.Other
	}
}

// InitRoster builds the fixed 10-NPC roster: slot 0 is always a Hiker,
// slot 1 is always a Rival, and slots 2-9 draw uniformly from all six
// classes. Every NPC spawns on a uniformly random interior Path cell with
// zero direction, recording that cell's terrain as its InitialTerrain. A
// nil log discards the per-NPC spawn entries.
func InitRoster(rng *rand.Rand, r *region.Region, log *logrus.Entry) []*NPC {
	roster := make([]*NPC, RosterSize)
	roster[0] = &NPC{Class: Hiker}
	roster[1] = &NPC{Class: Rival}
	for i := 2; i < RosterSize; i++ {
		roster[i] = &NPC{Class: classLetters[rng.Intn(len(classLetters))]}
	}
	for i, n := range roster {
		x, y := randomPathCell(rng, r)
		n.Pos = [2]int{x, y}
		n.InitialTerrain = r.Terrain(x, y)
		if log != nil {
			logging.EntityLogger(log.Logger, i).
				WithFields(logrus.Fields{"class": string(n.Class), "x": x, "y": y}).
				Debug("npc spawned")
		}
	}
	return roster
}

func randomPathCell(rng *rand.Rand, r *region.Region) (x, y int) {
	for {
		x = rng.Intn(region.Width-2) + 1
		y = rng.Intn(region.Height-2) + 1
		if r.Terrain(x, y) == region.Path {
			return x, y
		}
	}
}

// isValidPosition reports whether (x, y) is in bounds and not Boulder,
// Mountain, or Water — the universal blockers for every non-swimmer class,
// per spec.md §4.8's commit rule. No roster class is ever a swimmer.
func isValidPosition(r *region.Region, x, y int) bool {
	if !region.InBounds(x, y) {
		return false
	}
	switch r.Terrain(x, y) {
	case region.Boulder, region.Mountain, region.Water:
		return false
	default:
		return true
	}
}

// occupied reports whether any NPC other than roster[exclude] currently
// sits at (x, y). Positions already advanced earlier this turn are
// visible here, matching the roster-index-ordered commit rule in
// spec.md §5.
func occupied(roster []*NPC, exclude int, x, y int) bool {
	for i, n := range roster {
		if i == exclude {
			continue
		}
		if n.Pos[0] == x && n.Pos[1] == y {
			return true
		}
	}
	return false
}

// Advance moves every NPC in roster once, in index order, per spec.md §4.8
// and §5. fields supplies the current turn's pursuer distance grids. A nil
// log discards the per-NPC movement entries; logged at Debug only, since
// this runs every turn and must stay out of the hot path above that level.
func Advance(roster []*NPC, r *region.Region, fields *pathfield.Field, rng *rand.Rand, log *logrus.Entry) {
	for i, n := range roster {
		dx, dy := intendedDelta(n, r, fields, rng)
		nx, ny := n.Pos[0]+dx, n.Pos[1]+dy
		if dx == 0 && dy == 0 {
			continue
		}
		if !isValidPosition(r, nx, ny) {
			continue
		}
		if occupied(roster, i, nx, ny) {
			continue
		}
		n.Pos = [2]int{nx, ny}
		if log != nil {
			logging.EntityLogger(log.Logger, i).WithFields(logrus.Fields{"x": nx, "y": ny}).Debug("npc moved")
		}
	}
}

// intendedDelta computes the step an NPC wants to take this turn, before
// the shared commit rule (bounds, passability, occupancy) is applied.
func intendedDelta(n *NPC, r *region.Region, fields *pathfield.Field, rng *rand.Rand) (dx, dy int) {
	switch n.Class {
	case Hiker:
		return gradientStep(n, r, &fields.Hiker, region.Hiker)
	case Rival:
		return gradientStep(n, r, &fields.Rival, region.Rival)
	case Pacer:
		return pacerStep(n, r)
	case Wanderer:
		return wandererStep(n, r, rng)
	case Sentry:
		return 0, 0
	case Explorer:
		return explorerStep(n, r, rng)
	default:
		return 0, 0
	}
}

// gradientStep scans the 8 neighbors plus self (dy outer, dx inner, both
// in {-1,0,1}) and returns the delta to whichever is both passable for
// class and has the smallest recorded distance, breaking ties by scan
// order. This is how both pursuer classes descend their cost field.
func gradientStep(n *NPC, r *region.Region, dist *[region.Height][region.Width]int32, class region.Class) (dx, dy int) {
	best := region.Infinite
	bestDx, bestDy := 0, 0
	for ddy := -1; ddy <= 1; ddy++ {
		for ddx := -1; ddx <= 1; ddx++ {
			nx, ny := n.Pos[0]+ddx, n.Pos[1]+ddy
			if !region.InBounds(nx, ny) {
				continue
			}
			if !region.Passable(class, r.Terrain(nx, ny)) {
				continue
			}
			d := dist[ny][nx]
			if d < best {
				best = d
				bestDx, bestDy = ddx, ddy
			}
		}
	}
	return bestDx, bestDy
}

// pacerStep keeps the NPC pinned to its stored X-axis direction, stepping
// Direction[0] cells along it each turn; InitRoster spawns every NPC with
// zero direction, so a roster pacer stays in place. When the cell ahead is
// impassable, it flips the
// stored direction instead of moving this turn (spec.md §4.8's pacer
// behavior; see SPEC_FULL.md for why this uses genuine passability rather
// than the source's terrain-vs-sentinel comparison).
func pacerStep(n *NPC, r *region.Region) (dx, dy int) {
	dx = n.Direction[0]
	nx, ny := n.Pos[0]+dx, n.Pos[1]
	if !isValidPosition(r, nx, ny) || !region.Passable(costClass(n.Class), r.Terrain(nx, ny)) {
		n.Direction[0] = -n.Direction[0]
		return 0, 0
	}
	return dx, 0
}

// wandererStep follows the stored direction; if the cell ahead is out of
// bounds or its terrain differs from the spawn terrain, a fresh random
// 8-direction (including zero) is rolled and persisted as the new stored
// direction, per spec.md §4.8.
func wandererStep(n *NPC, r *region.Region, rng *rand.Rand) (dx, dy int) {
	dx, dy = n.Direction[0], n.Direction[1]
	nx, ny := n.Pos[0]+dx, n.Pos[1]+dy
	if !region.InBounds(nx, ny) || r.Terrain(nx, ny) != n.InitialTerrain {
		dx, dy = rng.Intn(3)-1, rng.Intn(3)-1
		n.Direction = [2]int{dx, dy}
	}
	return dx, dy
}

// explorerStep follows the stored direction; if the cell ahead is
// impassable, a fresh random 8-direction is rolled and persisted, per
// spec.md §4.8.
func explorerStep(n *NPC, r *region.Region, rng *rand.Rand) (dx, dy int) {
	dx, dy = n.Direction[0], n.Direction[1]
	nx, ny := n.Pos[0]+dx, n.Pos[1]+dy
	if !isValidPosition(r, nx, ny) || !region.Passable(costClass(n.Class), r.Terrain(nx, ny)) {
		dx, dy = rng.Intn(3)-1, rng.Intn(3)-1
		n.Direction = [2]int{dx, dy}
	}
	return dx, dy
}
