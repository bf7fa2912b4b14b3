// Package engine ties the world, the NPC roster, and the cost-field
// pathfinder together into the turn sequence spec.md §2 and §5 describe:
// advance NPCs, then (on region switch or player movement) recompute the
// pursuer distance fields used by the next turn's pursuers.
package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/patchwork-games/overworld/pkg/logging"
	"github.com/patchwork-games/overworld/pkg/npc"
	"github.com/patchwork-games/overworld/pkg/pathfield"
	"github.com/patchwork-games/overworld/pkg/procgen"
	"github.com/patchwork-games/overworld/pkg/region"
	"github.com/patchwork-games/overworld/pkg/worldmap"
)

// Game owns the single-player simulation state: the world, the current
// region's NPC roster, the player's in-region position, and this turn's
// pursuer distance fields.
type Game struct {
	World            *worldmap.World
	Roster           []*npc.NPC
	Fields           *pathfield.Field
	PlayerX, PlayerY int

	seed   int64
	logger *logrus.Logger
	log    *logrus.Entry
}

// New builds a fresh game seeded with seed, generates the origin region,
// spawns its NPC roster, and computes the initial pursuer distance fields.
// A nil logger discards engine-level log output.
func New(seed int64, logger *logrus.Logger) *Game {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	g := &Game{
		World:  worldmap.New(seed, logger),
		seed:   seed,
		logger: logger,
		log:    logging.SystemLogger(logger, "engine"),
	}

	r, _ := g.World.EnsureRegion(g.World.Cursor(), g.generator())
	g.PlayerX, g.PlayerY = firstPathCell(r)
	g.Roster = npc.InitRoster(g.World.RNG(), r, g.log)
	g.Fields = pathfield.Compute(r, g.PlayerX, g.PlayerY)
	return g
}

// CurrentRegion returns the region the player currently occupies.
func (g *Game) CurrentRegion() *region.Region {
	return g.World.CurrentRegion()
}

// AdvanceTurn moves every NPC once, in roster order, using this turn's
// distance fields.
func (g *Game) AdvanceTurn() {
	npc.Advance(g.Roster, g.CurrentRegion(), g.Fields, g.World.RNG(), g.log)
}

// recomputeFields rebuilds the pursuer distance fields for the current
// region and player position. Called whenever either changes, per
// spec.md §2's per-turn control flow.
func (g *Game) recomputeFields() {
	g.Fields = pathfield.Compute(g.CurrentRegion(), g.PlayerX, g.PlayerY)
}

// generator adapts procgen.GenerateRegion into the worldmap.Generator
// signature, computing the Manhattan distance from the world origin that
// PlaceBuildings needs. It reads the world's cursor at call time, which is
// always already set to the region being generated: both World.Move and
// World.Teleport update the cursor before invoking the generator.
func (g *Game) generator() worldmap.Generator {
	return func(rng *rand.Rand, north, south, east, west int) *region.Region {
		idx := g.World.Cursor()
		d := absInt(idx.X-worldmap.Origin) + absInt(idx.Y-worldmap.Origin)
		entry := logging.GeneratorLogger(g.logger, "region", g.seed, idx.X-worldmap.Origin, idx.Y-worldmap.Origin)

		start := time.Now()
		r := procgen.GenerateRegion(rng, entry, north, south, east, west, d)
		logging.PerformanceLogger(g.logger, "region-generation").
			WithField("elapsedMs", time.Since(start).Milliseconds()).
			Debug("region generation pipeline complete")

		return r
	}
}

// Move steps the cursor one region in dir, lazily generating the
// destination if needed, and places the player on the inner cell of the
// gate the move entered through. It reports whether the cursor actually moved
// (false at the world boundary).
func (g *Game) Move(dir worldmap.Side) bool {
	if !g.World.Move(dir, g.generator()) {
		return false
	}
	g.PlayerX, g.PlayerY = entryPoint(g.CurrentRegion(), dir.Opposite())
	g.recomputeFields()
	return true
}

// Teleport moves the cursor directly to world-relative coordinates (x, y)
// (spec.md §6's `f x y` command), lazily generating the destination.
func (g *Game) Teleport(x, y int) bool {
	idx := worldmap.Index{X: worldmap.Origin + x, Y: worldmap.Origin + y}
	if !g.World.Teleport(idx, g.generator()) {
		return false
	}
	g.PlayerX, g.PlayerY = firstPathCell(g.CurrentRegion())
	g.recomputeFields()
	return true
}

// firstPathCell scans a region in row-major order for the first Path
// cell, used to place the player on a sensible starting tile. BuildPaths
// always carves at least one Path cell into every generated region, so
// this never falls through.
func firstPathCell(r *region.Region) (x, y int) {
	for y := 1; y < region.Height-1; y++ {
		for x := 1; x < region.Width-1; x++ {
			if r.Terrain(x, y) == region.Path {
				return x, y
			}
		}
	}
	return region.Width / 2, region.Height / 2
}

// entryPoint returns the inner cell of the region's two-cell gate span on
// side s (a Gate tile one step in from the border), the cell a player
// arrives at after crossing that border.
func entryPoint(r *region.Region, s region.Side) (x, y int) {
	switch s {
	case region.North:
		return r.North, 1
	case region.South:
		return r.South, region.Height - 2
	case region.West:
		return 1, r.West
	default:
		return region.Width - 2, r.East
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
