package procgen

import (
	"math/rand"

	"github.com/patchwork-games/overworld/pkg/region"
)

// biomeCounts draws the per-category seed counts used before diffusion,
// per spec.md §4.3.
type biomeCounts struct {
	grass, clearing, mountain, forest, water int
}

func drawBiomeCounts(rng *rand.Rand) biomeCounts {
	return biomeCounts{
		grass:    rng.Intn(4) + 2,
		clearing: rng.Intn(4) + 2,
		mountain: rng.Intn(2) + 1,
		forest:   rng.Intn(2) + 1,
		water:    rng.Intn(2) + 1,
	}
}

// GenerateTerrain seeds biome points, diffuses them with the
// horizontally-biased neighborhood rule from spec.md §4.3, assigns border
// cells by neighborhood majority vote, and installs the region's gates. It
// assumes r's terrain grid starts fully Uninitialized.
func GenerateTerrain(rng *rand.Rand, r *region.Region, north, south, east, west int) {
	counts := drawBiomeCounts(rng)
	total := counts.grass + counts.clearing + counts.mountain + counts.forest + counts.water

	type cell struct{ x, y int }
	queue := make([]cell, 0, total*4)

	place := func(i int) region.Kind {
		switch {
		case i < counts.grass:
			return region.Grass
		case i < counts.grass+counts.clearing:
			return region.Clearing
		case i < counts.grass+counts.clearing+counts.mountain:
			return region.Mountain
		case i < counts.grass+counts.clearing+counts.mountain+counts.forest:
			return region.Forest
		default:
			return region.Water
		}
	}

	for i := 0; i < total; i++ {
		var x, y int
		for {
			x = rng.Intn(region.Width)
			y = rng.Intn(region.Height)
			if r.Terrain(x, y) == region.Uninitialized {
				break
			}
		}
		k := place(i)
		r.SetTerrain(x, y, k)
		queue = append(queue, cell{x, y})
	}

	// Diffuse in FIFO order with a west/east bias over north/south, so
	// biomes grow horizontally elongated, per spec.md §4.3.
	for head := 0; head < len(queue); head++ {
		c := queue[head]
		k := r.Terrain(c.x, c.y)
		reenqueuedSelf := false

		tryAdopt := func(nx, ny int, prob float64) {
			if !region.InBounds(nx, ny) || r.Terrain(nx, ny) != region.Uninitialized {
				return
			}
			if rng.Float64() < prob {
				r.SetTerrain(nx, ny, k)
				queue = append(queue, cell{nx, ny})
			} else if !reenqueuedSelf {
				reenqueuedSelf = true
				queue = append(queue, c)
			}
		}

		tryAdopt(c.x-1, c.y, 0.80) // west
		tryAdopt(c.x+1, c.y, 0.80) // east
		tryAdopt(c.x, c.y-1, 0.20) // north
		tryAdopt(c.x, c.y+1, 0.20) // south
	}

	for y := 0; y < region.Height; y++ {
		for x := 0; x < region.Width; x++ {
			if region.IsBorder(x, y) {
				r.SetTerrain(x, y, borderType(rng, r, x, y))
			} else if r.Terrain(x, y) == region.Uninitialized {
				// Cells the diffusion never reached default to short
				// grass (Clearing).
				r.SetTerrain(x, y, region.Clearing)
			}
		}
	}

	r.North, r.South, r.East, r.West = north, south, east, west
	installGates(r)
}

// borderType chooses Tree or Boulder for a border cell, biased by majority
// vote of the mountain-like (Mountain, Boulder) versus forest-like
// (Forest, Tree) neighbors in its 3x3 neighborhood, per spec.md §4.3.
func borderType(rng *rand.Rand, r *region.Region, x, y int) region.Kind {
	rocky, wooded := 0, 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !region.InBounds(nx, ny) {
				continue
			}
			switch r.Terrain(nx, ny) {
			case region.Mountain, region.Boulder:
				rocky++
			case region.Forest, region.Tree:
				wooded++
			}
		}
	}

	switch {
	case wooded == rocky:
		if rng.Intn(2) == 0 {
			return region.Boulder
		}
		return region.Tree
	case wooded > rocky:
		if rng.Intn(10) != 0 {
			return region.Tree
		}
		return region.Boulder
	default:
		if rng.Intn(10) != 0 {
			return region.Boulder
		}
		return region.Tree
	}
}

// installGates materializes the two-cell Gate span for every side that has
// one, per spec.md §3.
func installGates(r *region.Region) {
	if r.North != region.NoGate {
		r.SetTerrain(r.North, 0, region.Gate)
		r.SetTerrain(r.North, 1, region.Gate)
	}
	if r.South != region.NoGate {
		r.SetTerrain(r.South, region.Height-1, region.Gate)
		r.SetTerrain(r.South, region.Height-2, region.Gate)
	}
	if r.West != region.NoGate {
		r.SetTerrain(0, r.West, region.Gate)
		r.SetTerrain(1, r.West, region.Gate)
	}
	if r.East != region.NoGate {
		r.SetTerrain(region.Width-1, r.East, region.Gate)
		r.SetTerrain(region.Width-2, r.East, region.Gate)
	}
}
