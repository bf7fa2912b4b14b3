package procgen

import (
	"math/rand"

	"github.com/patchwork-games/overworld/pkg/region"
)

// findBuildingSlot searches for a 2x2 interior anchor that flanks an
// existing Path edge and does not overlap any existing Mart, Center, or
// Path cell, per spec.md §4.6's exact source predicate (two adjacent
// border-Path cells on any one of the square's four edges).
func findBuildingSlot(rng *rand.Rand, r *region.Region) (x, y int) {
	for {
		x = rng.Intn(region.Width-4) + 1
		y = rng.Intn(region.Height-4) + 1

		flanksPath := (r.Terrain(x-1, y) == region.Path && r.Terrain(x-1, y+1) == region.Path) ||
			(r.Terrain(x+2, y) == region.Path && r.Terrain(x+2, y+1) == region.Path) ||
			(r.Terrain(x, y-1) == region.Path && r.Terrain(x+1, y-1) == region.Path) ||
			(r.Terrain(x, y+2) == region.Path && r.Terrain(x+1, y+2) == region.Path)
		if !flanksPath {
			continue
		}

		free := true
		for dy := 0; dy < 2 && free; dy++ {
			for dx := 0; dx < 2; dx++ {
				switch r.Terrain(x+dx, y+dy) {
				case region.Mart, region.Center, region.Path:
					free = false
				}
				if !free {
					break
				}
			}
		}
		if free {
			return x, y
		}
	}
}

func placeFootprint(r *region.Region, x, y int, k region.Kind) {
	r.SetTerrain(x, y, k)
	r.SetTerrain(x+1, y, k)
	r.SetTerrain(x, y+1, k)
	r.SetTerrain(x+1, y+1, k)
}

// buildingChance returns the placement probability (0-100) for a region at
// Manhattan distance d from the world origin, per spec.md §4.6.
func buildingChance(d int) int {
	if d > 200 {
		return 5
	}
	return 50 - (45*d)/200
}

// PlaceBuildings attempts to site one Mart and one Center footprint,
// each gated on buildingChance(d) except at the world origin (d == 0),
// where placement is unconditional.
func PlaceBuildings(rng *rand.Rand, r *region.Region, d int) {
	p := buildingChance(d)
	if rng.Intn(100) < p || d == 0 {
		x, y := findBuildingSlot(rng, r)
		placeFootprint(r, x, y, region.Mart)
	}
	if rng.Intn(100) < p || d == 0 {
		x, y := findBuildingSlot(rng, r)
		placeFootprint(r, x, y, region.Center)
	}
}
