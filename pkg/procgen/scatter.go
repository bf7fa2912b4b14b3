package procgen

import (
	"math/rand"

	"github.com/patchwork-games/overworld/pkg/region"
)

const (
	minBoulders  = 10
	boulderProb  = 95
	minTrees     = 10
	treeProb     = 95
)

// ScatterBoulders replaces random interior cells with Boulder terrain,
// skipping Forest, Path, and Gate cells so it never blocks a carved road or
// a forest biome, per spec.md §4.4. It runs at least minBoulders times and
// keeps going with probability boulderProb/100 thereafter.
func ScatterBoulders(rng *rand.Rand, r *region.Region) {
	for i := 0; i < minBoulders || rng.Intn(100) < boulderProb; i++ {
		x := rng.Intn(region.Width-2) + 1
		y := rng.Intn(region.Height-2) + 1
		switch r.Terrain(x, y) {
		case region.Forest, region.Path, region.Gate:
		default:
			r.SetTerrain(x, y, region.Boulder)
		}
	}
}

// ScatterTrees replaces random interior cells with Tree terrain, skipping
// Mountain, Path, Water, and Gate cells, per spec.md §4.4.
func ScatterTrees(rng *rand.Rand, r *region.Region) {
	for i := 0; i < minTrees || rng.Intn(100) < treeProb; i++ {
		x := rng.Intn(region.Width-2) + 1
		y := rng.Intn(region.Height-2) + 1
		switch r.Terrain(x, y) {
		case region.Mountain, region.Path, region.Water, region.Gate:
		default:
			r.SetTerrain(x, y, region.Tree)
		}
	}
}
