// Package procgen implements the region generation pipeline: height field
// diffusion, terrain seeding and biome diffusion, boulder/tree scatter,
// gate-constrained road routing, and building siting. Each stage is a
// standalone function over a *region.Region so the pipeline in
// GenerateRegion reads as a straight-line sequence, matching the style of
// the teacher's procedural generators (each concern its own file, composed
// by a single Generate entry point).
package procgen

import (
	"math/rand"

	"github.com/patchwork-games/overworld/pkg/region"
)

// heightSeedCount and heightSeedStep reproduce the original generator's
// seed schedule: 13 values 1, 21, 41, ..., 241.
const (
	heightSeedCount = 13
	heightSeedStep  = 20
)

// gaussianKernel is the separable 5x5 discrete Gaussian {1,4,7,4,1} x
// {1,4,7,4,1}, per spec.md §4.2.
var gaussianKernel = [5][5]int{
	{1, 4, 7, 4, 1},
	{4, 16, 28, 16, 4},
	{7, 28, 49, 28, 7},
	{4, 16, 28, 16, 4},
	{1, 4, 7, 4, 1},
}

// GenerateHeight seeds 13 discrete height samples on unused cells, floods
// each seed's value outward over the 8-neighborhood in BFS order, and then
// smooths the result with two passes of a 5x5 discrete Gaussian
// convolution, normalizing by the sum of in-bounds kernel weights at each
// cell (edge clipping). The result is written into r's height field.
func GenerateHeight(rng *rand.Rand, r *region.Region) {
	var seeded [region.Height][region.Width]int // 0 == unseeded

	type cell struct{ x, y int }
	queue := make([]cell, 0, region.Width*region.Height)

	for i := 0; i < heightSeedCount; i++ {
		value := 1 + i*heightSeedStep
		var x, y int
		for {
			x = rng.Intn(region.Width)
			y = rng.Intn(region.Height)
			if seeded[y][x] == 0 {
				break
			}
		}
		seeded[y][x] = value
		queue = append(queue, cell{x, y})
	}

	for head := 0; head < len(queue); head++ {
		c := queue[head]
		value := seeded[c.y][c.x]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := c.x+dx, c.y+dy
				if !region.InBounds(nx, ny) || seeded[ny][nx] != 0 {
					continue
				}
				seeded[ny][nx] = value
				queue = append(queue, cell{nx, ny})
			}
		}
	}

	pass1 := convolve(seeded)
	pass2 := convolve(pass1)

	for y := 0; y < region.Height; y++ {
		for x := 0; x < region.Width; x++ {
			r.SetHeight(x, y, uint8(pass2[y][x]))
		}
	}
}

// convolve applies one pass of gaussianKernel to field, clipping at the
// grid edges and normalizing by the sum of weights actually in bounds.
func convolve(field [region.Height][region.Width]int) [region.Height][region.Width]int {
	var out [region.Height][region.Width]int
	for y := 0; y < region.Height; y++ {
		for x := 0; x < region.Width; x++ {
			sum, weight := 0, 0
			for p := 0; p < 5; p++ {
				for q := 0; q < 5; q++ {
					sx, sy := x+(q-2), y+(p-2)
					if !region.InBounds(sx, sy) {
						continue
					}
					w := gaussianKernel[p][q]
					sum += field[sy][sx] * w
					weight += w
				}
			}
			if weight == 0 {
				out[y][x] = 0
			} else {
				out[y][x] = sum / weight
			}
		}
	}
	return out
}
