package pathfield

import (
	"testing"

	"github.com/patchwork-games/overworld/pkg/region"
)

func openRegion() *region.Region {
	r := region.New()
	for y := 0; y < region.Height; y++ {
		for x := 0; x < region.Width; x++ {
			if region.IsBorder(x, y) {
				r.SetTerrain(x, y, region.Tree)
			} else {
				r.SetTerrain(x, y, region.Clearing)
			}
		}
	}
	return r
}

func TestComputeZeroAtPlayerCell(t *testing.T) {
	r := openRegion()
	f := Compute(r, 10, 10)
	if f.Hiker[10][10] != 0 {
		t.Errorf("hiker distance at player cell = %d, want 0", f.Hiker[10][10])
	}
	if f.Rival[10][10] != 0 {
		t.Errorf("rival distance at player cell = %d, want 0", f.Rival[10][10])
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	r := openRegion()
	f1 := Compute(r, 15, 8)
	f2 := Compute(r, 15, 8)
	if f1.Hiker != f2.Hiker {
		t.Error("recomputing the hiker field without moving the player changed it")
	}
	if f1.Rival != f2.Rival {
		t.Error("recomputing the rival field without moving the player changed it")
	}
}

// TestHikerFieldMatchesNaiveReference checks the hiker field against an
// all-pairs-relaxation reference on a small hand-built region, per
// spec.md §8's testable property 8.
func TestHikerFieldMatchesNaiveReference(t *testing.T) {
	r := openRegion()
	r.SetTerrain(20, 10, region.Mountain) // a local obstacle to route around

	f := Compute(r, 10, 10)
	want := naiveDijkstra(r, 10, 10, region.Hiker)

	for y := 1; y < region.Height-1; y++ {
		for x := 1; x < region.Width-1; x++ {
			if f.Hiker[y][x] != want[y][x] {
				t.Fatalf("hiker distance mismatch at (%d,%d): got %d, want %d", x, y, f.Hiker[y][x], want[y][x])
			}
		}
	}
}

// TestComputeSeedsFromPlayerCellEvenIfImpassableForClass exercises
// spec.md §4.7's "the PC's terrain cost is not charged, PC is the
// source": a player standing on a Gate cell is impassable terrain for
// Hiker (cost table gte = infinite), but the hiker field must still
// propagate outward from that cell rather than leaving the whole region
// unreachable.
func TestComputeSeedsFromPlayerCellEvenIfImpassableForClass(t *testing.T) {
	r := openRegion()
	r.SetTerrain(10, 10, region.Gate)

	f := Compute(r, 10, 10)
	if f.Hiker[10][10] != 0 {
		t.Fatalf("hiker distance at player cell = %d, want 0", f.Hiker[10][10])
	}
	if f.Hiker[10][11] >= region.Infinite {
		t.Fatal("hiker distance did not propagate from a player cell impassable to Hiker")
	}
}

func TestDistanceMonotoneAlongReachableNeighbor(t *testing.T) {
	r := openRegion()
	f := Compute(r, 10, 10)

	for y := 1; y < region.Height-1; y++ {
		for x := 1; x < region.Width-1; x++ {
			d := f.Hiker[y][x]
			if d >= region.Infinite || d == 0 {
				continue
			}
			ok := false
			for dy := -1; dy <= 1 && !ok; dy++ {
				for dx := -1; dx <= 1 && !ok; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if !region.InBounds(nx, ny) {
						continue
					}
					nd := f.Hiker[ny][nx]
					if nd >= region.Infinite {
						continue
					}
					if d == nd+region.Cost(region.Hiker, r.Terrain(nx, ny)) {
						ok = true
					}
				}
			}
			if !ok {
				t.Fatalf("cell (%d,%d) with finite distance %d has no consistent predecessor neighbor", x, y, d)
			}
		}
	}
}

// naiveDijkstra is a straightforward (non-heap) reference implementation
// used only to cross-check the production Dijkstra pass.
func naiveDijkstra(r *region.Region, px, py int, class region.Class) [region.Height][region.Width]int32 {
	var dist [region.Height][region.Width]int32
	var visited [region.Height][region.Width]bool
	for y := range dist {
		for x := range dist[y] {
			dist[y][x] = region.Infinite
		}
	}
	dist[py][px] = 0

	for {
		bx, by, best := -1, -1, region.Infinite
		for y := 1; y < region.Height-1; y++ {
			for x := 1; x < region.Width-1; x++ {
				isPlayer := x == px && y == py
				if visited[y][x] || (!isPlayer && !region.Passable(class, r.Terrain(x, y))) {
					continue
				}
				if dist[y][x] < best {
					best, bx, by = dist[y][x], x, y
				}
			}
		}
		if bx == -1 {
			break
		}
		visited[by][bx] = true
		// The player's own cell never charges its terrain's cost when
		// departing it, mirroring dijkstraField's player-is-source rule.
		var cost int32
		if bx == px && by == py {
			cost = 0
		} else {
			cost = region.Cost(class, r.Terrain(bx, by))
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := bx+dx, by+dy
				if !region.InBounds(nx, ny) || visited[ny][nx] || !region.Passable(class, r.Terrain(nx, ny)) {
					continue
				}
				candidate := region.SaturatingAdd(dist[by][bx], cost)
				if candidate < dist[ny][nx] {
					dist[ny][nx] = candidate
				}
			}
		}
	}
	return dist
}
