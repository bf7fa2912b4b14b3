// Package pathfield computes the per-turn pursuer distance fields: two
// single-source Dijkstra grids (hiker, rival) rooted at the player's cell,
// using each pursuer class's terrain cost table. The NPC engine reads these
// fields read-only to drive gradient-descending pursuer movement.
package pathfield

import (
	"github.com/patchwork-games/overworld/pkg/heap"
	"github.com/patchwork-games/overworld/pkg/region"
)

// Field holds both pursuer distance grids for the current turn.
type Field struct {
	Hiker [region.Height][region.Width]int32
	Rival [region.Height][region.Width]int32
}

type point struct{ x, y int }

// Compute rebuilds both distance fields from scratch, seeded at
// (playerX, playerY). It is invoked whenever the player's position or
// current region changes (spec.md §4.7); recomputing it twice in a row
// without moving the player yields identical grids, since it carries no
// state between calls beyond the region and player position it is given.
func Compute(r *region.Region, playerX, playerY int) *Field {
	f := &Field{}
	dijkstraField(r, playerX, playerY, region.Hiker, &f.Hiker)
	dijkstraField(r, playerX, playerY, region.Rival, &f.Rival)
	return f
}

// dijkstraField runs one single-source Dijkstra pass over the region's
// interior grid (8-connectivity) for class, writing the result into dist.
func dijkstraField(r *region.Region, px, py int, class region.Class, dist *[region.Height][region.Width]int32) {
	for y := range dist {
		for x := range dist[y] {
			dist[y][x] = region.Infinite
		}
	}
	dist[py][px] = 0

	handles := make(map[point]*heap.Handle, (region.Width-2)*(region.Height-2))
	less := func(a, b interface{}) bool {
		pa, pb := a.(point), b.(point)
		return dist[pa.y][pa.x] < dist[pb.y][pb.x]
	}
	h := heap.New(less)
	for y := 1; y < region.Height-1; y++ {
		for x := 1; x < region.Width-1; x++ {
			// The player's own cell always seeds the field at distance 0
			// even if its terrain is impassable for this pursuer class
			// (e.g. the player standing in a Gate, which Hiker can never
			// enter) — spec.md §4.7: "the PC's terrain cost is not
			// charged, PC is the source."
			if (x == px && y == py) || region.Passable(class, r.Terrain(x, y)) {
				handles[point{x, y}] = h.Insert(point{x, y})
			}
		}
	}

	for h.Len() > 0 {
		item, _ := h.ExtractMin()
		cur := item.(point)
		delete(handles, cur)

		// The player's own cell never charges its terrain's cost when
		// stepping away from it — it is the source, per spec.md §4.7 —
		// even when that terrain (e.g. a Gate) is otherwise impassable
		// for this pursuer class.
		var stepCost int32
		if cur.x == px && cur.y == py {
			stepCost = 0
		} else {
			stepCost = region.Cost(class, r.Terrain(cur.x, cur.y))
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := point{cur.x + dx, cur.y + dy}
				handle, inHeap := handles[n]
				if !inHeap {
					continue
				}
				candidate := region.SaturatingAdd(dist[cur.y][cur.x], stepCost)
				if candidate < dist[n.y][n.x] {
					dist[n.y][n.x] = candidate
					h.DecreaseKey(handle)
				}
			}
		}
	}
}
