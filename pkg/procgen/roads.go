package procgen

import (
	"github.com/patchwork-games/overworld/pkg/heap"
	"github.com/patchwork-games/overworld/pkg/region"
)

// point is a grid coordinate used internally by the road router.
type point struct{ x, y int }

// edgePenalty doubles the effective cost of stepping onto a cell one step
// inside the outermost ring, per spec.md §4.5.
func edgePenalty(x, y int) int32 {
	if x == 1 || y == 1 || x == region.Width-2 || y == region.Height-2 {
		return 2
	}
	return 1
}

// dijkstraPath runs a single Dijkstra pass over the region's interior grid
// (4-connectivity) from from to to, with cost(target) = (cost(current) +
// height(current)) * edgePenalty(target), and carves the resulting
// shortest path as Path terrain with zero height. The endpoints themselves
// (the gate cells) are left untouched, matching spec.md §4.5 — only the
// intermediate cells on the route are overwritten.
func dijkstraPath(r *region.Region, from, to point) {
	var dist [region.Height][region.Width]int32
	var prev [region.Height][region.Width]point
	for y := range dist {
		for x := range dist[y] {
			dist[y][x] = region.Infinite
		}
	}
	dist[from.y][from.x] = 0

	handles := make(map[point]*heap.Handle, (region.Width-2)*(region.Height-2))
	less := func(a, b interface{}) bool {
		pa, pb := a.(point), b.(point)
		return dist[pa.y][pa.x] < dist[pb.y][pb.x]
	}
	h := heap.New(less)
	for y := 1; y < region.Height-1; y++ {
		for x := 1; x < region.Width-1; x++ {
			handles[point{x, y}] = h.Insert(point{x, y})
		}
	}

	for h.Len() > 0 {
		item, _ := h.ExtractMin()
		cur := item.(point)
		delete(handles, cur)

		if cur == to {
			break
		}

		neighbors := [4]point{
			{cur.x, cur.y - 1}, {cur.x, cur.y + 1},
			{cur.x - 1, cur.y}, {cur.x + 1, cur.y},
		}
		for _, n := range neighbors {
			handle, inHeap := handles[n]
			if !inHeap {
				continue
			}
			candidate := (dist[cur.y][cur.x] + int32(r.Height(cur.x, cur.y))) * edgePenalty(n.x, n.y)
			if candidate < dist[n.y][n.x] {
				dist[n.y][n.x] = candidate
				prev[n.y][n.x] = cur
				h.DecreaseKey(handle)
			}
		}
	}

	for cur := to; cur != from; cur = prev[cur.y][cur.x] {
		if cur != to {
			r.SetTerrain(cur.x, cur.y, region.Path)
			r.SetHeight(cur.x, cur.y, 0)
		}
	}
}

// gateEntry returns the inner cell of the two-cell Gate span on side s
// (the one not on the border) — the point a road route actually connects
// to.
func gateEntry(r *region.Region, s region.Side) point {
	switch s {
	case region.North:
		return point{r.North, 1}
	case region.South:
		return point{r.South, region.Height - 2}
	case region.West:
		return point{1, r.West}
	default:
		return point{region.Width - 2, r.East}
	}
}

// BuildPaths routes up to two legs connecting the region's gates (E<->W if
// both exist, N<->S if both exist), carving the resulting Path terrain. If
// an axis is missing one side, it falls back to the corner-connection
// decision tree in spec.md §4.5, so a region is always fully connected
// regardless of how many of its four sides have a gate.
func BuildPaths(r *region.Region) {
	hasN, hasS := r.North != region.NoGate, r.South != region.NoGate
	hasE, hasW := r.East != region.NoGate, r.West != region.NoGate

	if hasE && hasW {
		dijkstraPath(r, gateEntry(r, region.West), gateEntry(r, region.East))
	}
	if hasN && hasS {
		dijkstraPath(r, gateEntry(r, region.North), gateEntry(r, region.South))
	}

	if !hasE {
		if hasN {
			dijkstraPath(r, gateEntry(r, region.West), gateEntry(r, region.North))
		} else {
			dijkstraPath(r, gateEntry(r, region.West), gateEntry(r, region.South))
		}
	}
	if !hasW {
		if hasN {
			dijkstraPath(r, gateEntry(r, region.East), gateEntry(r, region.North))
		} else {
			dijkstraPath(r, gateEntry(r, region.East), gateEntry(r, region.South))
		}
	}
	if !hasN {
		if !hasE {
			dijkstraPath(r, gateEntry(r, region.West), gateEntry(r, region.South))
		} else {
			dijkstraPath(r, gateEntry(r, region.East), gateEntry(r, region.South))
		}
	}
	if !hasS {
		if !hasE {
			dijkstraPath(r, gateEntry(r, region.West), gateEntry(r, region.North))
		} else {
			dijkstraPath(r, gateEntry(r, region.East), gateEntry(r, region.North))
		}
	}
}
