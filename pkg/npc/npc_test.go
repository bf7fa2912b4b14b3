package npc

import (
	"math/rand"
	"testing"

	"github.com/patchwork-games/overworld/pkg/pathfield"
	"github.com/patchwork-games/overworld/pkg/region"
)

// carvedRegion builds a small region with a cross of Path cells through
// the middle of otherwise Tree terrain, so pursuers can only walk the
// cross; suitable for spawning NPCs and running movement tests without
// depending on the full procgen pipeline.
func carvedRegion() *region.Region {
	r := region.New()
	for y := 0; y < region.Height; y++ {
		for x := 0; x < region.Width; x++ {
			r.SetTerrain(x, y, region.Tree)
		}
	}
	midY := region.Height / 2
	for x := 1; x < region.Width-1; x++ {
		r.SetTerrain(x, midY, region.Path)
	}
	midX := region.Width / 2
	for y := 1; y < region.Height-1; y++ {
		r.SetTerrain(midX, y, region.Path)
	}
	return r
}

func TestInitRosterComposition(t *testing.T) {
	r := carvedRegion()
	rng := rand.New(rand.NewSource(1))
	roster := InitRoster(rng, r, nil)

	if len(roster) != RosterSize {
		t.Fatalf("expected %d NPCs, got %d", RosterSize, len(roster))
	}
	if roster[0].Class != Hiker {
		t.Errorf("slot 0 must be Hiker, got %q", roster[0].Class)
	}
	if roster[1].Class != Rival {
		t.Errorf("slot 1 must be Rival, got %q", roster[1].Class)
	}
	for i, n := range roster {
		if r.Terrain(n.Pos[0], n.Pos[1]) != region.Path {
			t.Errorf("NPC %d spawned off-path at (%d,%d)", i, n.Pos[0], n.Pos[1])
		}
		if n.InitialTerrain != region.Path {
			t.Errorf("NPC %d InitialTerrain = %v, want Path", i, n.InitialTerrain)
		}
		if n.Direction != ([2]int{0, 0}) {
			t.Errorf("NPC %d initial direction = %v, want zero", i, n.Direction)
		}
	}
}

func TestSentryNeverMoves(t *testing.T) {
	r := carvedRegion()
	midX, midY := region.Width/2, region.Height/2
	roster := []*NPC{{Class: Sentry, Pos: [2]int{midX, midY}, InitialTerrain: region.Path}}
	fields := pathfield.Compute(r, midX, midY)
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 100; i++ {
		Advance(roster, r, fields, rng, nil)
		if roster[0].Pos != ([2]int{midX, midY}) {
			t.Fatalf("sentry moved on turn %d to %v", i, roster[0].Pos)
		}
	}
}

func TestHikerDescendsTowardPlayer(t *testing.T) {
	r := carvedRegion()
	midY := region.Height / 2
	playerX, playerY := 40, midY
	hikerX := 42

	fields := pathfield.Compute(r, playerX, playerY)
	roster := []*NPC{{Class: Hiker, Pos: [2]int{hikerX, midY}, InitialTerrain: region.Path}}
	rng := rand.New(rand.NewSource(3))

	before := fields.Hiker[midY][hikerX]
	Advance(roster, r, fields, rng, nil)
	after := fields.Hiker[midY][roster[0].Pos[0]]

	if roster[0].Pos[1] != midY {
		t.Fatalf("hiker left the path row: %v", roster[0].Pos)
	}
	if after > before {
		t.Fatalf("hiker distance increased: before=%d after=%d", before, after)
	}
	if roster[0].Pos[0] >= hikerX {
		t.Fatalf("hiker did not step toward player: stayed at or beyond %d", hikerX)
	}
}

func TestOccupancyBlocksSecondNPC(t *testing.T) {
	r := carvedRegion()
	midY := region.Height / 2
	roster := []*NPC{
		{Class: Sentry, Pos: [2]int{41, midY}, InitialTerrain: region.Path},
		{Class: Hiker, Pos: [2]int{42, midY}, InitialTerrain: region.Path},
	}
	fields := pathfield.Compute(r, 40, midY)
	rng := rand.New(rand.NewSource(4))

	Advance(roster, r, fields, rng, nil)

	if roster[1].Pos == roster[0].Pos {
		t.Fatalf("hiker ended up on top of the sentry at %v", roster[0].Pos)
	}
	if roster[1].Pos != ([2]int{42, midY}) {
		t.Errorf("hiker should have been blocked by the sentry and stayed put, moved to %v", roster[1].Pos)
	}
}

func TestIntendedDeltaSentryIsZero(t *testing.T) {
	n := &NPC{Class: Sentry}
	dx, dy := intendedDelta(n, carvedRegion(), &pathfield.Field{}, rand.New(rand.NewSource(5)))
	if dx != 0 || dy != 0 {
		t.Errorf("sentry intended delta = (%d,%d), want (0,0)", dx, dy)
	}
}
