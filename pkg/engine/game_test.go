package engine

import (
	"testing"

	"github.com/patchwork-games/overworld/pkg/npc"
	"github.com/patchwork-games/overworld/pkg/region"
	"github.com/patchwork-games/overworld/pkg/worldmap"
)

func TestNewGameSpawnsPlayerOnPath(t *testing.T) {
	g := New(1, nil)
	if g.CurrentRegion().Terrain(g.PlayerX, g.PlayerY) != region.Path {
		t.Fatalf("player spawned off-path at (%d,%d)", g.PlayerX, g.PlayerY)
	}
	if len(g.Roster) != npc.RosterSize {
		t.Fatalf("expected %d NPCs, got %d", npc.RosterSize, len(g.Roster))
	}
}

func TestMoveNorthThenSouthReturnsSameRegion(t *testing.T) {
	g := New(2, nil)
	origin := g.World.Cursor()
	originRegion := g.CurrentRegion()

	if !g.Move(worldmap.North) {
		t.Fatal("move north failed unexpectedly")
	}
	if g.World.Cursor() == origin {
		t.Fatal("cursor did not change after moving north")
	}

	if !g.Move(worldmap.South) {
		t.Fatal("move south failed unexpectedly")
	}
	if g.World.Cursor() != origin {
		t.Fatalf("cursor did not return to origin: got %v, want %v", g.World.Cursor(), origin)
	}
	if g.CurrentRegion() != originRegion {
		t.Fatal("returning to the origin region produced a different region object")
	}
}

func TestMoveAgreesOnSharedGateOffset(t *testing.T) {
	g := New(3, nil)
	south := g.CurrentRegion()

	if !g.Move(worldmap.North) {
		t.Fatal("move north failed unexpectedly")
	}
	north := g.CurrentRegion()

	if north.South != south.North {
		t.Errorf("gate offsets disagree across shared edge: north.South=%d south.North=%d", north.South, south.North)
	}
}

func TestTeleportToOrigin(t *testing.T) {
	g := New(4, nil)
	g.Move(worldmap.North)
	g.Move(worldmap.East)

	if !g.Teleport(0, 0) {
		t.Fatal("teleport to origin failed")
	}
	if g.World.Cursor() != (worldmap.Index{X: worldmap.Origin, Y: worldmap.Origin}) {
		t.Fatalf("cursor after teleport = %v, want origin", g.World.Cursor())
	}
}

func TestTeleportOutOfBoundsFails(t *testing.T) {
	g := New(5, nil)
	if g.Teleport(worldmap.Size, worldmap.Size) {
		t.Fatal("teleport far out of bounds should fail")
	}
}
