package region

import "testing"

func TestNewRegionHasNoGates(t *testing.T) {
	r := New()
	for _, s := range []Side{North, South, East, West} {
		if r.GateOffset(s) != NoGate {
			t.Errorf("side %v: GateOffset = %d, want NoGate", s, r.GateOffset(s))
		}
	}
}

func TestGateCellsTwoCellSpan(t *testing.T) {
	r := New()
	r.SetGateOffset(North, 10)
	a, b, ok := r.GateCells(North)
	if !ok {
		t.Fatal("expected a north gate")
	}
	if a != ([2]int{10, 0}) || b != ([2]int{10, 1}) {
		t.Errorf("north gate cells = %v, %v", a, b)
	}

	r.SetGateOffset(West, 5)
	a, b, ok = r.GateCells(West)
	if !ok {
		t.Fatal("expected a west gate")
	}
	if a != ([2]int{0, 5}) || b != ([2]int{1, 5}) {
		t.Errorf("west gate cells = %v, %v", a, b)
	}
}

func TestGateCellsAbsentWhenNoGate(t *testing.T) {
	r := New()
	if _, _, ok := r.GateCells(South); ok {
		t.Error("expected no south gate on a fresh region")
	}
}

func TestOppositeSide(t *testing.T) {
	cases := map[Side]Side{North: South, South: North, East: West, West: East}
	for s, want := range cases {
		if got := s.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", s, got, want)
		}
	}
}

func TestIsBorder(t *testing.T) {
	if !IsBorder(0, 0) || !IsBorder(Width-1, Height-1) {
		t.Error("corners must be border cells")
	}
	if IsBorder(1, 1) {
		t.Error("(1,1) is interior, not border")
	}
}

func TestInBounds(t *testing.T) {
	if !InBounds(0, 0) || !InBounds(Width-1, Height-1) {
		t.Error("edge cells should be in bounds")
	}
	if InBounds(-1, 0) || InBounds(Width, 0) || InBounds(0, Height) {
		t.Error("out of range cells should not be in bounds")
	}
}

func TestTerrainAndHeightAccessors(t *testing.T) {
	r := New()
	r.SetTerrain(3, 4, Path)
	if r.Terrain(3, 4) != Path {
		t.Errorf("Terrain(3,4) = %v, want Path", r.Terrain(3, 4))
	}
	r.SetHeight(3, 4, 7)
	if r.Height(3, 4) != 7 {
		t.Errorf("Height(3,4) = %d, want 7", r.Height(3, 4))
	}
}
