// Package region defines the per-region terrain grid, height field, gate
// geometry, and the character-class cost tables that drive pathfinding and
// NPC movement over that grid.
package region

import "math"

// Kind enumerates the terrain variants a tile can take. Uninitialized is a
// sentinel used only transiently during generation; a fully generated
// Region must never contain it (spec.md §8 invariant 3).
type Kind uint8

const (
	Uninitialized Kind = iota
	Boulder
	Tree
	Path
	Mart
	Center
	Grass
	Clearing
	Mountain
	Forest
	Water
	Gate
	numKinds
)

// String renders the terrain kind's name for logging and debugging.
func (k Kind) String() string {
	switch k {
	case Boulder:
		return "boulder"
	case Tree:
		return "tree"
	case Path:
		return "path"
	case Mart:
		return "mart"
	case Center:
		return "center"
	case Grass:
		return "grass"
	case Clearing:
		return "clearing"
	case Mountain:
		return "mountain"
	case Forest:
		return "forest"
	case Water:
		return "water"
	case Gate:
		return "gate"
	default:
		return "uninitialized"
	}
}

// Glyph returns the terminal rendering glyph for the terrain kind, per
// spec.md §6. Unknown kinds render as '&' and the caller is responsible for
// logging the occurrence once (see the Error handling design in
// DESIGN.md).
func (k Kind) Glyph() byte {
	switch k {
	case Mountain:
		return '%'
	case Boulder:
		return '0'
	case Tree:
		return '4'
	case Forest:
		return '^'
	case Gate, Path:
		return '#'
	case Mart:
		return 'M'
	case Center:
		return 'C'
	case Grass:
		return ':'
	case Clearing:
		return '.'
	case Water:
		return '~'
	default:
		return '&'
	}
}

// Class enumerates the character classes that have their own terrain cost
// table. Other covers every NPC behavior class that is not a pursuer or the
// swimmer (pacer, wanderer, sentry, explorer).
type Class uint8

const (
	PC Class = iota
	Hiker
	Rival
	Swimmer
	Other
	numClasses
)

// Infinite is the saturating "impassable" cost sentinel. Costs are summed
// with SaturatingAdd below so that accumulating Infinite with any finite
// distance never overflows a signed 32-bit distance field, per spec.md §9.
const Infinite int32 = math.MaxInt32 / 2

// moveCost[class][terrain] mirrors the canonical table in spec.md §3. The
// Other row is not printed in that table; it is recovered from
// original_source/poke327.c's mapCharToEnum, which routes every NPC letter
// other than 'h'/'r' (and the otherwise-unused swimmer) to char_other, and
// from the full move_cost array's fourth row values reused for the classes
// that share PC's passability (pacers, wanderers, sentries, explorers all
// walk surface terrain exactly like the player).
var moveCost = [numClasses][numKinds]int32{
	PC:      {Uninitialized: Infinite, Boulder: Infinite, Tree: Infinite, Path: 10, Mart: 10, Center: 10, Grass: 20, Clearing: 10, Mountain: Infinite, Forest: Infinite, Water: Infinite, Gate: 10},
	Hiker:   {Uninitialized: Infinite, Boulder: Infinite, Tree: Infinite, Path: 10, Mart: 50, Center: 50, Grass: 15, Clearing: 10, Mountain: 15, Forest: 15, Water: Infinite, Gate: Infinite},
	Rival:   {Uninitialized: Infinite, Boulder: Infinite, Tree: Infinite, Path: 10, Mart: 50, Center: 50, Grass: 20, Clearing: 10, Mountain: Infinite, Forest: Infinite, Water: Infinite, Gate: Infinite},
	Swimmer: {Uninitialized: Infinite, Boulder: Infinite, Tree: Infinite, Path: Infinite, Mart: Infinite, Center: Infinite, Grass: Infinite, Clearing: Infinite, Mountain: Infinite, Forest: Infinite, Water: 7, Gate: Infinite},
	Other:   {Uninitialized: Infinite, Boulder: Infinite, Tree: Infinite, Path: 10, Mart: 10, Center: 10, Grass: 20, Clearing: 10, Mountain: Infinite, Forest: Infinite, Water: Infinite, Gate: 10},
}

// Cost returns the move cost for a class entering terrain of kind k, or
// Infinite if the class cannot enter that terrain at all.
func Cost(c Class, k Kind) int32 {
	return moveCost[c][k]
}

// Passable reports whether class c can ever step onto terrain kind k.
func Passable(c Class, k Kind) bool {
	return moveCost[c][k] < Infinite
}

// SaturatingAdd adds two costs without overflowing into negative territory
// once either operand is already Infinite; the design notes in spec.md §9
// require this so an accumulated Dijkstra distance can never wrap.
func SaturatingAdd(a, b int32) int32 {
	if a >= Infinite || b >= Infinite {
		return Infinite
	}
	sum := a + b
	if sum < 0 || sum >= Infinite {
		return Infinite
	}
	return sum
}
