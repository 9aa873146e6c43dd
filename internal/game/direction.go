package game

import "math/rand"

// Direction is one of the four cardinal headings. There is no diagonal
// movement anywhere in the game.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	directionCount // sentinel
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Vector returns the unit grid delta for the heading. Screen Y grows
// downward, so DirUp is (0,-1).
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// DirectionFromVector maps a single-axis movement vector to a heading.
// Returns false for the zero vector and for diagonals.
func DirectionFromVector(dx, dy int) (Direction, bool) {
	if dx != 0 && dy != 0 {
		return DirUp, false
	}
	switch {
	case dx > 0:
		return DirRight, true
	case dx < 0:
		return DirLeft, true
	case dy > 0:
		return DirDown, true
	case dy < 0:
		return DirUp, true
	}
	return DirUp, false
}

// ChooseNewDirection picks a heading different from current, uniformly
// among the remaining three. The RNG is an explicit dependency so enemy
// decisions are reproducible under a seeded run.
func ChooseNewDirection(current Direction, rng *rand.Rand) Direction {
	d := Direction(rng.Intn(int(directionCount) - 1))
	if d >= current {
		d++
	}
	return d
}
