package core

import "fmt"

// Point represents a 2D grid coordinate, y grows downward
// Signed so that a step past the top or left edge stays negative instead of wrapping
type Point struct {
	X, Y int
}

// Add returns p translated by delta
func (p Point) Add(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the eight compass directions
type Direction uint8

const (
	DirNone Direction = iota
	DirN
	DirS
	DirE
	DirW
	DirNE
	DirNW
	DirSE
	DirSW
)

var directionDeltas = [...]Point{
	DirNone: {0, 0},
	DirN:    {0, -1},
	DirS:    {0, 1},
	DirE:    {1, 0},
	DirW:    {-1, 0},
	DirNE:   {1, -1},
	DirNW:   {-1, -1},
	DirSE:   {1, 1},
	DirSW:   {-1, 1},
}

var directionNames = [...]string{
	DirNone: "none",
	DirN:    "n",
	DirS:    "s",
	DirE:    "e",
	DirW:    "w",
	DirNE:   "ne",
	DirNW:   "nw",
	DirSE:   "se",
	DirSW:   "sw",
}

// Delta returns the unit step for d; DirNone and unknown values yield (0,0)
func (d Direction) Delta() Point {
	if int(d) >= len(directionDeltas) {
		return Point{}
	}
	return directionDeltas[d]
}

// Valid reports whether d is one of the eight movement directions
func (d Direction) Valid() bool {
	return d > DirNone && int(d) < len(directionDeltas)
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection maps a lowercase compass name ("n", "se", ...) to a Direction
func ParseDirection(name string) (Direction, bool) {
	for i, n := range directionNames {
		if Direction(i) != DirNone && n == name {
			return Direction(i), true
		}
	}
	return DirNone, false
}
