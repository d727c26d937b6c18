package core

import "fmt"

// Tile is the terrain type of a single map cell
type Tile uint8

const (
	TileEmpty Tile = iota
	TileFloor
	TileWall
)

// Rune returns the glyph drawn for the tile
func (t Tile) Rune() rune {
	switch t {
	case TileFloor:
		return '.'
	case TileWall:
		return '#'
	default:
		return ' '
	}
}

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	default:
		return fmt.Sprintf("Tile(%d)", uint8(t))
	}
}

// ParseTile maps a config name to a Tile
func ParseTile(name string) (Tile, bool) {
	switch name {
	case "empty":
		return TileEmpty, true
	case "floor":
		return TileFloor, true
	case "wall":
		return TileWall, true
	}
	return TileEmpty, false
}
