package core

import "fmt"

// Map is a fixed-size row-major tile grid
// Dimensions are set at construction and never change
type Map struct {
	width  int
	height int
	tiles  []Tile
}

// NewMap creates a width x height map filled with fill
// Panics on non-positive dimensions
func NewMap(width, height int, fill Tile) *Map {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid map size %dx%d", width, height))
	}
	tiles := make([]Tile, width*height)
	if fill != TileEmpty {
		for i := range tiles {
			tiles[i] = fill
		}
	}
	return &Map{
		width:  width,
		height: height,
		tiles:  tiles,
	}
}

// Width returns the number of columns
func (m *Map) Width() int { return m.width }

// Height returns the number of rows
func (m *Map) Height() int { return m.height }

// Contains reports whether p lies within [0,width)x[0,height)
func (m *Map) Contains(p Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// At returns the tile at (x,y)
// Out of bounds access is a programming error and panics
func (m *Map) At(x, y int) Tile {
	return m.tiles[m.index(x, y)]
}

// Set places a tile at (x,y), intended for setup only
func (m *Map) Set(x, y int, t Tile) {
	m.tiles[m.index(x, y)] = t
}

func (m *Map) index(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		panic(fmt.Sprintf("map index (%d,%d) out of bounds %dx%d", x, y, m.width, m.height))
	}
	return y*m.width + x
}
