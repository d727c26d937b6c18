package component

import "github.com/lixenwraith/turngrid/core"

// PositionComponent places an entity on the map grid
type PositionComponent struct {
	X, Y int
}

// Point converts the component to a core.Point
func (p PositionComponent) Point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

// PositionAt builds a PositionComponent from a core.Point
func PositionAt(p core.Point) PositionComponent {
	return PositionComponent{X: p.X, Y: p.Y}
}
