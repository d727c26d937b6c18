package component

// GlyphComponent makes an entity renderable as a single character at its position
type GlyphComponent struct {
	Rune rune
}
