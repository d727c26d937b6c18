package component

// BlockableComponent marks a body that may obstruct movement into its tile
type BlockableComponent struct {
	Blocking bool
}
