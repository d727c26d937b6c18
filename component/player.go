package component

// PlayerComponent tags the single input-controlled entity
type PlayerComponent struct{}
