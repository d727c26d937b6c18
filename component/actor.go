package component

// ActorComponent is carried by every living creature
// HP is stored for later combat rules, nothing consumes it yet
type ActorComponent struct {
	HP uint32
}
