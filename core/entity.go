package core

// Entity is a unique identifier for an entity, zero is never issued
type Entity uint64

// NilEntity marks the absence of an entity
const NilEntity Entity = 0
