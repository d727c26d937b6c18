package status

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Metric keys written by the turn loop
const (
	KeyTurns         = "turns"
	KeyMovesApplied  = "moves.applied"
	KeyMovesBlocked  = "moves.blocked"
	KeyEventsIgnored = "events.ignored"
	KeyFrames        = "frames"
)

// Registry is the central metrics facade
// Systems cache counter pointers at construction and increment them directly
type Registry struct {
	Counters *Counters
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewCounters(),
	}
}

// Counter returns the counter for key; nil registry yields a throwaway counter
func (r *Registry) Counter(key string) *atomic.Int64 {
	if r == nil {
		return new(atomic.Int64)
	}
	return r.Counters.Get(key)
}

// Snapshot copies current counter values
func (r *Registry) Snapshot() map[string]int64 {
	keys := r.Counters.Keys()
	out := make(map[string]int64, len(keys))
	for _, k := range keys {
		out[k] = r.Counters.Value(k)
	}
	return out
}

// Fields renders all counters as zap fields in key order
func (r *Registry) Fields() []zap.Field {
	keys := r.Counters.Keys()
	fields := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, zap.Int64(k, r.Counters.Value(k)))
	}
	return fields
}
