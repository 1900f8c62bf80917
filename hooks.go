package resolvex

// Hooks are lightweight callbacks for high-signal backing-store events.
// The Cache contract forbids stores from failing observably, so everything a
// store swallows surfaces here instead. Implementations MUST be cheap and
// non-blocking; stores call them on hot paths.
type Hooks interface {
	// A backing store absorbed an operation error instead of surfacing it.
	// op ∈ {"lookup", "store", "delete"}.
	StoreFault(key, op string, err error)

	// A corrupt or undecodable entry was deleted on read.
	// reason ∈ {"decode", "shape"}.
	SelfHeal(key, reason string)

	// The backing store rejected a write under pressure (eviction,
	// admission policy, full buffers).
	StoreRejected(key string)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) StoreFault(string, string, error) {}
func (NopHooks) SelfHeal(string, string)          {}
func (NopHooks) StoreRejected(string)             {}
