// File: services/scheduling/locks.go
package scheduling

import "sync"

// providerLocks hands out one mutex per provider. Create and Reschedule hold
// the provider's mutex across the detect-conflicts-then-persist sequence so
// two interleaved requests cannot both pass the conflict check and write
// overlapping bookings. Reads never take the lock.
type providerLocks struct {
	locks sync.Map // providerID -> *sync.Mutex
}

func (p *providerLocks) forProvider(providerID string) *sync.Mutex {
	mu, _ := p.locks.LoadOrStore(providerID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
