package backpressure

import (
	"sync"
	"time"
)

// Backpressure is a gate shared by every Azure client of one subscription.
// Once a throttled response is seen the gate stays closed until the point in
// time given to NotBefore.
type Backpressure struct {
	mutex     sync.RWMutex
	notBefore time.Time
}

func New() *Backpressure {
	return &Backpressure{}
}

// NotBefore closes the gate until t. An earlier t than the one already set
// does not reopen the gate.
func (g *Backpressure) NotBefore(t time.Time) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if t.After(g.notBefore) {
		g.notBefore = t
	}
}

func (g *Backpressure) CanProceed() bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return time.Now().After(g.notBefore)
}

func (g *Backpressure) RetryAfter() time.Time {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return g.notBefore
}
