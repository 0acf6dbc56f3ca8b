package clock

import (
	"sync"
	"time"
)

// Clock supplies the current market time. The scheduler and all window
// computations go through it so tests can drive the weekly cycle without
// waiting for real time to pass.
type Clock interface {
	Now() time.Time
}

type System struct{}

func NewSystem() System { return System{} }

func (System) Now() time.Time { return time.Now() }

// Virtual is a settable clock. Once set it stays frozen at the given
// instant until the next Set or Advance call.
type Virtual struct {
	mu  sync.RWMutex
	now time.Time
}

func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

func (v *Virtual) Now() time.Time {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.now
}

func (v *Virtual) Set(t time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.now = t
}

func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.now = v.now.Add(d)
}
