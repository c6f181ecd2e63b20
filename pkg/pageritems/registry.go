package pageritems

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/henderiw/pageritems/pkg/segment"
)

// Registry is the append-only list of factories that render data segment
// items. Once locked it rejects further registrations for good.
type Registry struct {
	m         sync.Mutex // serializes Register against Lock
	adapter   Adapter
	factories segment.List[Factory]
	locked    atomic.Bool
}

func newRegistry(a Adapter) *Registry {
	return &Registry{
		adapter:   a,
		factories: segment.New[Factory](nil),
	}
}

// Register binds the adapter to f and appends it.
func (r *Registry) Register(f Factory) error {
	if isNil(f) {
		return fmt.Errorf("%w: factory is nil", ErrInvalidArgument)
	}
	r.m.Lock()
	defer r.m.Unlock()

	if r.IsLocked() {
		return fmt.Errorf("%w: factory registry is locked", ErrInvalidArgument)
	}
	f.SetAdapter(r.adapter)
	r.factories.Append(f)
	return nil
}

// Lock prevents further registrations. It reports whether this call changed
// the state from unlocked to locked.
func (r *Registry) Lock() bool {
	r.m.Lock()
	defer r.m.Unlock()
	return !r.locked.Swap(true)
}

func (r *Registry) IsLocked() bool { return r.locked.Load() }

func (r *Registry) Count() int { return r.factories.Len() }

// Factories returns a snapshot in registration order, nil if none were registered.
func (r *Registry) Factories() []Factory { return r.factories.Items() }

// FactoryFor returns the first registered factory that matches data.
func (r *Registry) FactoryFor(data any) (Factory, error) {
	iter := r.factories.Iterate()
	for iter.Next() {
		if iter.Value().Match(data) {
			return iter.Value(), nil
		}
	}
	return nil, fmt.Errorf("%w for data of type %T", ErrNoMatchingFactory, data)
}
