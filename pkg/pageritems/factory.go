package pageritems

import (
	"reflect"
	"sync"
)

// Adapter is the owning view adapter. Implementations are compared by
// identity, so they must be pointer types.
type Adapter interface {
	NotifyDataSetChanged()
}

// Factory provides rendering for the items it matches. The store only binds
// and reads the adapter back-reference and calls Match when resolving data
// positions; it never renders.
type Factory interface {
	SetAdapter(a Adapter)
	Adapter() Adapter
	Match(data any) bool
}

// BaseFactory implements the adapter back-reference half of Factory and is
// meant to be embedded.
type BaseFactory struct {
	m       sync.RWMutex
	adapter Adapter
}

func (r *BaseFactory) SetAdapter(a Adapter) {
	r.m.Lock()
	defer r.m.Unlock()
	r.adapter = a
}

func (r *BaseFactory) Adapter() Adapter {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.adapter
}

// isNil reports whether f is absent, including a typed nil pointer stored in
// the interface.
func isNil(f Factory) bool {
	if f == nil {
		return true
	}
	v := reflect.ValueOf(f)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
