package segment

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// List is an ordered sequence guarded by its own lock. A list starts unset;
// unset is distinct from empty and every read on an unset list returns the
// zero value without failing.
type List[T any] interface {
	Set(items []T)
	IsSet() bool
	Len() int
	Get(i int) (T, error)

	Append(items ...T) int
	AppendFunc(build func() T) T
	AppendSorted(item T, cmp func(a, b T) int) bool
	Insert(i int, item T) error
	RemoveFunc(match func(T) bool) bool
	Clear() bool
	Sort(cmp func(a, b T) int) bool

	Items() []T
	Iterate() *Iterator[T]
	Select(filter func(T) bool) []T
}

func New[T any](initItems []T) List[T] {
	r := &list[T]{
		m: new(sync.RWMutex),
	}
	if initItems != nil {
		r.items = slices.Clone(initItems)
	}
	return r
}

type list[T any] struct {
	m     *sync.RWMutex
	items []T
}

func (r *list[T]) Set(items []T) {
	r.m.Lock()
	defer r.m.Unlock()

	if items == nil {
		r.items = nil
		return
	}
	r.items = slices.Clone(items)
}

func (r *list[T]) IsSet() bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.items != nil
}

func (r *list[T]) Len() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.items)
}

func (r *list[T]) Get(i int) (T, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	var d T

	if r.items == nil {
		return d, nil
	}
	if i < 0 || i >= len(r.items) {
		return d, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, len(r.items))
	}
	return r.items[i], nil
}

func (r *list[T]) Append(items ...T) int {
	if len(items) == 0 {
		return 0
	}
	r.m.Lock()
	defer r.m.Unlock()

	r.alloc(len(items))
	r.items = append(r.items, items...)
	return len(items)
}

// AppendFunc calls build while holding the write lock and appends the
// result, so state mutated by build is serialized with the insertion.
func (r *list[T]) AppendFunc(build func() T) T {
	r.m.Lock()
	defer r.m.Unlock()

	item := build()
	r.alloc(1)
	r.items = append(r.items, item)
	return item
}

// AppendSorted appends item unless an element comparing equal to it is
// already present, then stable sorts the list. It reports whether item was
// appended; the sort happens either way.
func (r *list[T]) AppendSorted(item T, cmp func(a, b T) int) bool {
	r.m.Lock()
	defer r.m.Unlock()

	r.alloc(1)
	appended := !slices.ContainsFunc(r.items, func(v T) bool { return cmp(v, item) == 0 })
	if appended {
		r.items = append(r.items, item)
	}
	slices.SortStableFunc(r.items, cmp)
	return appended
}

func (r *list[T]) Insert(i int, item T) error {
	r.m.Lock()
	defer r.m.Unlock()

	if i < 0 || i > len(r.items) {
		return fmt.Errorf("%w: insert index %d, size %d", ErrIndexOutOfRange, i, len(r.items))
	}
	r.alloc(1)
	r.items = slices.Insert(r.items, i, item)
	return nil
}

func (r *list[T]) RemoveFunc(match func(T) bool) bool {
	r.m.Lock()
	defer r.m.Unlock()

	idx := slices.IndexFunc(r.items, match)
	if idx < 0 {
		return false
	}
	r.items = slices.Delete(r.items, idx, idx+1)
	return true
}

func (r *list[T]) Clear() bool {
	r.m.Lock()
	defer r.m.Unlock()

	if len(r.items) == 0 {
		return false
	}
	clear(r.items)
	r.items = r.items[:0]
	return true
}

func (r *list[T]) Sort(cmp func(a, b T) int) bool {
	r.m.Lock()
	defer r.m.Unlock()

	if r.items == nil {
		return false
	}
	slices.SortStableFunc(r.items, cmp)
	return true
}

func (r *list[T]) Items() []T {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.snapshot()
}

func (r *list[T]) Iterate() *Iterator[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	return &Iterator[T]{current: -1, items: r.snapshot()}
}

func (r *list[T]) Select(filter func(T) bool) []T {
	r.m.RLock()
	defer r.m.RUnlock()

	var items []T
	for _, item := range r.items {
		if filter(item) {
			items = append(items, item)
		}
	}
	return items
}

// snapshot returns a copy of the backing slice; caller must hold the lock.
func (r *list[T]) snapshot() []T {
	if r.items == nil {
		return nil
	}
	return slices.Clone(r.items)
}

// alloc lazily allocates the backing slice; caller must hold the write lock.
func (r *list[T]) alloc(n int) {
	if r.items == nil {
		r.items = make([]T, 0, n)
	}
}
