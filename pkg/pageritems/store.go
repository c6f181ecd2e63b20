// Package pageritems keeps the items behind a paged view: header entries,
// the data list and footer entries, addressed as one flat position space.
//
// Each of the three segments has its own lock, so loaders can append data
// while another goroutine toggles headers. A call is atomic with respect to
// its own segment only. After every mutation that changes what the view
// shows, the store calls Adapter.NotifyDataSetChanged once, outside any
// segment lock, unless notification has been suspended with
// SetNotifyOnChange(false).
package pageritems

import (
	"fmt"
	"sync/atomic"

	"github.com/go-logr/logr"
	"github.com/henderiw/pageritems/pkg/segment"
)

type Store struct {
	adapter  Adapter
	log      logr.Logger
	equal    EqualFunc
	registry *Registry

	data    segment.List[any]
	headers segment.List[*Entry]
	footers segment.List[*Entry]

	// headerRank is guarded by the headers lock, footerRank by the footers lock.
	headerRank int
	footerRank int

	notifyOnChange atomic.Bool
}

// New returns a store owned by adapter. The adapter is compared by identity
// to detect stale entries, so its dynamic type must be comparable; use a
// pointer type.
func New(adapter Adapter, opts ...Option) (*Store, error) {
	if adapter == nil {
		return nil, opError("New", fmt.Errorf("%w: adapter is nil", ErrInvalidArgument))
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Equal == nil {
		o.Equal = defaultOptions().Equal
	}

	s := &Store{
		adapter:  adapter,
		log:      o.Logger.WithName("pageritems"),
		equal:    o.Equal,
		registry: newRegistry(adapter),
		data:     segment.New(o.Data),
		headers:  segment.New[*Entry](nil),
		footers:  segment.New[*Entry](nil),
	}
	s.notifyOnChange.Store(o.NotifyOnChange)
	return s, nil
}

func (s *Store) Adapter() Adapter { return s.adapter }

// NotifyOnChange reports whether mutations call the adapter immediately.
func (s *Store) NotifyOnChange() bool { return s.notifyOnChange.Load() }

// SetNotifyOnChange controls whether mutations call
// Adapter.NotifyDataSetChanged. Callers batching several edits turn it off,
// make their edits, turn it back on and notify the adapter themselves.
func (s *Store) SetNotifyOnChange(b bool) { s.notifyOnChange.Store(b) }

// notify must be called after the segment lock has been released.
func (s *Store) notify(op string) {
	if !s.notifyOnChange.Load() {
		s.log.V(2).Info("change not propagated", "op", op)
		return
	}
	s.log.V(2).Info("propagating change", "op", op)
	s.adapter.NotifyDataSetChanged()
}

/* ************************ factories *************************** */

func (s *Store) Registry() *Registry { return s.registry }

func (s *Store) RegisterFactory(f Factory) error {
	if err := s.registry.Register(f); err != nil {
		s.log.Error(err, "factory rejected")
		return opError("RegisterFactory", err)
	}
	return nil
}

/* ************************ data *************************** */

// SetDataList replaces the data segment. A nil slice makes it unset.
func (s *Store) SetDataList(values []any) {
	s.data.Set(values)
	s.log.V(1).Info("data list replaced", "count", len(values))
	s.notify("SetDataList")
}

// AppendData adds value to the tail of the data segment. A nil value is
// ignored.
func (s *Store) AppendData(value any) {
	if value == nil {
		return
	}
	s.data.Append(value)
	s.log.V(1).Info("data appended", "count", 1)
	s.notify("AppendData")
}

// AppendAll adds values to the tail of the data segment with a single
// notification. An empty call does nothing.
func (s *Store) AppendAll(values ...any) {
	n := s.data.Append(values...)
	if n == 0 {
		return
	}
	s.log.V(1).Info("data appended", "count", n)
	s.notify("AppendAll")
}

// InsertData inserts value at index, which must lie in [0, DataCount()].
// A nil value is ignored before the index is checked, so it never fails.
func (s *Store) InsertData(value any, index int) error {
	if value == nil {
		return nil
	}
	if err := s.data.Insert(index, value); err != nil {
		return opError("InsertData", err)
	}
	s.log.V(1).Info("data inserted", "index", index)
	s.notify("InsertData")
	return nil
}

// RemoveData removes the first element equal to value.
func (s *Store) RemoveData(value any) {
	if value == nil {
		return
	}
	if !s.data.RemoveFunc(func(d any) bool { return s.equal(d, value) }) {
		return
	}
	s.log.V(1).Info("data removed")
	s.notify("RemoveData")
}

func (s *Store) ClearData() {
	if !s.data.Clear() {
		return
	}
	s.log.V(1).Info("data cleared")
	s.notify("ClearData")
}

// SortData orders the data segment with cmp, which returns a negative
// number when a sorts before b. The sort is stable.
func (s *Store) SortData(cmp func(a, b any) int) {
	if cmp == nil || !s.data.Sort(cmp) {
		return
	}
	s.log.V(1).Info("data sorted")
	s.notify("SortData")
}

func (s *Store) DataCount() int { return s.data.Len() }

// Data returns the element at index, or nil when the data segment is unset.
func (s *Store) Data(index int) (any, error) {
	d, err := s.data.Get(index)
	return d, opError("Data", err)
}

// DataList returns a snapshot of the data segment, nil when it is unset.
func (s *Store) DataList() []any { return s.data.Items() }
