package pageritems

import (
	"cmp"
	"fmt"
	"sync/atomic"

	"k8s.io/apimachinery/pkg/labels"
)

// Entry is a header or footer item. Everything except the enabled flag is
// fixed at creation.
type Entry struct {
	store    *Store
	factory  Factory
	data     any
	rank     int
	isHeader bool
	labels   labels.Set
	enabled  atomic.Bool
}

// WithLabels attaches labels used by HeadersByLabel and FootersByLabel.
func WithLabels(l labels.Set) EntryOption {
	return func(e *Entry) { e.labels = l }
}

func newEntry(s *Store, f Factory, data any, isHeader bool, opts ...EntryOption) *Entry {
	e := &Entry{
		store:    s,
		factory:  f,
		data:     data,
		isHeader: isHeader,
	}
	e.enabled.Store(true)
	for _, fn := range opts {
		fn(e)
	}
	return e
}

func (r *Entry) Factory() Factory { return r.factory }
func (r *Entry) Data() any        { return r.data }
func (r *Entry) Rank() int        { return r.rank }
func (r *Entry) IsHeader() bool   { return r.isHeader }
func (r *Entry) Enabled() bool    { return r.enabled.Load() }

func (r *Entry) Labels() labels.Set {
	if r.labels == nil {
		return labels.Set{}
	}
	return r.labels
}

func (r *Entry) String() string {
	part := PartFooter
	if r.isHeader {
		part = PartHeader
	}
	return fmt.Sprintf("%s rank: %d, enabled: %t, labels: %s", part, r.rank, r.Enabled(), r.Labels().String())
}

// SetEnabled removes the entry from its segment when disabled and puts it
// back at its rank position when enabled. Enabling an entry that is already
// enabled re-sorts its segment and notifies again. The call has no effect
// once the entry's factory has been bound to a different adapter.
func (r *Entry) SetEnabled(enabled bool) {
	r.store.enabledChanged(r, enabled)
}

func compareRank(a, b *Entry) int {
	return cmp.Compare(a.rank, b.rank)
}
