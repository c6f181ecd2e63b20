package pageritems

import (
	"fmt"

	"github.com/henderiw/pageritems/pkg/segment"
	"k8s.io/apimachinery/pkg/labels"
)

/* ************************ headers *************************** */

// AddHeader appends a header entry rendered by f. Header ranks start at 0
// and grow by one per call; they are never reused.
func (s *Store) AddHeader(f Factory, data any, opts ...EntryOption) (*Entry, error) {
	return s.addEntry("AddHeader", f, data, true, opts...)
}

func (s *Store) HeaderCount() int { return s.headers.Len() }

// HeaderData returns the data of the header at index, nil when no header
// was ever added.
func (s *Store) HeaderData(index int) (any, error) {
	e, err := s.headers.Get(index)
	if err != nil || e == nil {
		return nil, opError("HeaderData", err)
	}
	return e.data, nil
}

// HeaderEntries returns the enabled headers in display order.
func (s *Store) HeaderEntries() []*Entry { return s.headers.Items() }

func (s *Store) HeadersByLabel(selector labels.Selector) []*Entry {
	return selectByLabel(s.headers, selector)
}

/* ************************ footers *************************** */

// AddFooter appends a footer entry rendered by f. Footer ranks are counted
// separately from header ranks.
func (s *Store) AddFooter(f Factory, data any, opts ...EntryOption) (*Entry, error) {
	return s.addEntry("AddFooter", f, data, false, opts...)
}

func (s *Store) FooterCount() int { return s.footers.Len() }

func (s *Store) FooterData(index int) (any, error) {
	e, err := s.footers.Get(index)
	if err != nil || e == nil {
		return nil, opError("FooterData", err)
	}
	return e.data, nil
}

func (s *Store) FooterEntries() []*Entry { return s.footers.Items() }

func (s *Store) FootersByLabel(selector labels.Selector) []*Entry {
	return selectByLabel(s.footers, selector)
}

/* ************************ common *************************** */

func (s *Store) addEntry(op string, f Factory, data any, isHeader bool, opts ...EntryOption) (*Entry, error) {
	if isNil(f) {
		return nil, opError(op, fmt.Errorf("%w: factory is nil", ErrInvalidArgument))
	}
	f.SetAdapter(s.adapter)

	list, rank := s.segmentOf(isHeader)
	e := list.AppendFunc(func() *Entry {
		e := newEntry(s, f, data, isHeader, opts...)
		e.rank = *rank
		*rank++
		return e
	})
	s.log.V(1).Info("entry added", "entry", e.String())
	s.notify(op)
	return e, nil
}

// segmentOf returns the list and rank counter of a segment. The counter may
// only be touched while the list lock is held.
func (s *Store) segmentOf(isHeader bool) (segment.List[*Entry], *int) {
	if isHeader {
		return s.headers, &s.headerRank
	}
	return s.footers, &s.footerRank
}

// enabledChanged removes a disabled entry from its segment, or puts an
// enabled one back and re-sorts the segment by rank. Entries whose factory
// is bound to another adapter are ignored and keep their enabled flag.
func (s *Store) enabledChanged(e *Entry, enabled bool) {
	if e.factory.Adapter() != s.adapter {
		s.log.V(1).Info("ignoring toggle of stale entry", "entry", e.String(), "enabled", enabled)
		return
	}
	e.enabled.Store(enabled)
	list, _ := s.segmentOf(e.isHeader)

	if enabled {
		list.AppendSorted(e, compareRank)
		s.log.V(1).Info("entry enabled", "entry", e.String())
		s.notify("SetEnabled")
		return
	}
	if list.RemoveFunc(func(v *Entry) bool { return v == e }) {
		s.log.V(1).Info("entry disabled", "entry", e.String())
		s.notify("SetEnabled")
	}
}

func selectByLabel(list segment.List[*Entry], selector labels.Selector) []*Entry {
	if selector == nil {
		selector = labels.Everything()
	}
	return list.Select(func(e *Entry) bool {
		return selector.Matches(e.Labels())
	})
}
