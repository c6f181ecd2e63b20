package pageritems

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type countingAdapter struct {
	notified atomic.Int32
}

func (r *countingAdapter) NotifyDataSetChanged() { r.notified.Add(1) }

func (r *countingAdapter) count() int { return int(r.notified.Load()) }

type testFactory struct {
	BaseFactory
	name  string
	match func(data any) bool
}

func newTestFactory(name string, match func(data any) bool) *testFactory {
	return &testFactory{name: name, match: match}
}

func (r *testFactory) Match(data any) bool {
	if r.match == nil {
		return false
	}
	return r.match(data)
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *countingAdapter) {
	t.Helper()
	a := &countingAdapter{}
	s, err := New(a, opts...)
	require.NoError(t, err)
	return s, a
}

func entryNames(entries []*Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Factory().(*testFactory).name)
	}
	return names
}

func entryRanks(entries []*Entry) []int {
	ranks := make([]int, 0, len(entries))
	for _, e := range entries {
		ranks = append(ranks, e.Rank())
	}
	return ranks
}
