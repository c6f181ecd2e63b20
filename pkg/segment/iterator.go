package segment

// Iterator walks a snapshot taken when it was created; later mutations of
// the list are not visible.
type Iterator[T any] struct {
	current int
	items   []T
}

func (r *Iterator[T]) Value() T {
	return r.items[r.current]
}

func (r *Iterator[T]) Index() int {
	return r.current
}

func (r *Iterator[T]) Next() bool {
	r.current++
	return r.current < len(r.items)
}

func (r *Iterator[T]) Len() int {
	return len(r.items)
}
