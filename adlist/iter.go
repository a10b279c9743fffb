package adlist

// Iterator walks a list one node at a time. It is safe to delete the node
// just returned by Next; deleting the node Next would return invalidates
// the iterator, which then stops and reports ErrIteratorInvalidated.
type Iterator[T any] struct {
	list      *List[T]
	next      *ListNode[T]
	direction Direction
	err       error
}

func (l *List[T]) GetIterator(direction Direction) *Iterator[T] {
	iter := new(Iterator[T])
	if direction == StartHead {
		l.Rewind(iter)
	} else {
		l.RewindTail(iter)
	}
	return iter
}

// Rewind resets iter to walk l from the head.
func (l *List[T]) Rewind(iter *Iterator[T]) {
	iter.list = l
	iter.next = l.head
	iter.direction = StartHead
	iter.err = nil
}

// RewindTail resets iter to walk l from the tail.
func (l *List[T]) RewindTail(iter *Iterator[T]) {
	iter.list = l
	iter.next = l.tail
	iter.direction = StartTail
	iter.err = nil
}

// Next returns the next node, or nil once the walk is over.
func (iter *Iterator[T]) Next() *ListNode[T] {
	cur := iter.next
	if cur == nil {
		return nil
	}
	if !iter.list.owns(cur) {
		iter.next = nil
		iter.err = ErrIteratorInvalidated
		return nil
	}
	if iter.direction == StartHead {
		iter.next = cur.next
	} else {
		iter.next = cur.prev
	}
	return cur
}

func (iter *Iterator[T]) Err() error {
	return iter.err
}

func (iter *Iterator[T]) Release() {
	iter.list = nil
	iter.next = nil
}
