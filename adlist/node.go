package adlist

// Direction selects where an iterator starts and which way it walks.
type Direction int

const (
	StartHead Direction = 0
	StartTail Direction = 1
)

// owner identifies the list a node belongs to. Join forwards the source
// list's owner to the destination's instead of retagging every node.
type owner struct {
	next *owner
}

func (o *owner) resolve() *owner {
	root := o
	for root.next != nil {
		root = root.next
	}
	// path compression
	for o != root {
		next := o.next
		o.next = root
		o = next
	}
	return root
}

type ListNode[T any] struct {
	prev  *ListNode[T]
	next  *ListNode[T]
	own   *owner
	value T
}

// NodeValue returns the stored value, or the zero value for a nil node.
func (n *ListNode[T]) NodeValue() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.value
}

func (n *ListNode[T]) SetNodeValue(value T) {
	n.value = value
}

func (n *ListNode[T]) Next() *ListNode[T] {
	return n.next
}

func (n *ListNode[T]) Prev() *ListNode[T] {
	return n.prev
}

func (n *ListNode[T]) detach() {
	n.prev = nil
	n.next = nil
	n.own = nil
}
