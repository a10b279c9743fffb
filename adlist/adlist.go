// Package adlist is a generic doubly linked list with per-list hooks for
// duplicating, freeing and matching the stored values.
//
// A List is not safe for concurrent use. Nodes returned by the list are
// handles into it: they stay valid until they are deleted, and the list
// checks that a handle belongs to it before splicing around it.
package adlist

import "reflect"

// Type bundles the hooks of a list. Any of them may be nil.
type Type[T any] struct {
	// Dup copies a value for List.Dup. When nil values are shared.
	Dup func(value T) (T, error)
	// Free is called on a value when its node is destroyed.
	Free func(value T)
	// Match reports whether value matches key in SearchKey. When nil
	// values are compared by reference.
	Match func(value, key T) bool
}

type List[T any] struct {
	head, tail *ListNode[T]
	own        *owner
	dup        func(T) (T, error)
	free       func(T)
	match      func(value, key T) bool
	len        int
}

func Create[T any]() *List[T] {
	return &List[T]{own: new(owner)}
}

func CreateWithType[T any](typ *Type[T]) *List[T] {
	l := Create[T]()
	if typ != nil {
		l.dup = typ.Dup
		l.free = typ.Free
		l.match = typ.Match
	}
	return l
}

func (l *List[T]) lazyInit() {
	if l.own == nil {
		l.own = new(owner)
	}
}

func (l *List[T]) SetDupMethod(fn func(T) (T, error)) {
	l.dup = fn
}

func (l *List[T]) SetFreeMethod(fn func(T)) {
	l.free = fn
}

func (l *List[T]) SetMatchMethod(fn func(value, key T) bool) {
	l.match = fn
}

func (l *List[T]) GetDupMethod() func(T) (T, error) {
	return l.dup
}

func (l *List[T]) GetFreeMethod() func(T) {
	return l.free
}

func (l *List[T]) GetMatchMethod() func(value, key T) bool {
	return l.match
}

func (l *List[T]) Len() int {
	return l.len
}

func (l *List[T]) First() *ListNode[T] {
	return l.head
}

func (l *List[T]) Last() *ListNode[T] {
	return l.tail
}

func (l *List[T]) owns(node *ListNode[T]) bool {
	return node != nil && node.own != nil && l.own != nil && node.own.resolve() == l.own
}

// Empty removes all the nodes, calling the free hook on every value, and
// leaves an empty list with its hooks untouched.
func (l *List[T]) Empty() {
	current := l.head
	for current != nil {
		next := current.next
		if l.free != nil {
			l.free(current.value)
		}
		current.detach()
		current = next
	}
	l.head = nil
	l.tail = nil
	l.len = 0
}

// Release empties the list and drops its hooks. The list must not be used
// afterwards.
func (l *List[T]) Release() {
	l.Empty()
	l.dup = nil
	l.free = nil
	l.match = nil
}

func (l *List[T]) AddNodeHead(value T) *List[T] {
	l.linkHead(&ListNode[T]{value: value})
	return l
}

func (l *List[T]) AddNodeTail(value T) *List[T] {
	l.linkTail(&ListNode[T]{value: value})
	return l
}

func (l *List[T]) linkHead(node *ListNode[T]) {
	l.lazyInit()
	node.own = l.own
	node.prev = nil
	if l.len == 0 {
		node.next = nil
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}
	l.len++
}

func (l *List[T]) linkTail(node *ListNode[T]) {
	l.lazyInit()
	node.own = l.own
	node.next = nil
	if l.len == 0 {
		node.prev = nil
		l.head = node
		l.tail = node
	} else {
		node.prev = l.tail
		l.tail.next = node
		l.tail = node
	}
	l.len++
}

// LinkNodeHead links a detached node, such as one returned by UnlinkNode,
// at the head. It returns false if the node still belongs to a list.
func (l *List[T]) LinkNodeHead(node *ListNode[T]) bool {
	if node == nil || node.own != nil {
		assert(false, "LinkNodeHead: node is still linked")
		return false
	}
	l.linkHead(node)
	return true
}

// LinkNodeTail is LinkNodeHead for the tail.
func (l *List[T]) LinkNodeTail(node *ListNode[T]) bool {
	if node == nil || node.own != nil {
		assert(false, "LinkNodeTail: node is still linked")
		return false
	}
	l.linkTail(node)
	return true
}

// InsertNode adds value right after oldNode, or right before it when after
// is false. It returns nil, leaving the list untouched, if oldNode does not
// belong to l.
func (l *List[T]) InsertNode(oldNode *ListNode[T], value T, after bool) *List[T] {
	if !l.owns(oldNode) {
		assert(false, "InsertNode: reference node does not belong to the list")
		return nil
	}

	node := &ListNode[T]{value: value, own: l.own}
	if after {
		node.prev = oldNode
		node.next = oldNode.next
		if l.tail == oldNode {
			l.tail = node
		}
	} else {
		node.next = oldNode
		node.prev = oldNode.prev
		if l.head == oldNode {
			l.head = node
		}
	}
	if node.prev != nil {
		node.prev.next = node
	}
	if node.next != nil {
		node.next.prev = node
	}
	l.len++
	return l
}

func (l *List[T]) unlink(node *ListNode[T]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.detach()
	l.len--
}

// UnlinkNode removes node from the list without calling the free hook, so
// the caller keeps the value. It returns false if node does not belong to l.
func (l *List[T]) UnlinkNode(node *ListNode[T]) bool {
	if !l.owns(node) {
		assert(false, "UnlinkNode: node does not belong to the list")
		return false
	}
	l.unlink(node)
	return true
}

// DelNode removes node and calls the free hook on its value. Nodes of
// other lists are ignored.
func (l *List[T]) DelNode(node *ListNode[T]) {
	if !l.owns(node) {
		assert(false, "DelNode: node does not belong to the list")
		return
	}
	l.unlink(node)
	if l.free != nil {
		l.free(node.value)
	}
}

// SearchKey returns the first node whose value matches key, using the
// match hook if set and reference equality otherwise.
func (l *List[T]) SearchKey(key T) *ListNode[T] {
	iter := l.GetIterator(StartHead)
	defer iter.Release()

	for node := iter.Next(); node != nil; node = iter.Next() {
		if l.match != nil {
			if l.match(node.value, key) {
				return node
			}
		} else if sameRef(node.value, key) {
			return node
		}
	}
	return nil
}

// sameRef compares by identity what has identity (pointers, slices, maps,
// channels, funcs) and by == whatever else is comparable.
func sameRef(a, b any) (equal bool) {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return !va.IsValid() && !vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func:
		return va.Pointer() == vb.Pointer()
	}
	if !va.Type().Comparable() {
		return false
	}
	// comparable structs may still hold uncomparable interface values
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}

// Index returns the node at the zero-based index, counting from the tail
// when index is negative (-1 is the last node). Out of range gives nil.
func (l *List[T]) Index(index int) *ListNode[T] {
	var n *ListNode[T]
	if index < 0 {
		index = (-index) - 1
		if index >= l.len {
			return nil
		}
		n = l.tail
		for ; index > 0 && n != nil; index-- {
			n = n.prev
		}
	} else {
		if index >= l.len {
			return nil
		}
		n = l.head
		for ; index > 0 && n != nil; index-- {
			n = n.next
		}
	}
	return n
}

// Dup returns a copy of the list with the same hooks. Values go through the
// dup hook when set; otherwise both lists share them. If the hook fails the
// partial copy is released and a *DupError is returned.
func (l *List[T]) Dup() (*List[T], error) {
	cp := CreateWithType(&Type[T]{Dup: l.dup, Free: l.free, Match: l.match})

	iter := l.GetIterator(StartHead)
	defer iter.Release()

	i := 0
	for node := iter.Next(); node != nil; node = iter.Next() {
		value := node.value
		if cp.dup != nil {
			var err error
			value, err = cp.dup(node.value)
			if err != nil {
				cp.Release()
				return nil, &DupError{Index: i, Err: err}
			}
		}
		cp.AddNodeTail(value)
		i++
	}
	return cp, nil
}

// Rotate moves the tail node to the head.
func (l *List[T]) Rotate() {
	if l.len <= 1 {
		return
	}

	tail := l.tail
	l.tail = tail.prev
	l.tail.next = nil

	l.head.prev = tail
	tail.prev = nil
	tail.next = l.head
	l.head = tail
}

// RotateHeadToTail moves the head node to the tail.
func (l *List[T]) RotateHeadToTail() {
	if l.len <= 1 {
		return
	}

	head := l.head
	l.head = head.next
	l.head.prev = nil

	l.tail.next = head
	head.next = nil
	head.prev = l.tail
	l.tail = head
}

// Join appends all the nodes of o to l and leaves o empty. The nodes are
// moved, not copied, so no hook is called. l and o must be different lists.
func (l *List[T]) Join(o *List[T]) {
	if l == o {
		assert(false, "Join: a list cannot be joined with itself")
		return
	}
	if o.len == 0 {
		return
	}

	l.lazyInit()
	if l.tail != nil {
		l.tail.next = o.head
		o.head.prev = l.tail
	} else {
		l.head = o.head
	}
	l.tail = o.tail
	l.len += o.len

	// hand o's nodes over to l and give o a fresh identity
	o.own.next = l.own
	o.own = new(owner)
	o.head = nil
	o.tail = nil
	o.len = 0
}
