package linkedlist

import (
	"errors"
	"fmt"
	"iter"

	"github.com/henke443/fast-graph/arena"
)

// ErrItemNotFound indicates an absent or stale ItemID.
var ErrItemNotFound = errors.New("linkedlist: item not found")

// ItemID identifies a list item. The zero ItemID is nil.
type ItemID struct{ key arena.Key }

// IsNil reports whether id is the nil ItemID.
func (id ItemID) IsNil() bool { return id.key.IsNull() }

func (id ItemID) String() string { return "ItemID(" + id.key.String() + ")" }

type item[T any] struct {
	value      T
	prev, next ItemID
}

// List is a doubly linked list of T.
type List[T any] struct {
	items      arena.Arena[item[T]]
	head, tail ItemID
}

// New returns an empty List.
func New[T any]() *List[T] { return &List[T]{} }

// Len returns the number of items.
func (l *List[T]) Len() int { return l.items.Len() }

// Head returns the first item, if any.
func (l *List[T]) Head() (ItemID, bool) { return l.head, !l.head.IsNil() }

// Tail returns the last item, if any.
func (l *List[T]) Tail() (ItemID, bool) { return l.tail, !l.tail.IsNil() }

func (l *List[T]) at(id ItemID) *item[T] {
	p, ok := l.items.GetMut(id.key)
	if !ok {
		return nil
	}

	return p
}

func (l *List[T]) insert(v T, prev, next ItemID) ItemID {
	id := ItemID{key: l.items.Insert(item[T]{value: v, prev: prev, next: next})}
	if p := l.at(prev); p != nil {
		p.next = id
	} else {
		l.head = id
	}
	if n := l.at(next); n != nil {
		n.prev = id
	} else {
		l.tail = id
	}

	return id
}

// PushBack appends v and returns its id.
func (l *List[T]) PushBack(v T) ItemID { return l.insert(v, l.tail, ItemID{}) }

// PushFront prepends v and returns its id.
func (l *List[T]) PushFront(v T) ItemID { return l.insert(v, ItemID{}, l.head) }

// InsertAfter places v right after id.
func (l *List[T]) InsertAfter(id ItemID, v T) (ItemID, error) {
	it := l.at(id)
	if it == nil {
		return ItemID{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}

	return l.insert(v, id, it.next), nil
}

// InsertBefore places v right before id.
func (l *List[T]) InsertBefore(id ItemID, v T) (ItemID, error) {
	it := l.at(id)
	if it == nil {
		return ItemID{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}

	return l.insert(v, it.prev, id), nil
}

// Remove unlinks id and returns its value.
func (l *List[T]) Remove(id ItemID) (T, error) {
	it, ok := l.items.Remove(id.key)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if p := l.at(it.prev); p != nil {
		p.next = it.next
	} else {
		l.head = it.next
	}
	if n := l.at(it.next); n != nil {
		n.prev = it.prev
	} else {
		l.tail = it.prev
	}

	return it.value, nil
}

// PopBack removes and returns the last value.
func (l *List[T]) PopBack() (T, bool) {
	v, err := l.Remove(l.tail)

	return v, err == nil
}

// PopFront removes and returns the first value.
func (l *List[T]) PopFront() (T, bool) {
	v, err := l.Remove(l.head)

	return v, err == nil
}

// Get returns the value stored under id.
func (l *List[T]) Get(id ItemID) (T, bool) {
	it := l.at(id)
	if it == nil {
		var zero T
		return zero, false
	}

	return it.value, true
}

// GetMut returns a pointer to the value stored under id. The pointer is
// valid until the next insertion into the list.
func (l *List[T]) GetMut(id ItemID) (*T, bool) {
	it := l.at(id)
	if it == nil {
		return nil, false
	}

	return &it.value, true
}

// NextOf returns the item after id.
func (l *List[T]) NextOf(id ItemID) (ItemID, bool) {
	it := l.at(id)
	if it == nil || it.next.IsNil() {
		return ItemID{}, false
	}

	return it.next, true
}

// PrevOf returns the item before id.
func (l *List[T]) PrevOf(id ItemID) (ItemID, bool) {
	it := l.at(id)
	if it == nil || it.prev.IsNil() {
		return ItemID{}, false
	}

	return it.prev, true
}

// Extend appends values in order and returns their ids.
func (l *List[T]) Extend(values []T) []ItemID {
	ids := make([]ItemID, 0, len(values))
	for _, v := range values {
		ids = append(ids, l.PushBack(v))
	}

	return ids
}

// ExtendFront pushes each value to the front in turn, so the last value ends
// up first. Ids are returned in push order.
func (l *List[T]) ExtendFront(values []T) []ItemID {
	ids := make([]ItemID, 0, len(values))
	for _, v := range values {
		ids = append(ids, l.PushFront(v))
	}

	return ids
}

// Forward iterates from start towards the tail. A stale start yields nothing.
func (l *List[T]) Forward(start ItemID) iter.Seq2[ItemID, T] {
	return l.walk(start, func(it *item[T]) ItemID { return it.next })
}

// Backward iterates from start towards the head.
func (l *List[T]) Backward(start ItemID) iter.Seq2[ItemID, T] {
	return l.walk(start, func(it *item[T]) ItemID { return it.prev })
}

func (l *List[T]) walk(start ItemID, step func(*item[T]) ItemID) iter.Seq2[ItemID, T] {
	return func(yield func(ItemID, T) bool) {
		for id := start; ; {
			it := l.at(id)
			if it == nil {
				return
			}
			next := step(it)
			if !yield(id, it.value) {
				return
			}
			id = next
		}
	}
}

// Values iterates over every value from head to tail.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.Forward(l.head) {
			if !yield(v) {
				return
			}
		}
	}
}

// RetainFunc removes, in place, every item for which keep returns false.
func (l *List[T]) RetainFunc(keep func(T) bool) {
	for id := l.head; !id.IsNil(); {
		it := l.at(id)
		next := it.next
		if !keep(it.value) {
			_, _ = l.Remove(id)
		}
		id = next
	}
}

// Clone returns an independent copy in which every id of l resolves to the
// same position and value. Values are copied shallowly.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{
		items: *l.items.Clone(),
		head:  l.head,
		tail:  l.tail,
	}
}
