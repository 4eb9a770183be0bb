// Package linkedlist implements a doubly linked list whose items live in an
// arena.Arena instead of individually allocated nodes.
//
// Items are addressed by ItemID, a generation-checked arena key: an id held
// after its item is removed never resolves to a newer item, even when the
// storage slot is reused. Links are ids too, so the list has no pointer
// cycles and copies cheaply (Clone).
//
// Complexity:
//
//	PushBack, PushFront, PopBack, PopFront   O(1) amortized
//	InsertAfter, InsertBefore, Remove        O(1) amortized
//	Get, GetMut, NextOf, PrevOf, Head, Tail  O(1)
//	Extend, ExtendFront                      O(k)
//	Forward, Backward, Values, RetainFunc    O(n)
//	Clone                                    O(capacity)
//
// The zero List is empty and ready to use.
package linkedlist
