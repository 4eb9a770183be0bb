// SPDX-License-Identifier: MIT

package arena

import (
	"errors"
	"fmt"
)

// Sentinel errors for key restoration.
var (
	// ErrNullKey indicates a restore received the null key or a key whose
	// generation parity does not match the requested slot state.
	ErrNullKey = errors.New("arena: null key or wrong generation parity")

	// ErrOccupied indicates a restore targeted a slot that already holds a value.
	ErrOccupied = errors.New("arena: slot already occupied")

	// ErrStaleKey indicates a restore received a key older than the slot's current generation.
	ErrStaleKey = errors.New("arena: key generation is stale")

	// ErrIndexRange indicates a restore named a slot index the arena cannot hold.
	ErrIndexRange = errors.New("arena: slot index out of range")
)

// Key identifies one logical insertion into an Arena.
//
// The zero Key is the null key: it never resolves. Keys are comparable and can
// be used as map keys.
type Key struct {
	index      uint32
	generation uint32
}

// KeyFromUint64 rebuilds a Key from its packed form (see Key.Uint64).
func KeyFromUint64(v uint64) Key {
	return Key{index: uint32(v), generation: uint32(v >> 32)}
}

// Index returns the slot position named by k.
func (k Key) Index() uint32 { return k.index }

// Generation returns the slot generation captured in k.
func (k Key) Generation() uint32 { return k.generation }

// IsNull reports whether k is the null key.
func (k Key) IsNull() bool { return k.generation == 0 }

// Uint64 packs k into an opaque integer: generation in the high 32 bits,
// slot index in the low 32 bits.
func (k Key) Uint64() uint64 {
	return uint64(k.generation)<<32 | uint64(k.index)
}

// Compare orders keys by generation, then by slot index.
// Returns -1, 0 or +1.
func (k Key) Compare(other Key) int {
	switch {
	case k.generation < other.generation:
		return -1
	case k.generation > other.generation:
		return 1
	case k.index < other.index:
		return -1
	case k.index > other.index:
		return 1
	}

	return 0
}

// String renders k as "<index>v<generation>", or "null".
func (k Key) String() string {
	if k.IsNull() {
		return "null"
	}

	return fmt.Sprintf("%dv%d", k.index, k.generation)
}

// occupied reports whether a generation marks a live slot.
func occupied(generation uint32) bool { return generation&1 == 1 }
