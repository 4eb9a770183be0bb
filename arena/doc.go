// SPDX-License-Identifier: MIT

// Package arena provides a generation-checked slot arena: a dense slice of
// reusable slots addressed by opaque Keys.
//
// What:
//
//   - Insert / InsertWithKey store a value and return a fresh Key (amortized O(1)).
//   - Get / GetMut / Contains resolve a Key in O(1).
//   - Remove frees the slot in O(1) and pushes it on an intrusive free list.
//   - Keys / All iterate live entries in ascending slot order.
//
// Why:
//
// A Key packs the slot index together with the slot's generation. Every time a
// slot is freed its generation is bumped, so a Key held across a Remove can
// never resolve to whatever value later reuses that slot (the ABA problem).
// Stale, null and out-of-range keys simply report "absent"; no lookup panics.
//
// Generations:
//
//	odd  generation → slot occupied
//	even generation → slot vacant
//
// A slot whose generation would overflow is retired instead of being reused.
//
// Complexity:
//
//   - Insert, Get, GetMut, Remove, Contains, Len: O(1) (Insert amortized)
//   - Keys, All, Clear: O(capacity)
//
// Pointers returned by GetMut and All point into the slot slice; they remain
// valid until the next insertion that grows the arena. Store pointer types as
// V when stable addresses are needed.
package arena
