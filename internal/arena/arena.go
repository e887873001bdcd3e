// Package arena stores values in reusable slots addressed by generational
// handles.
//
// A Handle names a slot together with the generation the slot had when the
// value was inserted. Removing a value bumps the slot's generation, so any
// handle still referring to the old value stops resolving instead of
// aliasing whatever is stored in the slot next. The zero Handle never
// resolves.
//
// An Arena is not safe for concurrent use.
package arena

import (
	"fmt"
	"iter"
)

// Handle identifies a value stored in an Arena.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool { return h.gen == 0 }

func (h Handle) String() string {
	if h.IsZero() {
		return "none"
	}
	return fmt.Sprintf("%d#%d", h.index, h.gen)
}

type slot[T any] struct {
	gen  uint32
	live bool
	val  T
}

// Arena is a slot allocator for values of type T.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	n     int
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots)) //nolint:gosec // G115: slot count bounded by memory
		a.slots = append(a.slots, slot[T]{})
	}
	s := &a.slots[idx]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.live = true
	s.val = v
	a.n++
	return Handle{index: idx, gen: s.gen}
}

// Get returns the value for h and whether h is live.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	if s := a.lookup(h); s != nil {
		return s.val, true
	}
	var zero T
	return zero, false
}

// Contains reports whether h refers to a live value.
func (a *Arena[T]) Contains(h Handle) bool {
	return a.lookup(h) != nil
}

// Remove deletes the value for h. It reports false if h was not live.
func (a *Arena[T]) Remove(h Handle) bool {
	s := a.lookup(h)
	if s == nil {
		return false
	}
	var zero T
	s.val = zero
	s.live = false
	a.free = append(a.free, h.index)
	a.n--
	return true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int { return a.n }

// All iterates over live handles and values in slot order.
func (a *Arena[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.live {
				continue
			}
			if !yield(Handle{index: uint32(i), gen: s.gen}, s.val) { //nolint:gosec // G115: i < len(slots)
				return
			}
		}
	}
}

func (a *Arena[T]) lookup(h Handle) *slot[T] {
	if h.IsZero() || int(h.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil
	}
	return s
}
