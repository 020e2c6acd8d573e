// Package cursor provides a backtrackable, position-tracking view over a
// fixed slice. The parser uses it as its only lookahead and rewind mechanism.
package cursor

// Cursor is a mutable position over an immutable sequence of T.
// The position is always within [0, Len()].
type Cursor[T any] struct {
	items []T
	pos   int
}

// New returns a Cursor positioned at the first element of items.
// The cursor never modifies items.
func New[T any](items []T) *Cursor[T] {
	return &Cursor[T]{items: items}
}

// Peek returns the element at the current position without moving.
func (c *Cursor[T]) Peek() (T, bool) {
	if c.pos >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[c.pos], true
}

// Advance returns the element at the current position and steps past it.
// At the end it returns false and leaves the position unchanged.
func (c *Cursor[T]) Advance() (T, bool) {
	if c.pos >= len(c.items) {
		var zero T
		return zero, false
	}
	item := c.items[c.pos]
	c.pos++
	return item, true
}

// Retreat undoes one Advance and returns the element now under the cursor.
// At position 0 it returns false and does not move.
func (c *Cursor[T]) Retreat() (T, bool) {
	if c.pos == 0 {
		var zero T
		return zero, false
	}
	c.pos--
	return c.items[c.pos], true
}

// Position returns the current position.
func (c *Cursor[T]) Position() int {
	return c.pos
}

// SetPosition moves the cursor to pos, clamped to [0, Len()].
func (c *Cursor[T]) SetPosition(pos int) {
	c.pos = max(0, min(pos, len(c.items)))
}

// AtEnd reports whether every element has been consumed.
func (c *Cursor[T]) AtEnd() bool {
	return c.pos >= len(c.items)
}

// Len returns the length of the underlying sequence.
func (c *Cursor[T]) Len() int {
	return len(c.items)
}

// Last returns the final element of the sequence, if any. Used to position
// end-of-input diagnostics.
func (c *Cursor[T]) Last() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	return c.items[len(c.items)-1], true
}
