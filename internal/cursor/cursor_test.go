package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/maaray/internal/cursor"
)

func TestSetPositionThenPeek(t *testing.T) {
	items := []string{"a", "b", "c"}

	for i := range items {
		c := cursor.New(items)
		c.SetPosition(i)
		got, ok := c.Peek()
		require.True(t, ok, "peek at %d", i)
		assert.Equal(t, items[i], got)
		assert.Equal(t, i, c.Position())
	}

	c := cursor.New(items)
	c.SetPosition(len(items))
	_, ok := c.Peek()
	assert.False(t, ok, "peek at length")
	assert.True(t, c.AtEnd())
}

func TestSetPositionClamps(t *testing.T) {
	c := cursor.New([]int{1, 2, 3})

	c.SetPosition(-5)
	assert.Equal(t, 0, c.Position())

	c.SetPosition(100)
	assert.Equal(t, 3, c.Position())
	assert.True(t, c.AtEnd())
}

func TestAdvanceExhausts(t *testing.T) {
	items := []int{10, 20, 30, 40}
	c := cursor.New(items)

	for i, want := range items {
		require.False(t, c.AtEnd(), "at end before advance %d", i)
		got, ok := c.Advance()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	assert.True(t, c.AtEnd())
	_, ok := c.Advance()
	assert.False(t, ok, "advance past end")
	assert.Equal(t, len(items), c.Position(), "position moved past end")
}

func TestRetreat(t *testing.T) {
	c := cursor.New([]rune("xyz"))

	_, ok := c.Retreat()
	assert.False(t, ok, "retreat at start")
	assert.Equal(t, 0, c.Position())

	c.Advance()
	c.Advance()
	got, ok := c.Retreat()
	require.True(t, ok)
	assert.Equal(t, 'y', got)
	assert.Equal(t, 1, c.Position())

	// Retreat undoes Advance exactly.
	adv, _ := c.Advance()
	back, _ := c.Retreat()
	assert.Equal(t, adv, back)
}

func TestEmpty(t *testing.T) {
	c := cursor.New[int](nil)

	assert.True(t, c.AtEnd())
	assert.Equal(t, 0, c.Len())
	_, ok := c.Peek()
	assert.False(t, ok)
	_, ok = c.Advance()
	assert.False(t, ok)
	_, ok = c.Retreat()
	assert.False(t, ok)
	_, ok = c.Last()
	assert.False(t, ok)
}

func TestBookmarkRestore(t *testing.T) {
	c := cursor.New([]string{"let", "x", "=", "1"})

	mark := c.Position()
	c.Advance()
	c.Advance()
	c.SetPosition(mark)

	got, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, "let", got)

	last, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, "1", last)
}
