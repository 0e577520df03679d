package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFillsEveryCell(t *testing.T) {
	g := New(3, 4, 7)

	require.Equal(t, 3, g.Width())
	require.Equal(t, 4, g.Height())
	g.ForEach(func(x, y, v int) {
		assert.Equal(t, 7, v, "cell (%d,%d)", x, y)
	})
}

func TestExists(t *testing.T) {
	g := New(5, 5, 0)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"origin", 0, 0, true},
		{"far corner", 4, 4, true},
		{"past far corner", 5, 5, false},
		{"negative x", -1, 0, false},
		{"negative y", 0, -1, false},
		{"x at width", 5, 0, false},
		{"y at height", 0, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Exists(tc.x, tc.y))
		})
	}
}

func TestGetSet(t *testing.T) {
	g := New(4, 2, false)
	g.Set(3, 1, true)

	assert.True(t, g.Get(3, 1))
	assert.False(t, g.Get(1, 1))
	assert.False(t, g.Get(0, 0))
}

func TestOutOfRangePanics(t *testing.T) {
	g := New(2, 2, 0)

	assert.Panics(t, func() { g.Get(2, 0) })
	assert.Panics(t, func() { g.Set(0, -1, 1) })
	assert.Panics(t, func() { New(-1, 2, 0) })
}

func TestForEachOrder(t *testing.T) {
	g := New(2, 3, 0)

	var visited [][2]int
	g.ForEach(func(x, y, _ int) {
		visited = append(visited, [2]int{x, y})
	})

	want := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	assert.Equal(t, want, visited)
}

func TestCloneIsIndependent(t *testing.T) {
	g := New(2, 2, "a")
	c := g.Clone()
	c.Set(1, 1, "b")

	assert.Equal(t, "a", g.Get(1, 1))
	assert.Equal(t, "b", c.Get(1, 1))
}

func TestFill(t *testing.T) {
	g := New(3, 3, 1)
	g.Fill(9)

	g.ForEach(func(_, _ int, v int) {
		assert.Equal(t, 9, v)
	})
}
