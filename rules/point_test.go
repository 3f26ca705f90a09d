package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoint_Clamp(t *testing.T) {
	tests := []struct {
		In       Point
		Expected Point
	}{
		{In: Point{X: 5, Y: 5}, Expected: Point{X: 5, Y: 5}},
		{In: Point{X: -1, Y: 5}, Expected: Point{X: 0, Y: 5}},
		{In: Point{X: 20, Y: 5}, Expected: Point{X: 19, Y: 5}},
		{In: Point{X: 5, Y: -1}, Expected: Point{X: 5, Y: 0}},
		{In: Point{X: 5, Y: 20}, Expected: Point{X: 5, Y: 19}},
		{In: Point{X: -3, Y: 42}, Expected: Point{X: 0, Y: 19}},
	}

	for _, test := range tests {
		require.Equal(t, test.Expected, test.In.Clamp(20, 20), "In: %s", test.In)
	}
}

func TestPoint_ClampIdempotent(t *testing.T) {
	for x := 0; x < 15; x++ {
		for y := 0; y < 10; y++ {
			p := Point{X: x, Y: y}
			require.True(t, p.In(15, 10))
			require.Equal(t, p, p.Clamp(15, 10))
			require.Equal(t, p.Clamp(15, 10), p.Clamp(15, 10).Clamp(15, 10))
		}
	}
}

func TestPoint_In(t *testing.T) {
	require.True(t, Point{X: 0, Y: 0}.In(20, 20))
	require.True(t, Point{X: 19, Y: 19}.In(20, 20))
	require.False(t, Point{X: 20, Y: 1}.In(20, 20))
	require.False(t, Point{X: 1, Y: -1}.In(20, 20))
}

func TestPoint_String(t *testing.T) {
	require.Equal(t, "(3, 4)", Point{X: 3, Y: 4}.String())
}
