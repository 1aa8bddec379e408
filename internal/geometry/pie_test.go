package geometry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPie(t *testing.T) {
	square := Viewport{Width: 300, Height: 300, Padding: 50}

	tbl := []struct {
		values   []float64
		angles   [][2]float64
		largeArc []bool
	}{
		{
			values:   []float64{1, 1, 2},
			angles:   [][2]float64{{-90, 0}, {0, 90}, {90, 270}},
			largeArc: []bool{false, false, false},
		},
		{
			values:   []float64{-3, 1},
			angles:   [][2]float64{{-90, 180}, {180, 270}},
			largeArc: []bool{true, false},
		},
		{
			values:   []float64{5},
			angles:   [][2]float64{{-90, 270}},
			largeArc: []bool{true},
		},
	}

	for i, tc := range tbl {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			l, ok := Pie(tc.values, square)
			require.True(t, ok)
			require.Len(t, l.Slices, len(tc.values))

			for j, s := range l.Slices {
				assert.InDelta(t, tc.angles[j][0], s.StartAngle, 1e-9)
				assert.InDelta(t, tc.angles[j][1], s.EndAngle, 1e-9)
				assert.Equal(t, tc.largeArc[j], s.LargeArc)
			}
		})
	}
}

func TestPieCoordinates(t *testing.T) {
	l, ok := Pie([]float64{1, 1, 2}, Viewport{Width: 300, Height: 300, Padding: 50})
	require.True(t, ok)

	assert.Equal(t, Point{150, 150}, l.Center)
	assert.Equal(t, 100.0, l.Radius)
	assert.Equal(t, 4.0, l.Total)

	assert.InDelta(t, 150.0, l.Slices[0].Start.X, 1e-9)
	assert.InDelta(t, 50.0, l.Slices[0].Start.Y, 1e-9)
	assert.InDelta(t, 250.0, l.Slices[0].End.X, 1e-9)
	assert.InDelta(t, 150.0, l.Slices[0].End.Y, 1e-9)
	assert.InDelta(t, 0.5, l.Slices[2].Fraction, 1e-9)
}

func TestPieEmpty(t *testing.T) {
	_, ok := Pie(nil, vp)
	assert.False(t, ok)

	_, ok = Pie([]float64{0, 0}, vp)
	assert.False(t, ok)
}
