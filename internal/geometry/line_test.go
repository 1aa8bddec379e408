package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	l, ok := Lines([][]float64{{0, 50, 100}, {-100, 0}}, vp)
	require.True(t, ok)

	assert.Equal(t, -100.0, l.DomainMin)
	assert.Equal(t, 100.0, l.DomainMax)
	assert.True(t, l.HasBaseline)
	require.Len(t, l.Series, 2)

	assert.Equal(t, []Point{{50, 150}, {400, 100}, {750, 50}}, l.Series[0])
	assert.Equal(t, []Point{{50, 250}, {400, 150}}, l.Series[1])
}

func TestLinesSharedDomainMatchesSingleLine(t *testing.T) {
	values := []float64{3, -2, 7, 1}

	single, ok := Line(values, vp)
	require.True(t, ok)
	multi, ok := Lines([][]float64{values}, vp)
	require.True(t, ok)

	assert.Equal(t, single.Geometry, multi.Geometry)
	assert.Equal(t, single.Points, multi.Series[0])
}

func TestLinesEmpty(t *testing.T) {
	_, ok := Lines(nil, vp)
	assert.False(t, ok)

	_, ok = Lines([][]float64{{}, {}}, vp)
	assert.False(t, ok)

	l, ok := Lines([][]float64{{}, {5}}, vp)
	require.True(t, ok)
	assert.Empty(t, l.Series[0])
	assert.Equal(t, []Point{{400, 50}}, l.Series[1])
}
