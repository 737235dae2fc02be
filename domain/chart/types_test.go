package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescription_Pie(t *testing.T) {
	d := NewPie("Sites")
	assert.True(t, d.IsEmpty())
	assert.Equal(t, KindPie, d.Kind)

	d.AddSlice("A", 2)
	d.AddSlice("B", 3)

	assert.False(t, d.IsEmpty())
	assert.Equal(t, 5.0, d.Total())
	assert.Equal(t, map[string]float64{"A": 2, "B": 3}, d.SliceValues())
}

func TestDescription_ScatterCategories(t *testing.T) {
	d := NewScatter("Payload")
	d.AddPoint(1, 0, "v1.1")
	d.AddPoint(2, 1, "FT")
	d.AddPoint(3, 1, "v1.1")

	assert.Equal(t, KindScatter, d.Kind)
	assert.Len(t, d.Points, 3)
	assert.Equal(t, []string{"v1.1", "FT"}, d.Categories())
	assert.Zero(t, d.Total())
}
