package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func norm(vec []float32) float64 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

func TestNormalizeVectorUnitLength(t *testing.T) {
	tests := []struct {
		name string
		in   []float32
	}{
		{"already normalized", []float32{1, 0, 0}},
		{"arbitrary", []float32{3, 4}},
		{"small magnitudes", []float32{0.001, 0.002, 0.003}},
		{"negative components", []float32{-2, 5, -7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeVector(tt.in)
			assert.Len(t, got, len(tt.in))
			assert.InDelta(t, 1.0, norm(got), 1e-6)
		})
	}
}

func TestNormalizeVectorZero(t *testing.T) {
	got := NormalizeVector([]float32{0, 0, 0})
	assert.Equal(t, []float32{0, 0, 0}, got)
}

func TestNormalizeVectorDeterministic(t *testing.T) {
	in := []float32{0.3, -1.2, 4.5, 0.07}
	a := NormalizeVector(in)
	b := NormalizeVector(in)
	for i := range a {
		assert.InDelta(t, a[i], b[i], 1e-6)
	}
}
