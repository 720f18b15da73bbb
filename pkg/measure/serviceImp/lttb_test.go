package serviceImp

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growbro/pkg/measure/service"
)

func points(n int, f func(i int) float64) []service.ChartPoint {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	out := make([]service.ChartPoint, n)
	for i := range out {
		out[i] = service.ChartPoint{MeasuredAt: base.Add(time.Duration(i) * time.Hour), Value: f(i)}
	}
	return out
}

func TestLTTBPassthroughWhenSmall(t *testing.T) {
	data := points(10, func(i int) float64 { return float64(i) })
	assert.Len(t, downsampleLTTB(data, 10), 10)
	assert.Len(t, downsampleLTTB(data, 50), 10)
	assert.Len(t, downsampleLTTB(data, 0), 10)
}

func TestLTTBKeepsEndpointsAndSize(t *testing.T) {
	data := points(1000, func(i int) float64 { return math.Sin(float64(i) / 20) })
	out := downsampleLTTB(data, 100)
	require.Len(t, out, 100)
	assert.Equal(t, data[0], out[0])
	assert.Equal(t, data[len(data)-1], out[len(out)-1])

	// output stays in time order
	for i := 1; i < len(out); i++ {
		assert.True(t, out[i-1].MeasuredAt.Before(out[i].MeasuredAt))
	}
}

func TestLTTBKeepsSpike(t *testing.T) {
	data := points(500, func(i int) float64 {
		if i == 250 {
			return 99 // pH probe glitch must survive downsampling
		}
		return 6.2
	})
	out := downsampleLTTB(data, 50)
	found := false
	for _, p := range out {
		if p.Value == 99 {
			found = true
		}
	}
	assert.True(t, found)
}
