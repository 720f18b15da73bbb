package serviceImp

import "growbro/pkg/measure/service"

// downsampleLTTB is Largest-Triangle-Three-Buckets: first and last
// points always survive, interior points are bucketed and the point
// forming the largest triangle with the previous pick and the next
// bucket's average wins.
func downsampleLTTB(data []service.ChartPoint, threshold int) []service.ChartPoint {
	if threshold <= 2 || len(data) <= threshold {
		return data
	}

	sampled := make([]service.ChartPoint, 0, threshold)
	sampled = append(sampled, data[0])

	// bucket size for the interior points
	every := float64(len(data)-2) / float64(threshold-2)
	a := 0

	for i := 0; i < threshold-2; i++ {
		rangeStart := int(float64(i)*every) + 1
		rangeEnd := int(float64(i+1)*every) + 1
		if rangeEnd >= len(data) {
			rangeEnd = len(data) - 1
		}

		// average of the next bucket
		avgStart := int(float64(i+1)*every) + 1
		avgEnd := int(float64(i+2)*every) + 1
		if avgEnd >= len(data) {
			avgEnd = len(data)
		}
		var avgX, avgY float64
		n := avgEnd - avgStart
		if n < 1 {
			avgStart = len(data) - 1
			avgEnd = len(data)
			n = 1
		}
		for _, p := range data[avgStart:avgEnd] {
			avgX += float64(p.MeasuredAt.UnixMilli())
			avgY += p.Value
		}
		avgX /= float64(n)
		avgY /= float64(n)

		ax := float64(data[a].MeasuredAt.UnixMilli())
		ay := data[a].Value

		maxArea := -1.0
		pick := rangeStart
		for j := rangeStart; j < rangeEnd; j++ {
			px := float64(data[j].MeasuredAt.UnixMilli())
			py := data[j].Value
			area := abs((ax-avgX)*(py-ay) - (ax-px)*(avgY-ay))
			if area > maxArea {
				maxArea = area
				pick = j
			}
		}

		sampled = append(sampled, data[pick])
		a = pick
	}

	sampled = append(sampled, data[len(data)-1])
	return sampled
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
