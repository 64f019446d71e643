package analytics

// Bin is one bucket of a histogram: the half-open range [Low, High)
// and the number of values falling in it. The last bin is closed so
// the maximum value is counted.
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// Histogram partitions [min(values), max(values)] into binCount
// equal-width buckets and counts the values per bucket. Empty input
// or a non-positive binCount yields nil. When all values are equal
// the result collapses to a single zero-width bucket holding
// everything.
func Histogram(values []float64, binCount int) []Bin {
	if len(values) == 0 || binCount <= 0 {
		return nil
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	width := (max - min) / float64(binCount)
	if width == 0 {
		return []Bin{{Low: min, High: max, Count: len(values)}}
	}

	bins := make([]Bin, binCount)
	for i := range bins {
		bins[i].Low = min + width*float64(i)
		bins[i].High = min + width*float64(i+1)
	}
	// keep the top boundary exact despite float accumulation
	bins[binCount-1].High = max

	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= binCount {
			idx = binCount - 1
		}
		bins[idx].Count++
	}
	return bins
}
