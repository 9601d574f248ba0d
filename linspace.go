package spiro

// Linspace returns count+1 evenly spaced values over [lower, upper],
// including both ends: lower + (upper−lower)·i/count for i = 0…count.
//
// A count of zero yields the single value lower.
func Linspace(lower, upper float64, count int) []float64 {
	if count <= 0 {
		return []float64{lower}
	}
	out := make([]float64, count+1)
	for i := range out {
		out[i] = lower + (upper-lower)*float64(i)/float64(count)
	}
	return out
}
