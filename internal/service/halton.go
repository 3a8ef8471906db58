package service

// radicalInverse computes the base-2 van der Corput radical inverse of i:
// the bits of i mirrored across the radix point. Successive indices fill
// (0,1) far more evenly than pseudo-random draws, which is what tightens the
// Monte Carlo error for a fixed sample count.
func radicalInverse(i uint64) float64 {
	var v float64
	f := 0.5
	for i > 0 {
		if i&1 == 1 {
			v += f
		}
		f /= 2
		i >>= 1
	}
	return v
}

// haltonSequence returns n base-2 low-discrepancy uniforms starting at index
// offset+1. Starting past index zero keeps 0.0 out of the sequence, and a
// per-invocation random offset decorrelates repeated runs.
func haltonSequence(n, offset int) []float64 {
	seq := make([]float64, n)
	for i := range seq {
		seq[i] = radicalInverse(uint64(offset + i + 1))
	}
	return seq
}
