package series

// DefaultBuckets is the number of color buckets a value maps into.
const DefaultBuckets = 10

// Quantize maps a continuous value domain onto a fixed number of
// discrete buckets, the way quantized color scales work: the domain
// [Min, Max] is split into Buckets equal slices and a value's bucket is
// the slice it falls into. Values outside the domain clamp to the first
// or last bucket.
type Quantize struct {
	Min     float64
	Max     float64
	Buckets int
}

// NewQuantize returns a ten-bucket scale over [min, max]. A reversed
// domain is normalized.
func NewQuantize(min, max float64) Quantize {
	if max < min {
		min, max = max, min
	}
	return Quantize{Min: min, Max: max, Buckets: DefaultBuckets}
}

// Bucket returns the bucket index for v in [0, Buckets-1]. A degenerate
// domain (Min == Max) maps everything to the last bucket.
func (q Quantize) Bucket(v float64) int {
	n := q.Buckets
	if n <= 0 {
		n = DefaultBuckets
	}
	if q.Max <= q.Min {
		return n - 1
	}
	if v <= q.Min {
		return 0
	}
	if v >= q.Max {
		return n - 1
	}
	b := int((v - q.Min) / (q.Max - q.Min) * float64(n))
	if b > n-1 {
		b = n - 1
	}
	return b
}
