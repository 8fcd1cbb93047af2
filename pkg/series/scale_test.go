package series

import "testing"

func TestQuantizeBucket(t *testing.T) {
	q := NewQuantize(0, 100)

	tests := []struct {
		name string
		v    float64
		want int
	}{
		{"AtMin", 0, 0},
		{"BelowMin", -5, 0},
		{"FirstBucket", 9.9, 0},
		{"SecondBucket", 10, 1},
		{"Middle", 55, 5},
		{"LastBucket", 99.9, 9},
		{"AtMax", 100, 9},
		{"AboveMax", 250, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := q.Bucket(tt.v); got != tt.want {
				t.Errorf("Bucket(%v) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestQuantizeNegativeDomain(t *testing.T) {
	// A symmetric domain around zero, like a daily-change series.
	q := NewQuantize(-0.05, 0.05)
	if got := q.Bucket(-0.05); got != 0 {
		t.Errorf("Bucket(-0.05) = %d, want 0", got)
	}
	if got := q.Bucket(0.049); got != 9 {
		t.Errorf("Bucket(0.049) = %d, want 9", got)
	}
	if got := q.Bucket(0); got != 5 {
		t.Errorf("Bucket(0) = %d, want 5", got)
	}
}

func TestQuantizeReversedDomain(t *testing.T) {
	q := NewQuantize(10, -10)
	if q.Min != -10 || q.Max != 10 {
		t.Errorf("domain not normalized: [%v, %v]", q.Min, q.Max)
	}
}

func TestQuantizeDegenerateDomain(t *testing.T) {
	q := NewQuantize(3, 3)
	if got := q.Bucket(3); got != DefaultBuckets-1 {
		t.Errorf("Bucket(3) = %d, want %d", got, DefaultBuckets-1)
	}
}

func TestQuantizeBucketRange(t *testing.T) {
	q := NewQuantize(-1, 1)
	for v := -2.0; v <= 2.0; v += 0.01 {
		b := q.Bucket(v)
		if b < 0 || b >= DefaultBuckets {
			t.Fatalf("Bucket(%v) = %d out of range", v, b)
		}
	}
}
