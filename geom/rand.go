package geom

// Rand is a xorshift64 generator for cheap, reproducible point placement.
// It is not cryptographic and not safe for concurrent use; give each
// goroutine its own instance.
type Rand struct {
	state uint64
}

// NewRand seeds a generator. A zero seed is replaced with a fixed nonzero
// state, since xorshift has an all-zero fixed point.
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed}
}

// Next returns the next raw 64-bit value.
func (r *Rand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n). Non-positive n yields 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Range returns a value in [lo, hi). A degenerate range collapses to lo.
func (r *Rand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}
