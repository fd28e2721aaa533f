package dataset

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// MT19937 is the Mersenne Twister seeded the way numpy's legacy
// RandomState(seed) seeds it for integer seeds, so permutations drawn from
// it reproduce the splits the model was trained and tested with.
type MT19937 struct {
	mt  [mtN]uint32
	idx int
}

func NewMT19937(seed uint32) *MT19937 {
	m := &MT19937{}
	m.mt[0] = seed
	for i := 1; i < mtN; i++ {
		prev := m.mt[i-1]
		m.mt[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	m.idx = mtN
	return m
}

func (m *MT19937) twist() {
	for i := 0; i < mtN; i++ {
		y := (m.mt[i] & mtUpperMask) | (m.mt[(i+1)%mtN] & mtLowerMask)
		next := m.mt[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		m.mt[i] = next
	}
	m.idx = 0
}

func (m *MT19937) Uint32() uint32 {
	if m.idx >= mtN {
		m.twist()
	}
	y := m.mt[m.idx]
	m.idx++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Float64 matches numpy's random_sample: 53 bits from two draws.
func (m *MT19937) Float64() float64 {
	a := m.Uint32() >> 5
	b := m.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) / 9007199254740992.0
}

// Interval returns a uniform value in [0, max] by masked rejection.
func (m *MT19937) Interval(max uint32) uint32 {
	if max == 0 {
		return 0
	}
	mask := max
	mask |= mask >> 1
	mask |= mask >> 2
	mask |= mask >> 4
	mask |= mask >> 8
	mask |= mask >> 16
	for {
		if v := m.Uint32() & mask; v <= max {
			return v
		}
	}
}

// Permutation shuffles 0..n-1 back to front, as RandomState.permutation does.
func (m *MT19937) Permutation(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i >= 1; i-- {
		j := int(m.Interval(uint32(i)))
		p[i], p[j] = p[j], p[i]
	}
	return p
}
