package gf2n

// Field is GF(2^N) arithmetic reduced modulo a user-supplied irreducible
// polynomial bitmask Poly (bit i set <=> x^i present, highest set bit is
// bit N). Log/Antilog tables are built lazily on first use by Log, Antilog
// or Pow, per the specification's "table build is skipped when not needed".
//
// A Field is not safe for concurrent table-building use; per the module's
// single-threaded design (see lineareq), build it once up front if it will
// be shared across goroutines read-only.
type Field struct {
	N    int
	Poly uint64

	log     []uint64 // length 2^N once built, nil until needed
	antilog []uint64
}

// NewField validates n and poly and returns a *Field ready for Multiply.
// Log/antilog tables are not built here; see ensureTables.
func NewField(n int, poly uint64) (*Field, error) {
	if n < 1 || n > MaxDimension {
		return nil, ErrDimensionUnsupported
	}
	if poly&(uint64(1)<<uint(n)) == 0 || poly>>uint(n+1) != 0 {
		return nil, ErrPolynomialDegreeMismatch
	}

	return &Field{N: n, Poly: poly}, nil
}

// MaxDimension mirrors vbf.MaxDimension without importing vbf, keeping gf2n
// dependency-free (it sits below vbf in the dependency graph).
const MaxDimension = 20

// Multiply computes a*b in GF(2^N) via Russian-peasant multiplication
// modulo Poly: shift a left at each step, reducing with Poly whenever bit N
// would overflow, and XOR a into the accumulator whenever the low bit of b
// is set.
func (f *Field) Multiply(a, b uint64) uint64 {
	var result uint64
	cutoff := uint64(1) << uint(f.N-1)

	for a != 0 && b != 0 {
		if b&1 != 0 {
			result ^= a
		}
		b >>= 1
		if a&cutoff != 0 {
			a = (a << 1) ^ f.Poly
		} else {
			a <<= 1
		}
	}

	return result
}

// ensureTables builds Log/Antilog on first use. Idempotent: a second call
// is a guarded no-op, so rebuilding twice yields identical tables (the
// round-trip property required by the spec's testable properties).
func (f *Field) ensureTables() {
	if f.antilog != nil {
		return
	}

	size := uint64(1) << uint(f.N)
	antilog := make([]uint64, size)
	log := make([]uint64, size)

	antilog[0] = 1
	cutoff := uint64(1) << uint(f.N)
	for i := uint64(1); i < size-1; i++ {
		v := antilog[i-1] << 1
		if v&cutoff != 0 {
			v ^= f.Poly
		}
		antilog[i] = v
	}
	for i := uint64(0); i < size-1; i++ {
		log[antilog[i]] = i
	}

	f.antilog = antilog
	f.log = log
}

// Log returns the discrete log of x (base the field's primitive root)
// building the tables lazily on first call.
func (f *Field) Log(x uint64) uint64 {
	f.ensureTables()

	return f.log[x]
}

// Antilog returns alog[i], building the tables lazily on first call.
func (f *Field) Antilog(i uint64) uint64 {
	f.ensureTables()

	return f.antilog[i]
}

// Pow computes x^d in GF(2^N). By convention 0^0 = 1 and 0^d = 0 for d > 0.
func (f *Field) Pow(x uint64, d int) uint64 {
	if x == 0 {
		if d == 0 {
			return 1
		}

		return 0
	}

	f.ensureTables()
	order := int((uint64(1) << uint(f.N)) - 1)
	e := (int(f.log[x]) * d) % order
	if e < 0 {
		e += order
	}

	return f.antilog[uint64(e)]
}
