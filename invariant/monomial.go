package invariant

import (
	"github.com/katalvlaran/vbfeq/gf2n"
	"github.com/katalvlaran/vbfeq/vbf"
)

// IsMonomial decides whether there exist a, b in GF(2^n) and an exponent
// d in [0, 2^n-1) with F(x) = a*x^d + b for every x, using field for the
// GF(2^n) arithmetic. Requires n <= 16 and a non-nil field; returns false
// (never an error) on any precondition violation, per the spec's public
// boolean surface. Use IsMonomialErr to distinguish "not a monomial" from
// "precondition not met".
func IsMonomial(tt vbf.TruthTable, field *gf2n.Field) bool {
	ok, _ := IsMonomialErr(tt, field)

	return ok
}

// IsMonomialErr is the error-returning sibling of IsMonomial. It returns
// ErrMissingPrimitivePolynomial when field is nil or tt.N > 16, matching
// the original C implementation's documented precondition.
//
// Strategy (spec §4.C): b = F(0); reject a constant F; for each candidate
// exponent d in [0, 2^n-1), derive a from x=1 (a = (F(1) xor b), since
// 1^d = 1 for every d), then verify the closed form for every x; return
// true on the first full match.
func IsMonomialErr(tt vbf.TruthTable, field *gf2n.Field) (bool, error) {
	if field == nil || tt.N > 16 || field.N != tt.N {
		return false, ErrMissingPrimitivePolynomial
	}

	size := tt.Size()
	b := tt.V[0]

	constant := true
	for x := 0; x < size; x++ {
		if tt.V[x] != b {
			constant = false
			break
		}
	}
	if constant {
		return false, nil
	}

	order := size - 1 // 2^n - 1
	for d := 0; d < order; d++ {
		diff := tt.V[1] ^ b
		var a uint64
		if diff != 0 {
			invXd := field.Pow(1, order-d) // (1^d)^-1 = 1, kept symmetric with spec's formula
			a = field.Multiply(diff, invXd)
		}

		ok := true
		for x := 0; x < size; x++ {
			xd := field.Pow(uint64(x), d)
			val := b
			if a != 0 && xd != 0 {
				val ^= field.Multiply(a, xd)
			}
			if val != tt.V[x] {
				ok = false
				break
			}
		}
		if ok {
			return true, nil
		}
	}

	return false, nil
}
