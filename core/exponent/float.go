package exponent

import (
	"fmt"
	"math"
	"math/big"
)

const (
	maxDenominator = 1_000_000
	ratTolerance   = 1e-12
)

// FromFloat converts a float exponent to the simplest rational within 1e-12,
// so 0.5 and 1.0/3 become 1/2 and 1/3. Values with no small-denominator
// approximation are converted exactly. Panics on NaN or Inf.
func FromFloat(f float64) *big.Rat {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("exponent: non-finite exponent %v", f))
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return big.NewRat(int64(f), 1)
	}
	if math.Abs(f) > 1e15 {
		return new(big.Rat).SetFloat64(f)
	}

	// continued fraction convergents h/k
	var h0, h1 int64 = 0, 1
	var k0, k1 int64 = 1, 0
	x := f
	for i := 0; i < 64; i++ {
		a := int64(math.Floor(x))
		h2 := a*h1 + h0
		k2 := a*k1 + k0
		if k2 > maxDenominator {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2
		if math.Abs(f-float64(h1)/float64(k1)) <= ratTolerance*math.Max(1, math.Abs(f)) {
			return big.NewRat(h1, k1)
		}
		frac := x - math.Floor(x)
		if frac == 0 {
			break
		}
		x = 1 / frac
	}
	return new(big.Rat).SetFloat64(f)
}
