// Copyright 2025 go-expint Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expint

import "math"

//go:generate go run ../cmd/e1gen --output z_e1_tables.go

const (
	// e1TaylorMax is the last Taylor interval bound; above it E1 switches to
	// the rational approximants.
	e1TaylorMax = 2.15

	// e1Cutoff is where the true E1 value drops below the smallest subnormal.
	e1Cutoff = 740

	// e1AsymMin is the last rational interval bound evaluated directly in x.
	// Beyond it E1Scaled evaluates the same approximant in u = 1/x, which
	// stays finite for arbitrarily large x.
	e1AsymMin = 200

	// eiOverflow is ln(MaxFloat64). The negative-axis continuation behind Ei
	// carries e^x factors that overflow beyond it.
	eiOverflow = 709.782712893384
)

// E1 returns the exponential integral E₁(x) = ∫₁^∞ e^(-x·t)/t dt for x ≥ 0.
//
// Special cases:
//   - E1(0) = +Inf (logarithmic singularity)
//   - E1(x) = 0 for x ≥ 740 (the true value underflows even subnormals)
//   - E1(NaN) = NaN
//
// E1 panics if x < 0. The integral acquires an imaginary part left of the
// origin; use En(1, z) there and pick the side of the branch cut with the
// sign of imag(z).
func E1(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x < 0:
		panic("expint: E1 of negative argument")
	case x == 0:
		return math.Inf(1)
	case x >= e1Cutoff:
		return 0
	}
	if x <= e1TaylorMax {
		// Taylor expansion of E1(x)+log(x), then remove the log.
		return horner(x, e1TaylorCoef[e1Interval(x, e1TaylorUpper[:])]) - math.Log(x)
	}
	i := e1Interval(x, e1RationalUpper[:])
	return math.Exp(-x) * horner(x, e1RationalNum[i]) / horner(x, e1RationalDen[i])
}

// E1Scaled returns e^x · E1(x). The product tends to 1/x as x grows, so it
// stays meaningful long after E1 itself underflows; E1Scaled is finite for
// every positive x up to +Inf, where it is 0.
//
// Special cases:
//   - E1Scaled(0) = +Inf
//   - E1Scaled(NaN) = NaN
//
// E1Scaled panics if x < 0.
func E1Scaled(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x < 0:
		panic("expint: E1Scaled of negative argument")
	case x == 0:
		return math.Inf(1)
	}
	if x <= e1TaylorMax {
		return math.Exp(x) * (horner(x, e1TaylorCoef[e1Interval(x, e1TaylorUpper[:])]) - math.Log(x))
	}
	if x <= e1AsymMin {
		i := e1Interval(x, e1RationalUpper[:])
		return horner(x, e1RationalNum[i]) / horner(x, e1RationalDen[i])
	}
	u := 1 / x
	return u * horner(u, e1AsymNum) / horner(u, e1AsymDen)
}

// Ei returns the exponential integral Ei(x), the principal value of
// ∫_{-∞}^x e^t/t dt.
//
// Special cases:
//   - Ei(0) = -Inf
//   - Ei(x) = +Inf for x > 709.78 (intermediate e^x factors overflow)
//   - Ei(NaN) = NaN
//
// For x < 0, Ei(x) = -E1(-x). For x > 0 the value is -Re En(1, -x+i0),
// evaluated through the analytic continuation across the branch cut.
func Ei(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x == 0:
		return math.Inf(-1)
	case x < 0:
		return -E1(-x)
	case x > eiOverflow:
		return math.Inf(1)
	}
	return -real(En(1, complex(-x, 0)))
}

// e1Interval returns the index of the first interval bound that x does not
// exceed; the last interval takes everything beyond its predecessor.
func e1Interval(x float64, upper []float64) int {
	for i, u := range upper[:len(upper)-1] {
		if x <= u {
			return i
		}
	}
	return len(upper) - 1
}

// Reversed top-interval approximant for the asymptotic form of E1Scaled.
var e1AsymNum, e1AsymDen []float64

func init() {
	last := len(e1RationalNum) - 1
	e1AsymNum = reversed(e1RationalNum[last])
	e1AsymDen = reversed(e1RationalDen[last])
}

func reversed(c []float64) []float64 {
	r := make([]float64, len(c))
	for i, v := range c {
		r[len(c)-1-i] = v
	}
	return r
}
