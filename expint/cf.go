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

import (
	"math"
	"math/cmplx"
)

// cfState holds one rung of a continued-fraction continuant recurrence:
// the current and previous numerator A and denominator B. Steps produce a
// new state rather than mutating, so a fraction evaluation is a fold over
// immutable values.
type cfState struct {
	a, aPrev complex128
	b, bPrev complex128
}

// step advances both continuants by one rung with partial numerator num and
// partial denominator den.
func (s cfState) step(num, den complex128) cfState {
	return cfState{
		a: den*s.a + num*s.aPrev, aPrev: s.a,
		b: den*s.b + num*s.bPrev, bPrev: s.b,
	}
}

// converged reports whether successive convergents A/B and Aprev/Bprev agree
// to within convTol, using the cross-difference form that needs no division.
func (s cfState) converged() bool {
	return fastAbs(s.aPrev*s.b-s.a*s.bPrev) < convTol*fastAbs(s.b*s.bPrev)
}

// rescale divides all four continuants by 1e50 once |A| crosses 1e50,
// keeping the recurrence away from float64 overflow without changing the
// convergent.
func (s cfState) rescale() cfState {
	if fastAbs(s.a) > rescaleAt {
		return cfState{
			a: s.a / rescaleAt, aPrev: s.aPrev / rescaleAt,
			b: s.b / rescaleAt, bPrev: s.bPrev / rescaleAt,
		}
	}
	return s
}

// cfNoGamma evaluates the gamma-free continued fraction for Eν(z).
// The returned ratio is A/B = e^z·Eν(z); the caller multiplies by e^(-z)
// (see noGammaValue) or uses the ratio directly for the scaled variant.
// Each iteration interleaves two rungs: numerator i-1 over denominator z,
// then numerator ν+i-1 over denominator 1.
func cfNoGamma(nu, z complex128, maxIter int) (ratio complex128, iters int, conv bool) {
	st := cfState{a: 1, aPrev: 1, b: z + nu, bPrev: z}
	for i := 2; i <= maxIter; i++ {
		iters = i - 1
		st = st.step(complex(float64(i-1), 0), z)
		st = st.step(nu+complex(float64(i-1), 0), 1)
		if st.converged() {
			conv = true
			break
		}
		st = st.rescale()
	}
	return st.a / st.b, iters, conv
}

// noGammaValue turns the gamma-free convergent into Eν(z) = ratio·e^(-z).
// When e^(-z) is infinite in both components the naive product can cancel
// infinities into NaN; folding the sign pattern into the finite ratio first
// yields the correctly signed infinity.
func noGammaValue(ratio, z complex128) complex128 {
	expz := cmplx.Exp(-z)
	if math.IsInf(real(expz), 0) && math.IsInf(imag(expz), 0) {
		sgn := complex(math.Copysign(1, real(expz)), math.Copysign(1, imag(expz)))
		w := ratio * sgn
		return complex(math.Inf(1)*real(w), math.Inf(1)*imag(w))
	}
	return ratio * expz
}

// cfGamma evaluates the gamma-based decomposition Eν(z) = gt - e^(-z)·w,
// where gt = Γ(1-ν)·z^(ν-1) and w comes from the incomplete-gamma continued
// fraction. Both parts are returned separately so the dispatcher can judge
// whether the decomposition is the better-conditioned one. The partial
// numerator alternates by parity between ⌊i/2⌋·z and (ν-i/2)·z over the
// partial denominator i-ν.
func cfGamma(nu, z complex128, maxIter int) (gt, w complex128, iters int, conv bool) {
	gt = safeGammaTerm(nu, z)
	st := cfState{a: 1 - nu, aPrev: 1, b: 1, bPrev: 0}
	for i := 2; i <= maxIter; i++ {
		iters = i - 1
		var num complex128
		if i%2 == 1 {
			num = complex(float64(i/2), 0) * z
		} else {
			num = (nu - complex(float64(i/2), 0)) * z
		}
		st = st.step(num, complex(float64(i), 0)-nu)
		if st.converged() {
			conv = true
			break
		}
		st = st.rescale()
	}
	return gt, st.b / st.a, iters, conv
}
