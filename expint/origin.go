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

	"gonum.org/v1/gonum/mathext"

	"github.com/go-expint/go-expint/internal/cgamma"
)

// gamma1m computes Γ(1-ν), delegating to the real gamma when ν lies on the
// real axis so real poles surface as real-axis infinities.
func gamma1m(nu complex128) complex128 {
	if imag(nu) == 0 {
		return complex(math.Gamma(1-real(nu)), 0)
	}
	return cgamma.Gamma(1 - nu)
}

// safeGammaTerm computes Γ(1-ν)·z^(ν-1). The two factors can land on
// opposite extremes (one infinite, one zero) where the naive product is NaN;
// in that case the product is reassembled in log space.
func safeGammaTerm(nu, z complex128) complex128 {
	g := gamma1m(nu)
	if g == 0 {
		return 0
	}
	p := cmplx.Exp((nu - 1) * cmplx.Log(z))
	if !cmplx.IsInf(g) && !cmplx.IsInf(p) {
		return g * p
	}
	return cmplx.Exp((nu-1)*cmplx.Log(z) + cgamma.LogGamma(1-nu))
}

// cisFinite reports whether both components of w are finite.
func cisFinite(w complex128) bool {
	return !cmplx.IsInf(w) && !cmplx.IsNaN(w)
}

// nearPosInt returns n when ν lies on the real axis within nearIntTol of a
// positive integer n, and 0 otherwise. Orders inside the tolerance band are
// computed at n exactly; the series in originGeneral loses all precision to
// the Γ(1-ν) pole long before the band is reached.
func nearPosInt(nu complex128) int {
	if imag(nu) != 0 {
		return 0
	}
	n := math.Round(real(nu))
	if n >= 1 && math.Abs(real(nu)-n) < nearIntTol {
		return int(n)
	}
	return 0
}

// originGeneral sums the expansion of Eν(z) about the origin for
// non-integer ν:
//
//	Eν(z) = Γ(1-ν)·z^(ν-1) - Σ_{k≥0} (-z)^k / (k!·(k+1-ν))
//
// The sum converges for any z but is only well conditioned inside the
// origin disk; the dispatcher restricts it to |z| < OriginSeriesThreshold.
func originGeneral(nu, z complex128) (complex128, int, bool) {
	lead := safeGammaTerm(nu, z)
	frac := complex(1, 0)
	s := frac / (1 - nu)
	iters, conv := 0, false
	for k := 1; k <= 100; k++ {
		iters = k
		frac *= -z / complex(float64(k), 0)
		term := frac / (complex(float64(k+1), 0) - nu)
		s += term
		if fastAbs(term) < convTol*fastAbs(s) {
			conv = true
			break
		}
	}
	return lead - s, iters, conv
}

// originPosInt sums the origin expansion at integer order n ≥ 1, where the
// general form degenerates: the k = n-1 term of the sum collides with the
// Γ(1-ν) pole and the pair is replaced by the finite limit
// (-z)^(n-1)/(n-1)!·(ψ(n) - Log z).
func originPosInt(n int, z complex128) (complex128, int, bool) {
	lead := complex(1, 0)
	for i := 1; i < n; i++ {
		lead *= -z / complex(float64(i), 0)
	}
	lead *= complex(mathext.Digamma(float64(n)), 0) - cmplx.Log(z)
	var s complex128
	frac := complex(1, 0)
	iters, conv := 0, false
	for k := 0; k <= 100; k++ {
		iters = k
		if k != n-1 {
			term := frac / complex(float64(k+1-n), 0)
			s += term
			// Terms below k = n alternate around the pole and may
			// dwarf the tail; convergence is judged past it.
			if k >= n && fastAbs(term) < convTol*fastAbs(s) {
				conv = true
				break
			}
		}
		frac *= -z / complex(float64(k+1), 0)
	}
	return lead - s, iters, conv
}
