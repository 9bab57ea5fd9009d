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

// Package cgamma provides the gamma function on the complex plane via the
// Lanczos approximation (g = 7, n = 9), with reflection for Re z < 0.5.
// Arguments on the real axis delegate to math.Gamma and math.Lgamma so
// real callers see exactly the standard library's special-case behavior,
// poles and signed zeros included.
package cgamma

import (
	"math"
	"math/cmplx"
)

const (
	lanczosC0    = 0.99999999999980993
	sqrtTwoPi    = 2.5066282746310002
	logSqrtTwoPi = 0.9189385332046727
)

var lanczos = [...]float64{
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-06,
	1.5056327351493116e-07,
}

// Gamma returns Γ(z). Accuracy is close to full float64 precision away
// from the poles at the nonpositive integers, where real-axis arguments
// return NaN like math.Gamma.
func Gamma(z complex128) complex128 {
	if imag(z) == 0 {
		return complex(math.Gamma(real(z)), 0)
	}
	if real(z) < 0.5 {
		// Reflection: Γ(z)·Γ(1-z) = π/sin(πz).
		return math.Pi / (cmplx.Sin(math.Pi*z) * Gamma(1-z))
	}
	z -= 1
	x := complex(lanczosC0, 0)
	for i, c := range lanczos {
		x += complex(c, 0) / (z + complex(float64(i+1), 0))
	}
	t := z + 7.5
	return sqrtTwoPi * cmplx.Exp((z+0.5)*cmplx.Log(t)-t) * x
}

// LogGamma returns log Γ(z) up to an integer multiple of 2πi. Callers are
// expected to exponentiate the result, so the imaginary part is not reduced
// to a principal branch.
func LogGamma(z complex128) complex128 {
	if imag(z) == 0 && real(z) > 0 {
		lg, _ := math.Lgamma(real(z))
		return complex(lg, 0)
	}
	if real(z) < 0.5 {
		return complex(math.Log(math.Pi), 0) - logSinPi(z) - LogGamma(1-z)
	}
	z -= 1
	x := complex(lanczosC0, 0)
	for i, c := range lanczos {
		x += complex(c, 0) / (z + complex(float64(i+1), 0))
	}
	t := z + 7.5
	return logSqrtTwoPi + (z+0.5)*cmplx.Log(t) - t + cmplx.Log(x)
}

// logSinPi computes log sin(πz). Away from the real axis sin(πz) grows like
// e^(π|Im z|) and overflows long before its log does, so for |Im z| ≥ 10 the
// log is assembled from the decaying exponential e^(±2πiz) instead.
func logSinPi(z complex128) complex128 {
	if math.Abs(imag(z)) < 10 {
		return cmplx.Log(cmplx.Sin(math.Pi * z))
	}
	if imag(z) > 0 {
		w := cmplx.Exp(complex(0, 2*math.Pi) * z)
		return complex(-math.Ln2, math.Pi/2) - complex(0, math.Pi)*z + cmplx.Log(1-w)
	}
	w := cmplx.Exp(complex(0, -2*math.Pi) * z)
	return complex(-math.Ln2, -math.Pi/2) + complex(0, math.Pi)*z + cmplx.Log(1-w)
}
