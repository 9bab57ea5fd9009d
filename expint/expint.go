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

const (
	// OriginSeriesThreshold is the |z| radius below which Eν(z) is summed
	// by the expansion about the origin rather than a continued fraction.
	// The dispatcher owns this constant; both series and fractions converge
	// in an annulus around it, which region-continuity tests rely on.
	OriginSeriesThreshold = 3.0

	// DefaultMaxIter is the continued-fraction iteration budget used by En
	// and EnScaled. EnDiag accepts an explicit budget instead.
	DefaultMaxIter = 1000

	// convTol is the stopping tolerance for every series and continued
	// fraction in the package, ten units of float64 epsilon.
	convTol = 10 * 2.220446049250313e-16

	// rescaleAt bounds continued-fraction continuants; see cfState.rescale.
	rescaleAt = 1e50

	// nearIntTol is the half-width of the band around positive integers
	// inside which a real order ν is treated as exactly integer.
	nearIntTol = 1e-8
)

// fastAbs is the 1-norm |Re w| + |Im w|, a cheap modulus proxy for the
// relative comparisons in convergence tests.
func fastAbs(w complex128) float64 {
	return math.Abs(real(w)) + math.Abs(imag(w))
}

// Branch identifies which evaluation region produced a value of Eν.
type Branch int

const (
	// BranchClosed marks closed-form shortcuts: z = 0, ν = 0, and the
	// unscaled underflow region where e^(-z)/z is already zero.
	BranchClosed Branch = iota
	// BranchOrigin marks the series expansion about z = 0.
	BranchOrigin
	// BranchCFGamma marks the gamma-based continued fraction.
	BranchCFGamma
	// BranchCFNoGamma marks the gamma-free continued fraction.
	BranchCFNoGamma
	// BranchStepped marks analytic continuation from a seed point.
	BranchStepped
)

func (b Branch) String() string {
	switch b {
	case BranchClosed:
		return "closed"
	case BranchOrigin:
		return "origin"
	case BranchCFGamma:
		return "cf-gamma"
	case BranchCFNoGamma:
		return "cf-nogamma"
	case BranchStepped:
		return "stepped"
	}
	return "unknown"
}

// Diag reports how a value of Eν was produced.
type Diag struct {
	// Branch is the evaluation region that produced the value.
	Branch Branch
	// Iters counts series or continued-fraction iterations. On the stepped
	// branch it is summed over every continuation step.
	Iters int
	// Converged is false when an iteration budget ran out before the
	// stopping tolerance was met.
	Converged bool
	// Steps counts analytic-continuation steps; zero off the stepped branch.
	Steps int
}

// En computes the generalized exponential integral
//
//	Eν(z) = ∫₁^∞ e^(-z·t) / t^ν dt,  Re z > 0
//
// analytically continued to complex ν and all complex z. The continuation
// has a branch cut along the negative real axis; on the cut En returns the
// limit from above, so Im En(ν, -x+0i) = -π·x^(ν-1)/Γ(ν) for real ν.
// Values obey En(conj ν, conj z) = conj En(ν, z) bit for bit.
func En(nu, z complex128) complex128 {
	v, _ := enDiag(nu, z, DefaultMaxIter, false)
	return v
}

// EnScaled computes e^z · Eν(z), which stays representable for large
// positive Re z where Eν itself underflows.
func EnScaled(nu, z complex128) complex128 {
	v, _ := enDiag(nu, z, DefaultMaxIter, true)
	return v
}

// EnDiag computes Eν(z) like En under an explicit iteration budget and
// returns evaluation diagnostics alongside the value. Budgets far below
// DefaultMaxIter can leave Diag.Converged false; callers probing accuracy
// should check it.
func EnDiag(nu, z complex128, maxIter int) (complex128, Diag) {
	return enDiag(nu, z, maxIter, false)
}

// enDiag dispatches (ν, z) to the evaluation region whose expansion
// converges there, in a fixed probe order: closed forms, the underflow
// shortcut, the origin disk, the two continued fractions, and last the
// conjugate-and-step continuation for Re z ≤ 0 near the cut.
func enDiag(nu, z complex128, maxIter int, scaled bool) (complex128, Diag) {
	d := Diag{Branch: BranchClosed, Converged: true}
	if z == 0 {
		if real(nu) > 0 {
			return 1 / (nu - 1), d
		}
		return complex(math.Inf(1), 0), d
	}
	if nu == 0 {
		// E₀(z) = e^(-z)/z exactly.
		if scaled {
			return 1 / z, d
		}
		return cmplx.Exp(-z) / z, d
	}
	if !scaled {
		// 0 < Eν(z) ≤ e^(-z)/z for Re z > 0; once the bound underflows
		// the result is that same zero.
		if e := cmplx.Exp(-z) / z; e == 0 {
			return e, d
		}
	}

	if cmplx.Abs(z) < OriginSeriesThreshold {
		var (
			v    complex128
			it   int
			conv bool
		)
		if n := nearPosInt(nu); n > 0 {
			v, it, conv = originPosInt(n, z)
		} else {
			v, it, conv = originGeneral(nu, z)
		}
		d.Branch, d.Iters, d.Converged = BranchOrigin, it, conv
		if scaled {
			v *= cmplx.Exp(z)
		}
		return v, d
	}

	gt, w, git, gconv := cfGamma(nu, z, maxIter)
	ratio, nit, nconv := cfNoGamma(nu, z, maxIter)
	// The gamma decomposition wins only while its leading term dominates
	// the fraction part; past parity the subtraction cancels.
	if mgt := cmplx.Abs(gt); cisFinite(gt) && mgt > 1 && mgt > cmplx.Abs(cmplx.Exp(-z)*w) {
		d.Branch, d.Iters, d.Converged = BranchCFGamma, git, gconv
		if scaled {
			if v := cmplx.Exp(z)*gt - w; cisFinite(v) {
				return v, d
			}
			// e^z·gt overflowed; the gamma-free ratio is finite here.
			d.Branch, d.Iters, d.Converged = BranchCFNoGamma, nit, nconv
			return ratio, d
		}
		return gt - cmplx.Exp(-z)*w, d
	}

	d.Branch, d.Iters, d.Converged = BranchCFNoGamma, nit, nconv
	if real(z) > 0 {
		if scaled {
			return ratio, d
		}
		return noGammaValue(ratio, z), d
	}

	// Re z ≤ 0 off the origin disk. Conjugate into the closed upper half
	// plane, seed the continued fraction at a safe height above the cut,
	// and walk the value down to the target.
	conj := math.Signbit(imag(z))
	zz, nn := z, nu
	if conj {
		zz, nn = cmplx.Conj(z), cmplx.Conj(nu)
	}
	boundary := math.Min(1+0.5*cmplx.Abs(nn), 50)
	if imag(zz) > boundary {
		if scaled {
			return ratio, d
		}
		return noGammaValue(ratio, z), d
	}

	s := boundary
	v := complex(math.NaN(), math.NaN())
	var z0 complex128
	found := false
	for try := 0; try < 64; try++ {
		z0 = complex(real(zz), s)
		r0, _, conv0 := cfNoGamma(nn, z0, maxIter)
		if conv0 {
			v = noGammaValue(r0, z0)
			found = true
			break
		}
		s *= 2
	}
	if !found {
		// No height converged within the budget; seed at the last one
		// tried and let Converged report the loss.
		s /= 2
		z0 = complex(real(zz), s)
		r0, _, _ := cfNoGamma(nn, z0, maxIter)
		v = noGammaValue(r0, z0)
	}
	dist := s - imag(zz)
	nsteps := int(math.Ceil(dist / 0.5))
	h := dist / float64(nsteps)
	dz := complex(0, -h)
	titers := 0
	tconv := found
	for step := 0; step < nsteps; step++ {
		var it int
		var conv bool
		v, it, conv = taylorStep(nn, z0, dz, v)
		titers += it
		tconv = tconv && conv
		z0 += dz
	}
	if imag(zz) == 0 && imag(nn) == 0 {
		// Land exactly on the cut: the real part steps in fine, the
		// imaginary part is replaced by its closed form.
		v = complex(real(v), branchCutIm(real(nn), -real(zz)))
	}
	if conj {
		v = cmplx.Conj(v)
	}
	d.Branch, d.Iters, d.Converged, d.Steps = BranchStepped, titers, tconv, nsteps
	if scaled {
		v *= cmplx.Exp(z)
	}
	return v, d
}
