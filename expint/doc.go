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

// Package expint evaluates the exponential integral family to near machine
// precision: the real first-order integral E₁(x), the classical Ei(x), and
// the generalized Eν(z) for complex order ν and complex argument z.
//
// # Real fast path
//
//	E1(x)       = ∫₁^∞ e^(-x t)/t dt           for x ≥ 0
//	E1Scaled(x) = e^x · E1(x)
//	Ei(x)       = -PV ∫_{-x}^∞ e^(-t)/t dt
//
// E1 dispatches on fixed sub-intervals of [0, 740): a Taylor expansion of
// E₁(x)+log(x) near the origin and rational approximants e^(-x)·P(x)/Q(x)
// beyond, with polynomial orders tuned per interval. The coefficient tables
// in z_e1_tables.go are produced offline by cmd/e1gen from exact rational
// arithmetic.
//
// # Generalized path
//
//	En(ν, z)       for complex ν, z
//	EnScaled(ν, z) = e^z · En(ν, z), finite far into the underflow region
//
// En classifies (ν, z) into a region and runs one sub-algorithm: a power
// series about the origin for |z| < OriginSeriesThreshold, one of two
// continued fractions elsewhere, and, left of the imaginary axis near the
// branch cut, Taylor-series analytic continuation that walks from a reliable
// seed point down to the target. EnDiag reports which branch ran and how
// hard it worked.
//
// On the negative real axis the value is the limit from above the cut;
// conjugate z to select the lower side. En(ν̄, z̄) = conj(En(ν, z)) holds
// bitwise.
//
// # Accuracy
//
// E1 is accurate to a few ulps over the whole domain. En holds roughly
// 1e-13 relative error in the series and gamma-free fraction regions and
// 1e-9 after long continuation walks. When the dispatcher settles on the
// gamma-based decomposition with near-cancelling parts, accuracy degrades
// smoothly; Diag exposes the branch so callers can tell.
package expint
