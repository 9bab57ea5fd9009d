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

// branchCutIm returns the exact imaginary part of Eν(-x + i0) for real ν
// and x > 0: the discontinuity across the negative real axis is
// -π·x^(ν-1)/Γ(ν), which the stepped continuation recovers only
// approximately. At poles of Γ the coefficient vanishes.
func branchCutIm(nuReal, x float64) float64 {
	g := math.Gamma(nuReal)
	if math.IsNaN(g) || math.IsInf(g, 0) {
		return 0
	}
	return -math.Pi * math.Pow(x, nuReal-1) / g
}
