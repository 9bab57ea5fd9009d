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

import "math/cmplx"

// taylorStep continues a known value seed = Eν(z0) to Eν(z0+dz) by summing
// the Taylor series in dz. The derivative coefficients follow from
// d/dz Eν = -E(ν-1) and the three-term contiguous relation, giving
//
//	c_{k+1} = ((ν-1-k)·c_k - f_k) / (z0·(k+1))
//
// with f_k = (-1)^k e^(-z0)/k!. Reliable for |dz| up to about half a unit;
// the dispatcher walks longer paths in 0.5-length steps.
func taylorStep(nu, z0, dz, seed complex128) (complex128, int, bool) {
	c := seed
	s := c
	f := cmplx.Exp(-z0)
	dzp := complex(1, 0)
	iters, conv := 0, false
	for k := 0; k < 100; k++ {
		iters = k + 1
		c = ((nu-complex(float64(k+1), 0))*c - f) / (z0 * complex(float64(k+1), 0))
		f = -f / complex(float64(k+1), 0)
		dzp *= dz
		term := c * dzp
		s += term
		if k > 0 && fastAbs(term) < convTol*fastAbs(s) {
			conv = true
			break
		}
	}
	return s, iters, conv
}
