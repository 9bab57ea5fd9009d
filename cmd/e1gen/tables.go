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

package main

import (
	"math/big"
	"strconv"
)

// eulerGamma is the Euler-Mascheroni constant to 50 digits; only its
// correctly rounded float64 value enters the tables.
const eulerGamma = "0.57721566490153286060651209008240243104215933593992"

// taylorCoef returns coefficients c_0..c_order of the entire function
//
//	E1(x) + log x = -γ + Σ_{k≥1} (-1)^(k+1)·x^k / (k·k!)
//
// Every coefficient past c_0 is an exact rational, carried in big.Rat by
// the recurrence c_k = -c_{k-1}·(k-1)/k² and rounded to float64 once.
func taylorCoef(order int) []float64 {
	c := make([]float64, order+1)
	g, _ := strconv.ParseFloat(eulerGamma, 64)
	c[0] = -g
	if order >= 1 {
		c[1] = 1
	}
	r := big.NewRat(1, 1)
	for k := 2; k <= order; k++ {
		r.Mul(r, big.NewRat(int64(1-k), int64(k*k)))
		c[k], _ = r.Float64()
	}
	return c
}

// ratPoly holds polynomial coefficients in ascending degree as exact
// rationals. Operations return fresh slices and never mutate operands.
type ratPoly []*big.Rat

// shift returns x·p.
func (p ratPoly) shift() ratPoly {
	out := make(ratPoly, len(p)+1)
	out[0] = new(big.Rat)
	copy(out[1:], p)
	return out
}

// addScaled returns p + k·q.
func (p ratPoly) addScaled(q ratPoly, k int64) ratPoly {
	out := make(ratPoly, max(len(p), len(q)))
	s := big.NewRat(k, 1)
	for i := range out {
		c := new(big.Rat)
		if i < len(p) {
			c.Set(p[i])
		}
		if i < len(q) {
			c.Add(c, new(big.Rat).Mul(s, q[i]))
		}
		out[i] = c
	}
	return out
}

// cfPolys expands the depth-n Stieltjes continued fraction
//
//	e^x·E1(x) ≈ 1/(x+ 1/(1+ 1/(x+ 2/(1+ 2/(x+ 3/(1+ ···))))))
//
// bottom-up into a polynomial numerator and denominator. Both are
// normalized by the denominator's constant term, so den[0] = 1 and
// den[1] = n exactly.
func cfPolys(n int) (num, den []float64) {
	p := ratPoly{new(big.Rat), big.NewRat(1, 1)}
	q := ratPoly{big.NewRat(1, 1)}
	for i := n; i >= 1; i-- {
		p, q = p.shift().addScaled(q, int64(i+1)), p
		p, q = p.addScaled(q, int64(i)), p
	}
	d := p.shift().addScaled(q, 1)
	scale := new(big.Rat).Inv(d[0])
	return normalize(p, scale), normalize(d, scale)
}

// normalize multiplies each coefficient by scale and rounds to float64.
func normalize(p ratPoly, scale *big.Rat) []float64 {
	out := make([]float64, len(p))
	for i, c := range p {
		out[i], _ = new(big.Rat).Mul(c, scale).Float64()
	}
	return out
}
