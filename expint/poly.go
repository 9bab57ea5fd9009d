package expint

// horner evaluates a polynomial with coefficients in ascending degree order
// using Horner's nested multiplication:
//
//	p(x) = c[0] + x*(c[1] + x*(c[2] + ... + x*c[n]))
//
// Both E1 table families (Taylor and rational) are stored this way.
func horner(x float64, c []float64) float64 {
	acc := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		acc = acc*x + c[i]
	}
	return acc
}
