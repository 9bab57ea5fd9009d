package expint

import (
	"math"
	"math/cmplx"
	"os"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gopkg.in/yaml.v3"
)

type enGoldenCase struct {
	Name   string    `yaml:"name"`
	Nu     []float64 `yaml:"nu"`
	Z      []float64 `yaml:"z"`
	Want   []float64 `yaml:"want"`
	Rtol   float64   `yaml:"rtol"`
	Branch string    `yaml:"branch"`
	Scaled bool      `yaml:"scaled"`
}

func loadEnGolden(t *testing.T) []enGoldenCase {
	t.Helper()
	raw, err := os.ReadFile("testdata/en_golden.yaml")
	if err != nil {
		t.Fatalf("reading golden data: %v", err)
	}
	var doc struct {
		Cases []enGoldenCase `yaml:"cases"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("parsing golden data: %v", err)
	}
	if len(doc.Cases) == 0 {
		t.Fatal("golden data has no cases")
	}
	return doc.Cases
}

func c128(v []float64) complex128 {
	return complex(v[0], v[1])
}

func relErrC(got, want complex128) float64 {
	if got == want {
		return 0
	}
	return cmplx.Abs(got-want) / cmplx.Abs(want)
}

func TestEnGoldenValues(t *testing.T) {
	for _, tc := range loadEnGolden(t) {
		t.Run(tc.Name, func(t *testing.T) {
			nu, z, want := c128(tc.Nu), c128(tc.Z), c128(tc.Want)
			var got complex128
			if tc.Scaled {
				got = EnScaled(nu, z)
			} else {
				var d Diag
				got, d = EnDiag(nu, z, DefaultMaxIter)
				if !d.Converged {
					t.Errorf("En(%v, %v) did not converge in %d iterations", nu, z, d.Iters)
				}
				if tc.Branch != "" && d.Branch.String() != tc.Branch {
					t.Errorf("En(%v, %v) evaluated on branch %v, want %v", nu, z, d.Branch, tc.Branch)
				}
			}
			if rel := relErrC(got, want); rel > tc.Rtol {
				t.Errorf("En(%v, %v) = %v, want %v (rel error %.3g > %.3g)", nu, z, got, want, rel, tc.Rtol)
			}
		})
	}
}

func TestEnClosedForms(t *testing.T) {
	t.Run("NuZero", func(t *testing.T) {
		z := complex(2, 3)
		if got, want := En(0, z), cmplx.Exp(-z)/z; got != want {
			t.Errorf("En(0, %v) = %v, want %v", z, got, want)
		}
	})
	t.Run("NuZeroScaled", func(t *testing.T) {
		z := complex(3, 4)
		if got, want := EnScaled(0, z), 1/z; got != want {
			t.Errorf("EnScaled(0, %v) = %v, want %v", z, got, want)
		}
	})
	t.Run("ZeroArgConvergent", func(t *testing.T) {
		// Eν(0) = 1/(ν-1) for Re ν > 1; the same closed form is returned
		// for all Re ν > 0.
		if got, want := En(2.5, 0), complex(1/1.5, 0); got != want {
			t.Errorf("En(2.5, 0) = %v, want %v", got, want)
		}
	})
	t.Run("ZeroArgDivergent", func(t *testing.T) {
		got := En(-1, 0)
		if !math.IsInf(real(got), 1) || imag(got) != 0 {
			t.Errorf("En(-1, 0) = %v, want (+Inf, 0)", got)
		}
	})
	t.Run("ZeroArgPole", func(t *testing.T) {
		// ν = 1 lands on the 1/(ν-1) pole; complex division by zero
		// yields an infinite real part.
		got := En(1, 0)
		if !math.IsInf(real(got), 1) {
			t.Errorf("En(1, 0) = %v, want infinite real part", got)
		}
	})
}

func TestEnUnderflowShortcut(t *testing.T) {
	got, d := EnDiag(2, 800, DefaultMaxIter)
	if got != 0 {
		t.Errorf("En(2, 800) = %v, want 0", got)
	}
	if d.Branch != BranchClosed || d.Iters != 0 {
		t.Errorf("En(2, 800) diagnostics = %+v, want closed-form with no iterations", d)
	}
	// The scaled form must not take the shortcut: e^800·E₂(800) is
	// an ordinary small number.
	if s := EnScaled(2, 800); s == 0 || cmplx.IsNaN(s) {
		t.Errorf("EnScaled(2, 800) = %v, want finite nonzero", s)
	}
}

func TestEnDiagBudget(t *testing.T) {
	// Three iterations cannot converge either fraction at |z| ≈ 4.
	got, d := EnDiag(0.5, complex(4, 1), 3)
	if d.Converged {
		t.Fatalf("EnDiag(0.5, 4+1i, 3) reported convergence, diagnostics %+v", d)
	}
	if d.Branch != BranchCFNoGamma || d.Iters != 2 {
		t.Errorf("EnDiag(0.5, 4+1i, 3) diagnostics = %+v, want cf-nogamma after 2 iterations", d)
	}
	if cmplx.IsNaN(got) {
		t.Errorf("EnDiag(0.5, 4+1i, 3) = %v, want a finite partial value", got)
	}
}

func TestEnDiagSteps(t *testing.T) {
	cases := []struct {
		name  string
		nu, z complex128
		steps int
	}{
		{"NearCut", 1, complex(-4, 0.5), 2},
		{"DeepLeft", 2.5, complex(-10, 1), 3},
		{"OnCut", 0.5, complex(-5, 0), 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, d := EnDiag(tc.nu, tc.z, DefaultMaxIter)
			if d.Branch != BranchStepped || !d.Converged {
				t.Fatalf("EnDiag(%v, %v) diagnostics = %+v, want converged stepped branch", tc.nu, tc.z, d)
			}
			if d.Steps != tc.steps {
				t.Errorf("EnDiag(%v, %v) took %d continuation steps, want %d", tc.nu, tc.z, d.Steps, tc.steps)
			}
		})
	}
}

func TestEnConjugateSymmetry(t *testing.T) {
	cases := []struct {
		nu, z complex128
	}{
		{0.5, complex(-5, 0)},
		{1, complex(-4, 0.5)},
		{2.5, complex(-10, 1)},
		{3, complex(-2, 0)},
		{0.25, complex(2, 3)},
		{complex(1.5, 0.25), complex(1, 2)},
	}
	for _, tc := range cases {
		got := En(cmplx.Conj(tc.nu), cmplx.Conj(tc.z))
		want := cmplx.Conj(En(tc.nu, tc.z))
		if got != want {
			t.Errorf("En(conj %v, conj %v) = %v, want conj of %v", tc.nu, tc.z, got, want)
		}
	}
}

func TestEnRepeatable(t *testing.T) {
	// Evaluation must not depend on hidden state.
	pts := []struct {
		nu, z complex128
	}{
		{0.5, complex(0.5, 0.5)},
		{2, complex(4.2, 0.1)},
		{1, complex(-4, 0.5)},
		{complex(1.5, 1), complex(2, 2)},
	}
	for _, tc := range pts {
		first := En(tc.nu, tc.z)
		if again := En(tc.nu, tc.z); again != first {
			t.Errorf("En(%v, %v) changed between calls: %v then %v", tc.nu, tc.z, first, again)
		}
	}
}

func TestEnOriginBoundaryContinuity(t *testing.T) {
	// The value must agree across |z| = OriginSeriesThreshold where the
	// dispatcher hands off from the origin series to the outer methods.
	inner := math.Nextafter(OriginSeriesThreshold, 0)
	pairs := [][2]complex128{
		{complex(inner, 0), complex(OriginSeriesThreshold, 0)},
		{complex(-inner, 0), complex(-OriginSeriesThreshold, 0)},
		{complex(0, inner), complex(0, OriginSeriesThreshold)},
		{complex(0, -inner), complex(0, -OriginSeriesThreshold)},
	}
	nus := []complex128{0.5, complex(1.5, 1), 3, complex(0.25, -1)}
	for _, nu := range nus {
		for _, p := range pairs {
			in, din := EnDiag(nu, p[0], DefaultMaxIter)
			out, dout := EnDiag(nu, p[1], DefaultMaxIter)
			if din.Branch != BranchOrigin {
				t.Errorf("En(%v, %v) evaluated on branch %v, want origin", nu, p[0], din.Branch)
			}
			if dout.Branch == BranchOrigin || dout.Branch == BranchClosed {
				t.Errorf("En(%v, %v) evaluated on branch %v, want an outer method", nu, p[1], dout.Branch)
			}
			if rel := relErrC(in, out); rel > 1e-9 {
				t.Errorf("En(%v, ·) jumps across |z| = %v: %v inside, %v outside (rel gap %.3g)",
					nu, OriginSeriesThreshold, in, out, rel)
			}
		}
	}
}

func TestEnRecurrence(t *testing.T) {
	// Contiguous relation E_{ν+1}(z) = (e^(-z) - z·Eν(z)) / ν, checked
	// at points where the subtraction keeps most of its precision.
	pts := []struct {
		nu, z complex128
	}{
		{0.5, complex(0.5, 0.5)},
		{1, complex(2, 0)},
		{2, complex(4.2, 0.1)},
		{0.25, complex(1, 2)},
		{complex(1.5, 1), complex(2, 2)},
		{3, complex(6, 3)},
		{0.5, complex(-5, 2)},
		{1, complex(-4, 0.5)},
		{2.5, complex(-10, 1)},
		{0.75, complex(1.5, -2.5)},
	}
	const tol = 1e-10
	for _, tc := range pts {
		lo := En(tc.nu, tc.z)
		hi := En(tc.nu+1, tc.z)
		rhs := (cmplx.Exp(-tc.z) - tc.z*lo) / tc.nu
		if rel := relErrC(hi, rhs); rel > tol {
			t.Errorf("recurrence broken at ν=%v z=%v: E_{ν+1} = %v but relation gives %v (rel %.3g)",
				tc.nu, tc.z, hi, rhs, rel)
		}
	}
}

func TestEnOrderOneMatchesE1(t *testing.T) {
	// ν=1 on the positive real axis must agree with the dedicated E1
	// path in both the origin-series and continued-fraction regions.
	for _, x := range []float64{0.25, 0.9, 2.5, 7, 30} {
		got := En(1, complex(x, 0))
		if imag(got) != 0 {
			t.Errorf("En(1, %g) = %v: nonzero imaginary part on the positive axis", x, got)
		}
		if want := E1(x); !scalar.EqualWithinRel(real(got), want, 1e-10) {
			t.Errorf("En(1, %g) = %v, want E1 = %v", x, got, want)
		}
	}
}

func TestEnScaledMatchesEn(t *testing.T) {
	pts := []struct {
		nu, z complex128
	}{
		{0.5, complex(2, 1)},
		{1.5, complex(4, 0)},
		{0.5, complex(-5, 2)},
	}
	const tol = 1e-12
	for _, tc := range pts {
		want := En(tc.nu, tc.z) * cmplx.Exp(tc.z)
		got := EnScaled(tc.nu, tc.z)
		if rel := relErrC(got, want); rel > tol {
			t.Errorf("EnScaled(%v, %v) = %v, want e^z·En = %v (rel %.3g)", tc.nu, tc.z, got, want, rel)
		}
	}
}

func TestBranchString(t *testing.T) {
	cases := []struct {
		b    Branch
		want string
	}{
		{BranchClosed, "closed"},
		{BranchOrigin, "origin"},
		{BranchCFGamma, "cf-gamma"},
		{BranchCFNoGamma, "cf-nogamma"},
		{BranchStepped, "stepped"},
		{Branch(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.b.String(); got != tc.want {
			t.Errorf("Branch(%d).String() = %q, want %q", int(tc.b), got, tc.want)
		}
	}
}
