package expint

import "testing"

var (
	benchSinkF float64
	benchSinkC complex128
)

func BenchmarkE1(b *testing.B) {
	cases := []struct {
		name string
		x    float64
	}{
		{"taylor_0.004", 0.004},
		{"taylor_1.5", 1.5},
		{"rational_5", 5},
		{"rational_20", 20},
		{"asymptotic_400", 400},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			var v float64
			for i := 0; i < b.N; i++ {
				v = E1(c.x)
			}
			benchSinkF = v
		})
	}
}

func BenchmarkE1Scaled(b *testing.B) {
	cases := []struct {
		name string
		x    float64
	}{
		{"taylor_1.5", 1.5},
		{"rational_50", 50},
		{"asymptotic_500", 500},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			var v float64
			for i := 0; i < b.N; i++ {
				v = E1Scaled(c.x)
			}
			benchSinkF = v
		})
	}
}

func BenchmarkEn(b *testing.B) {
	cases := []struct {
		name string
		nu   complex128
		z    complex128
	}{
		{"origin", 0.5, complex(1, 1)},
		{"origin_posint", 3, complex(1, 1)},
		{"cf_gamma", 0.5, complex(4, 0)},
		{"cf_nogamma", 0.5, complex(10, 1)},
		{"stepped", 1, complex(-4, 0.5)},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			var v complex128
			for i := 0; i < b.N; i++ {
				v = En(c.nu, c.z)
			}
			benchSinkC = v
		})
	}
}

func BenchmarkEnScaled(b *testing.B) {
	b.ReportAllocs()
	var v complex128
	for i := 0; i < b.N; i++ {
		v = EnScaled(1, 800)
	}
	benchSinkC = v
}

func BenchmarkEi(b *testing.B) {
	b.ReportAllocs()
	var v float64
	for i := 0; i < b.N; i++ {
		v = Ei(5)
	}
	benchSinkF = v
}
