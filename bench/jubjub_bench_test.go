package bench

import (
	"testing"

	"jubjub.dev"
)

var benchBase = jubjub.ExtendedFromAffine(jubjub.FullGenerator).MulByCofactor()

func BenchmarkDouble(b *testing.B) {
	p := benchBase
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p = p.Double()
	}
}

func BenchmarkAdd(b *testing.B) {
	p := benchBase
	q := benchBase.Double()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p = p.Add(q)
	}
}

func BenchmarkMultiply(b *testing.B) {
	by := jubjub.FRModulusBytes
	by[0] ^= 1 // avoid multiplying by exactly r
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = benchBase.Multiply(by)
	}
}

func BenchmarkBatchNormalize(b *testing.B) {
	const n = 64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		points := make([]jubjub.ExtendedPoint, n)
		p := benchBase
		for j := range points {
			points[j] = p
			p = p.Double()
		}
		b.StartTimer()
		_ = jubjub.BatchNormalize(points)
	}
}
