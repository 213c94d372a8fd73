package math3d

import (
	"testing"
)

func BenchmarkVec3Rotate(b *testing.B) {
	v := V3(1, 2, 3)
	euler := V3(30, 45, 60)

	for b.Loop() {
		_ = v.Rotate(euler)
	}
}

func BenchmarkVec3StepRotate(b *testing.B) {
	v := V3(1, 2, 3)
	rotation := V3(15, 270, 0)

	for b.Loop() {
		_ = v.StepRotate(rotation)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkBoxIntersects(b *testing.B) {
	a := NewBox(V3(10, 40, 10), V3(0, 5, 0))
	c := NewBox(V3(20, 20, 20), V3(12, -10, 3))

	for b.Loop() {
		_ = a.Intersects(c)
	}
}

func BenchmarkFit(b *testing.B) {
	lo := V3(-1, 0, -2)
	hi := V3(1, 3, 2)
	base := V3(0, 50, 0)

	for b.Loop() {
		_ = Fit(lo, hi, base, 40)
	}
}
