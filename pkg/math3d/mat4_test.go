package math3d

import "testing"

func TestMat4Identity(t *testing.T) {
	v := V3(1, -2, 3)
	if got := Identity().MulVec3(v); got != v {
		t.Errorf("Identity * v = %v", got)
	}
}

func TestFit(t *testing.T) {
	lo := V3(-1, 0, -2)
	hi := V3(1, 3, 2)
	m := Fit(lo, hi, V3(0, 50, 0), 40)

	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"lower corner", lo, V3(-10, 50, -20)},
		{"upper corner", hi, V3(10, 80, 20)},
		{"bottom center", V3(0, 0, 0), V3(0, 50, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.MulVec3(tc.in); !vecNear(got, tc.want, eps) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFitDegenerate(t *testing.T) {
	p := V3(2, 2, 2)
	m := Fit(p, p, V3(0, 10, 0), 40)
	if got := m.MulVec3(p); !vecNear(got, V3(0, 10, 0), eps) {
		t.Errorf("degenerate box moved to %v, want (0,10,0)", got)
	}
}
