package common

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{540, 180},
		{-725, -5},
	}
	for _, c := range cases {
		if got := NormalizeAngle(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("NormalizeAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDeltaAngle(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{0, 90, 90},
		{170, -170, 20},
		{-170, 170, -20},
		{10, 370, 0},
	}
	for _, c := range cases {
		if got := DeltaAngle(c.a, c.b); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("DeltaAngle(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestForwardRightOrthogonal(t *testing.T) {
	for _, yaw := range []float64{0, 33, 90, -120, 179} {
		fx, fz := Forward(yaw)
		rx, rz := Right(yaw)
		if dot := fx*rx + fz*rz; math.Abs(dot) > 1e-9 {
			t.Fatalf("yaw %v: forward and right not orthogonal (dot %v)", yaw, dot)
		}
	}
	rx, rz := Right(0)
	if rx != 1 || rz != 0 {
		t.Fatalf("expected right=(1,0) at yaw 0, got (%v,%v)", rx, rz)
	}
}
