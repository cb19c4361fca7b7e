package gamemath

import (
	"math"
	"testing"
)

func TestRayBox(t *testing.T) {
	box := Box{Min: V3(-1, -1, -6), Max: V3(1, 1, -4)}
	forward := V3(0, 0, -1)

	tests := []struct {
		name    string
		origin  Vec3
		dir     Vec3
		maxDist float64
		wantHit bool
		wantT   float64
	}{
		{"straight hit", V3(0, 0, 0), forward, 10, true, 4},
		{"too short", V3(0, 0, 0), forward, 3.9, false, 0},
		{"pointing away", V3(0, 0, 0), V3(0, 0, 1), 10, false, 0},
		{"parallel miss", V3(2, 0, 0), forward, 10, false, 0},
		{"inside box", V3(0, 0, -5), forward, 10, true, 0},
		{"diagonal hit", V3(-1, 0, -2), V3(1, 0, -1).Normalized(), 10, true, math.Sqrt2 * 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RayBox(tt.origin, tt.dir, tt.maxDist, box)
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tt.wantHit)
			}
			if ok && math.Abs(got-tt.wantT) > 1e-9 {
				t.Errorf("distance = %v, want %v", got, tt.wantT)
			}
		})
	}
}

func TestForwardAndRotateY(t *testing.T) {
	f := Forward(0, 0)
	if math.Abs(f.Z+1) > 1e-9 || math.Abs(f.X) > 1e-9 {
		t.Errorf("Forward(0,0) = %v, want -Z", f)
	}

	// Turning right by 90 degrees looks down -X in this convention.
	f = Forward(math.Pi/2, 0)
	if math.Abs(f.X+1) > 1e-9 {
		t.Errorf("Forward(pi/2,0) = %v, want -X", f)
	}

	// RotateY with the negative yaw takes a world vector back into local space.
	local := f.RotateY(-math.Pi / 2)
	if math.Abs(local.Z+1) > 1e-9 {
		t.Errorf("local forward = %v, want -Z", local)
	}
}

func TestExpSmoothing(t *testing.T) {
	if got := ExpSmoothing(0, 1); got != 0 {
		t.Errorf("zero rate = %v, want 0", got)
	}
	a := ExpSmoothing(10, 1.0/60)
	if a <= 0 || a >= 1 {
		t.Errorf("factor %v out of (0,1)", a)
	}
	// Two half steps equal one full step.
	half := ExpSmoothing(10, 1.0/120)
	if math.Abs((1-(1-half)*(1-half))-a) > 1e-12 {
		t.Errorf("smoothing is not frame-rate independent")
	}
}
