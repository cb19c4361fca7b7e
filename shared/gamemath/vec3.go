package gamemath

import (
	"fmt"
	"math"
)

// Vec3 is a value-type 3D vector. Y is up, -Z is forward at zero yaw.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns the unit vector, or the zero vector when v has no length.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Lerp moves v toward target by t (0..1).
func (v Vec3) Lerp(target Vec3, t float64) Vec3 {
	return v.Add(target.Sub(v).Scale(t))
}

func (v Vec3) String() string {
	return fmt.Sprintf("{%.2f, %.2f, %.2f}", v.X, v.Y, v.Z)
}

// RotateY rotates v around the up axis by yaw radians.
func (v Vec3) RotateY(yaw float64) Vec3 {
	s, c := math.Sincos(yaw)
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// Forward returns the unit look direction for a yaw/pitch pair in radians.
func Forward(yaw, pitch float64) Vec3 {
	sp, cp := math.Sincos(pitch)
	sy, cy := math.Sincos(yaw)
	return Vec3{X: -sy * cp, Y: sp, Z: -cy * cp}
}

// ExpSmoothing returns the lerp factor for frame-rate independent smoothing
// at the given rate (1/s) over dt seconds.
func ExpSmoothing(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Pose is a positional offset plus euler rotation (pitch, yaw, roll) in degrees.
type Pose struct {
	Position Vec3
	Rotation Vec3
}

func (p Pose) Add(o Pose) Pose {
	return Pose{Position: p.Position.Add(o.Position), Rotation: p.Rotation.Add(o.Rotation)}
}

// Box is an axis aligned bounding box.
type Box struct {
	Min, Max Vec3
}

// RayBox intersects the ray origin+dir*t (t in [0, maxDist]) with b using the
// slab method. It returns the entry distance; origins inside the box hit at 0.
func RayBox(origin, dir Vec3, maxDist float64, b Box) (float64, bool) {
	tMin, tMax := 0.0, maxDist
	o := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{dir.X, dir.Y, dir.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / d[i]
		t1 := (lo[i] - o[i]) * inv
		t2 := (hi[i] - o[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
