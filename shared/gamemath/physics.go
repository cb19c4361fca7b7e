package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ApplyFrictionPlanar applies friction to the horizontal (X/Z) components of a
// velocity, leaving the vertical component untouched.
func ApplyFrictionPlanar(v Vec3, friction float64) Vec3 {
	return Vec3{
		X: ApplyFriction(v.X, friction),
		Y: v.Y,
		Z: ApplyFriction(v.Z, friction),
	}
}

// ClampPlanar clamps the horizontal components of a velocity to [-max, max].
func ClampPlanar(v Vec3, max float64) Vec3 {
	return Vec3{X: ClampSpeed(v.X, max), Y: v.Y, Z: ClampSpeed(v.Z, max)}
}
