// Package arenadata provides TMX arena parsing for the sandbox.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package arenadata

// ArenaData holds every collider parsed from a TMX arena, in world units.
// X/Z are ground plane coordinates; tiled's Y axis maps to world Z.
type ArenaData struct {
	Width, Depth float64
	Walls        []Box
	Targets      []Box
	Props        []Box
	Triggers     []Box
	Spawn        SpawnPoint
}

// Box is a ground footprint with a vertical extent.
type Box struct {
	X, Z, W, D float64
	Height     float64 // Zero means the default height for the kind
	Name       string
	Message    string // Text shown while the character stands inside a trigger
}

// SpawnPoint is where the character starts, facing Yaw radians.
type SpawnPoint struct {
	X, Z float64
	Yaw  float64
}
