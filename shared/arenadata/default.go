package arenadata

// Default is the built-in arena used when no TMX file is configured: a walled
// square with a ring of target dummies, a prop crate and a trigger volume.
func Default(width, depth, targetSize float64) *ArenaData {
	const t = 1.0
	cx, cz := width/2, depth/2
	half := targetSize / 2

	data := &ArenaData{
		Width: width,
		Depth: depth,
		Walls: []Box{
			{X: 0, Z: 0, W: width, D: t, Name: "north"},
			{X: 0, Z: depth - t, W: width, D: t, Name: "south"},
			{X: 0, Z: t, W: t, D: depth - 2*t, Name: "west"},
			{X: width - t, Z: t, W: t, D: depth - 2*t, Name: "east"},
		},
		Props: []Box{
			{X: cx + 4, Z: cz + 4, W: 1, D: 1, Height: 1, Name: "crate"},
		},
		Triggers: []Box{
			{X: cx - 6, Z: cz - 1, W: 2, D: 2, Height: 2, Name: "zone", Message: "{attack} to strike, {alt} to backhand, {holster} to holster"},
		},
		Spawn: SpawnPoint{X: cx, Z: cz + 4},
	}

	for i, off := range []float64{-3, 0, 3} {
		data.Targets = append(data.Targets, Box{
			X:    cx + off - half,
			Z:    cz - 2 - half,
			W:    targetSize,
			D:    targetSize,
			Name: [...]string{"left", "center", "right"}[i],
		})
	}
	return data
}
