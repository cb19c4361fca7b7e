package arenadata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from the TMX file.
const (
	WallLayer    = "walls"
	WallGroup    = "Walls"
	TargetGroup  = "Targets"
	PropGroup    = "Props"
	TriggerGroup = "Triggers"
	SpawnGroup   = "Spawn"
)

var ErrEmptyArena = errors.New("arena has no size")

// LoadArena parses a TMX file into arena data. One tile maps to unitsPerTile
// world units. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string, unitsPerTile float64) (*ArenaData, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if m.Width == 0 || m.Height == 0 || m.TileWidth == 0 || m.TileHeight == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrEmptyArena)
	}

	sx := unitsPerTile / float64(m.TileWidth)
	sz := unitsPerTile / float64(m.TileHeight)
	data := &ArenaData{
		Width: float64(m.Width) * unitsPerTile,
		Depth: float64(m.Height) * unitsPerTile,
		Spawn: SpawnPoint{X: center(m.Width, unitsPerTile), Z: center(m.Height, unitsPerTile)},
	}

	for _, layer := range m.Layers {
		if layer.Name != WallLayer {
			continue
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				if layer.Tiles[y*m.Width+x].IsNil() {
					continue
				}
				data.Walls = append(data.Walls, Box{
					X: float64(x) * unitsPerTile,
					Z: float64(y) * unitsPerTile,
					W: unitsPerTile,
					D: unitsPerTile,
				})
			}
		}
	}

	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			box := Box{
				X:       o.X * sx,
				Z:       o.Y * sz,
				W:       o.Width * sx,
				D:       o.Height * sz,
				Height:  o.Properties.GetFloat("height"),
				Name:    o.Name,
				Message: o.Properties.GetString("message"),
			}
			switch og.Name {
			case WallGroup:
				data.Walls = append(data.Walls, box)
			case TargetGroup:
				data.Targets = append(data.Targets, box)
			case PropGroup:
				data.Props = append(data.Props, box)
			case TriggerGroup:
				data.Triggers = append(data.Triggers, box)
			case SpawnGroup:
				data.Spawn = SpawnPoint{X: box.X, Z: box.Z, Yaw: o.Properties.GetFloat("yaw")}
			}
		}
	}

	return data, nil
}

// center is the middle of an axis of n tiles.
func center(n int, unitsPerTile float64) float64 {
	return float64(n) * unitsPerTile / 2
}
