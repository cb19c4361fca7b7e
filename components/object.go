package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceScale is the number of resolv units per world unit. resolv registers
// objects in cells as if coordinates were whole pixels, so footprints smaller
// than one world unit are scaled up before they enter the space.
const SpaceScale = 16.0

// ObjectData links an entry to its resolv object. The object's rectangle is
// the entry's footprint on the ground plane (world X/Z) times SpaceScale.
type ObjectData struct {
	*resolv.Object
}

// Footprint returns the ground rectangle in world units.
func (o ObjectData) Footprint() (x, z, w, d float64) {
	return o.X / SpaceScale, o.Y / SpaceScale, o.W / SpaceScale, o.H / SpaceScale
}

// Contains reports whether the world point (x, z) lies inside the footprint.
func (o ObjectData) Contains(x, z float64) bool {
	fx, fz, fw, fd := o.Footprint()
	return x >= fx && x <= fx+fw && z >= fz && z <= fz+fd
}

// NewFootprintObject creates a resolv object for a ground rectangle given in
// world units.
func NewFootprintObject(x, z, w, d float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x*SpaceScale, z*SpaceScale, w*SpaceScale, d*SpaceScale, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w*SpaceScale, d*SpaceScale))
	return obj
}

// NewFootprintSpace creates a space covering width x depth world units with
// square cells of the given world size.
func NewFootprintSpace(width, depth, cell int) *resolv.Space {
	s := int(SpaceScale)
	return resolv.NewSpace(width*s, depth*s, cell*s, cell*s)
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
