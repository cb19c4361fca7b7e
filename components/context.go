package components

import (
	"sort"

	cfg "github.com/automoto/fpsmelee/config"
	"github.com/yohamta/donburi"
)

// ActionMapRegistry holds the registered action maps and which are enabled.
type ActionMapRegistry struct {
	maps    map[string]cfg.ActionMap
	enabled map[string]bool
}

func NewActionMapRegistry(maps ...cfg.ActionMap) *ActionMapRegistry {
	r := &ActionMapRegistry{
		maps:    make(map[string]cfg.ActionMap, len(maps)),
		enabled: make(map[string]bool, len(maps)),
	}
	for _, m := range maps {
		r.Register(m)
	}
	return r
}

// Register adds or replaces a map. New maps start disabled.
func (r *ActionMapRegistry) Register(m cfg.ActionMap) {
	r.maps[m.Name] = m
	if _, ok := r.enabled[m.Name]; !ok {
		r.enabled[m.Name] = false
	}
}

func (r *ActionMapRegistry) Enable(name string) bool {
	if _, ok := r.maps[name]; !ok {
		return false
	}
	r.enabled[name] = true
	return true
}

func (r *ActionMapRegistry) Disable(name string) {
	if _, ok := r.maps[name]; ok {
		r.enabled[name] = false
	}
}

func (r *ActionMapRegistry) Enabled(name string) bool {
	return r.enabled[name]
}

// EnabledMaps returns the enabled maps sorted by name.
func (r *ActionMapRegistry) EnabledMaps() []cfg.ActionMap {
	names := make([]string, 0, len(r.maps))
	for name, on := range r.enabled {
		if on {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make([]cfg.ActionMap, 0, len(names))
	for _, name := range names {
		out = append(out, r.maps[name])
	}
	return out
}

// GameplayContextData is the explicitly injected gameplay context shared by
// weapons: input action maps and the camera's target field of view.
type GameplayContextData struct {
	ActionMaps *ActionMapRegistry
	TargetFOV  float64
}

var GameplayContext = donburi.NewComponentType[GameplayContextData]()
