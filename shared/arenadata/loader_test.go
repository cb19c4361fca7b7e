package arenadata

import (
	"testing"
	"testing/fstest"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="16" tileheight="16" infinite="0" nextlayerid="5" nextobjectid="6">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="160" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="Targets">
  <object id="2" name="dummy" x="32" y="48" width="16" height="16">
   <properties>
    <property name="height" type="float" value="1.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Triggers">
  <object id="5" name="hint" x="16" y="16" width="32" height="32">
   <properties>
    <property name="message" value="{attack} to strike"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Spawn">
  <object id="3" x="80" y="96">
   <properties>
    <property name="yaw" type="float" value="1.25"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{"arena.tmx": {Data: []byte(arenaTMX)}}

	data, err := LoadArena(fsys, "arena.tmx", 1)
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	if data.Width != 10 || data.Depth != 8 {
		t.Errorf("size = %vx%v, want 10x8", data.Width, data.Depth)
	}
	if len(data.Walls) != 1 {
		t.Fatalf("walls = %d, want 1", len(data.Walls))
	}
	if w := data.Walls[0]; w.W != 10 || w.D != 1 {
		t.Errorf("wall = %+v, want 10x1 footprint", w)
	}
	if len(data.Targets) != 1 {
		t.Fatalf("targets = %d, want 1", len(data.Targets))
	}
	target := data.Targets[0]
	if target.X != 2 || target.Z != 3 || target.Height != 1.5 || target.Name != "dummy" {
		t.Errorf("target = %+v", target)
	}
	if len(data.Triggers) != 1 || data.Triggers[0].Message != "{attack} to strike" || data.Triggers[0].W != 2 {
		t.Errorf("triggers = %+v", data.Triggers)
	}
	if data.Spawn.X != 5 || data.Spawn.Z != 6 || data.Spawn.Yaw != 1.25 {
		t.Errorf("spawn = %+v", data.Spawn)
	}
}

func TestLoadArenaMissingFile(t *testing.T) {
	if _, err := LoadArena(fstest.MapFS{}, "missing.tmx", 1); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestDefaultArena(t *testing.T) {
	data := Default(32, 32, 0.8)
	if len(data.Walls) != 4 {
		t.Errorf("walls = %d, want 4", len(data.Walls))
	}
	if len(data.Targets) != 3 {
		t.Errorf("targets = %d, want 3", len(data.Targets))
	}
	for _, tg := range data.Targets {
		if tg.X < 0 || tg.Z < 0 || tg.X+tg.W > 32 || tg.Z+tg.D > 32 {
			t.Errorf("target %q outside the arena: %+v", tg.Name, tg)
		}
	}
}
