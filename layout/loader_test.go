package layout

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/automoto/verlet-chains/verlet"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="1" name="Chains">
  <object id="2" name="east" x="500" y="5">
   <properties>
    <property name="loose" type="bool" value="true"/>
   </properties>
  </object>
  <object id="1" name="west" x="100" y="0">
   <properties>
    <property name="points" type="int" value="4"/>
    <property name="separation" type="float" value="30"/>
    <property name="chaos" type="float" value="8"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Ties">
  <object id="3" x="0" y="0">
   <properties>
    <property name="from" value="west"/>
    <property name="to" value="east"/>
    <property name="length" type="float" value="250"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadLayout(t *testing.T) {
	fsys := fstest.MapFS{
		"layouts/test.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}

	l, err := LoadLayout(fsys, "layouts/test.tmx")
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}

	if l.Name != "test" || l.Width != 640 || l.Height != 320 {
		t.Fatalf("layout header = %q %dx%d, want test 640x320", l.Name, l.Width, l.Height)
	}
	if len(l.Chains) != 2 {
		t.Fatalf("chains = %d, want 2", len(l.Chains))
	}

	west, east := l.Chains[0], l.Chains[1]
	if west.Name != "west" || west.X != 100 || west.Points != 4 || west.Separation != 30 || west.Chaos != 8 || west.Loose {
		t.Fatalf("west chain = %+v", west)
	}
	if east.Name != "east" || east.Points != DefaultPoints || east.Separation != DefaultSeparation || !east.Loose {
		t.Fatalf("east chain should fall back to defaults and be loose, got %+v", east)
	}

	if len(l.Ties) != 1 || l.Ties[0] != (Tie{From: "west", To: "east", Length: 250}) {
		t.Fatalf("ties = %+v", l.Ties)
	}
}

func TestLoadLayoutWithoutChains(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="1" nextobjectid="1">
</map>
`)},
	}
	if _, err := LoadLayout(fsys, "empty.tmx"); err == nil {
		t.Fatalf("expected error for layout without chains")
	}
	if _, err := LoadLayout(fsys, "missing.tmx"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadAllBundledLayouts(t *testing.T) {
	layouts, names, err := LoadAll(os.DirFS("../assets"), "layouts")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) != len(layouts) || len(names) < 3 {
		t.Fatalf("loaded %d layouts (%v)", len(layouts), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}

	twin, ok := layouts["twin"]
	if !ok {
		t.Fatalf("twin layout missing from %v", names)
	}
	if twin.Width != 1280 || twin.Height != 720 || len(twin.Chains) != 2 || len(twin.Ties) != 1 {
		t.Fatalf("twin layout = %+v", twin)
	}

	// Every bundled layout must build cleanly.
	for _, name := range names {
		if _, err := Build(verlet.New(), layouts[name], nil); err != nil {
			t.Fatalf("build %s: %v", name, err)
		}
	}
}

func TestLoadAllEmptyDir(t *testing.T) {
	if _, _, err := LoadAll(fstest.MapFS{}, "layouts"); err == nil {
		t.Fatalf("expected error when no layouts exist")
	}
}
