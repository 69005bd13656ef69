package assets

import (
	"slices"
	"testing"
)

func TestBundledLayouts(t *testing.T) {
	names := LayoutNames()
	for _, want := range []string{"curtain", "pendulum", "twin"} {
		if !slices.Contains(names, want) {
			t.Errorf("bundled layouts %v missing %q", names, want)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("layout names not sorted: %v", names)
	}
}

func TestGetLayout(t *testing.T) {
	l, err := GetLayout("twin")
	if err != nil {
		t.Fatalf("GetLayout(twin): %v", err)
	}
	if len(l.Chains) != 2 {
		t.Fatalf("twin has %d chains, want 2", len(l.Chains))
	}

	first, err := GetLayout("")
	if err != nil {
		t.Fatalf("GetLayout(\"\"): %v", err)
	}
	if first.Name != LayoutNames()[0] {
		t.Fatalf("empty name gave %q, want %q", first.Name, LayoutNames()[0])
	}

	if _, err := GetLayout("nope"); err == nil {
		t.Fatal("expected an error for an unknown layout")
	}
}

func TestNextLayoutName(t *testing.T) {
	names := LayoutNames()
	if len(names) < 2 {
		t.Skip("need at least two layouts")
	}
	if got := NextLayoutName(names[0]); got != names[1] {
		t.Errorf("NextLayoutName(%q) = %q, want %q", names[0], got, names[1])
	}
	last := names[len(names)-1]
	if got := NextLayoutName(last); got != names[0] {
		t.Errorf("NextLayoutName(%q) = %q, want wrap to %q", last, got, names[0])
	}
	if got := NextLayoutName("default"); got == "" {
		t.Error("NextLayoutName of an unbundled name should still pick a layout")
	}
}
