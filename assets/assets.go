package assets

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	"github.com/automoto/verlet-chains/layout"
)

var (
	//go:embed all:layouts
	layoutFS embed.FS
)

type LayoutLoader struct {
	once    sync.Once
	layouts map[string]*layout.Layout
	names   []string
	err     error
}

func NewLayoutLoader() *LayoutLoader {
	return &LayoutLoader{}
}

var layoutLoader = NewLayoutLoader()

// LoadLayouts parses every bundled layout once and returns them with their
// names in sorted order.
func (l *LayoutLoader) LoadLayouts() (map[string]*layout.Layout, []string, error) {
	l.once.Do(func() {
		l.layouts, l.names, l.err = layout.LoadAll(layoutFS, "layouts")
	})
	return l.layouts, l.names, l.err
}

// Layout returns the bundled layout called name. An empty name picks the first one.
func (l *LayoutLoader) Layout(name string) (*layout.Layout, error) {
	layouts, names, err := l.LoadLayouts()
	if err != nil {
		return nil, err
	}
	if name == "" {
		if len(names) == 0 {
			return nil, fmt.Errorf("no bundled layouts")
		}
		name = names[0]
	}
	found, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q (have %v)", name, names)
	}
	return found, nil
}

// NextLayoutName returns the name after current in sorted order, wrapping around.
func (l *LayoutLoader) NextLayoutName(current string) string {
	_, names, err := l.LoadLayouts()
	if err != nil || len(names) == 0 {
		return current
	}
	i := sort.SearchStrings(names, current)
	if i < len(names) && names[i] == current {
		i++
	}
	return names[i%len(names)]
}

func GetLayout(name string) (*layout.Layout, error) {
	return layoutLoader.Layout(name)
}

func NextLayoutName(current string) string {
	return layoutLoader.NextLayoutName(current)
}

func LayoutNames() []string {
	_, names, _ := layoutLoader.LoadLayouts()
	return names
}
