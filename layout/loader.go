package layout

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Tiled object group names.
const (
	GroupChains = "Chains"
	GroupTies   = "Ties"
)

// LoadLayout parses a TMX map. Objects in the "Chains" group become chains
// anchored at the object position; objects in "Ties" join chain ends.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	l := &Layout{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case GroupChains:
			for _, o := range og.Objects {
				c := Chain{
					Name:       o.Name,
					X:          o.X,
					Y:          o.Y,
					Points:     o.Properties.GetInt("points"),
					Separation: o.Properties.GetFloat("separation"),
					Chaos:      o.Properties.GetFloat("chaos"),
					Loose:      o.Properties.GetBool("loose"),
				}
				if c.Name == "" {
					c.Name = fmt.Sprintf("chain-%d", o.ID)
				}
				if c.Points == 0 {
					c.Points = DefaultPoints
				}
				if c.Separation == 0 {
					c.Separation = DefaultSeparation
				}
				l.Chains = append(l.Chains, c)
			}
		case GroupTies:
			for _, o := range og.Objects {
				l.Ties = append(l.Ties, Tie{
					From:   o.Properties.GetString("from"),
					To:     o.Properties.GetString("to"),
					Length: o.Properties.GetFloat("length"),
				})
			}
		}
	}

	if len(l.Chains) == 0 {
		return nil, fmt.Errorf("load TMX %s: no objects in %q group", tmxPath, GroupChains)
	}

	// Left to right, so point indices follow screen order.
	sort.SliceStable(l.Chains, func(i, j int) bool {
		return l.Chains[i].X < l.Chains[j].X
	})

	return l, nil
}

// LoadAll loads every .tmx file in dir, returning layouts keyed by file stem
// and the sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Layout, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	layouts := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		l, err := LoadLayout(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		layouts[l.Name] = l
		names = append(names, l.Name)
	}

	sort.Strings(names)
	return layouts, names, nil
}
