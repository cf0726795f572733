package levels

import (
	"github.com/vovakirdan/puzzlekit/internal/difficulty"
)

// Catalog is the ordered level source. Level numbers are zero-based
// positions in the catalog.
type Catalog struct {
	levels []Level
	index  difficulty.Index
}

// NewCatalog creates a catalog over the given levels, in order.
func NewCatalog(levels []Level) *Catalog {
	return &Catalog{
		levels: append([]Level(nil), levels...),
		index:  difficulty.NewIndex(len(levels)),
	}
}

// Load builds a catalog from dir, or from the embedded pack when dir is empty.
func Load(dir string) (*Catalog, error) {
	loader := DefaultLoader()
	if dir != "" {
		loader = NewLoader(dir)
	}
	lvls, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	return NewCatalog(lvls), nil
}

// Count returns the number of levels.
func (c *Catalog) Count() int {
	return len(c.levels)
}

// Level returns the level with the given number.
func (c *Catalog) Level(levelNumber int) (Level, bool) {
	if levelNumber < 0 || levelNumber >= len(c.levels) {
		return Level{}, false
	}
	return c.levels[levelNumber], true
}

// Index returns the level-number index derived from the catalog length.
func (c *Catalog) Index() difficulty.Index {
	return c.index
}

// LevelNumbersIn returns the level numbers belonging to a difficulty tier.
func (c *Catalog) LevelNumbersIn(t difficulty.Tier) []int {
	return c.index.LevelNumbersIn(t)
}
