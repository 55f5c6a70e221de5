// Package catalog holds the static category catalog: each category with the
// affinity score used by ranking policies. The catalog is read-only once built.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mood-filter/internal/domain"
)

const (
	MinScore = 0
	MaxScore = 2
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Entry es una fila del catalogo.
type Entry struct {
	Category domain.Category `json:"category" yaml:"category"`
	Score    int             `json:"score" yaml:"score"`
}

// Catalog maps categories to affinity scores and keeps declaration order.
type Catalog struct {
	entries []Entry
	index   map[domain.Category]int
}

var defaultEntries = []Entry{
	{Category: domain.CategoryAcademic, Score: 1},
	{Category: domain.CategoryEntertainment, Score: 2},
	{Category: domain.CategoryNews, Score: 0},
	{Category: domain.CategoryTech, Score: 1},
	{Category: domain.CategoryBusiness, Score: 1},
	{Category: domain.CategoryPolitics, Score: 0},
	{Category: domain.CategoryArt, Score: 1},
	{Category: domain.CategoryMusic, Score: 2},
	{Category: domain.CategoryLifestyle, Score: 1},
	{Category: domain.CategoryComedy, Score: 2},
	{Category: domain.CategoryInspirational, Score: 2},
	{Category: domain.CategorySports, Score: 1},
}

// Default devuelve el catalogo embebido en el binario.
func Default() *Catalog {
	c, err := New(defaultEntries)
	if err != nil {
		panic(err)
	}
	return c
}

// New valida las entradas y construye un catalogo.
func New(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrInvalidCatalog)
	}
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[domain.Category]int, len(entries)),
	}
	for _, e := range entries {
		if !e.Category.IsValid() {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidCatalog, domain.ErrUnknownCategory, e.Category)
		}
		if e.Score < MinScore || e.Score > MaxScore {
			return nil, fmt.Errorf("%w: score %d for %s outside %d..%d", ErrInvalidCatalog, e.Score, e.Category, MinScore, MaxScore)
		}
		if _, dup := c.index[e.Category]; dup {
			return nil, fmt.Errorf("%w: %s declared twice", ErrInvalidCatalog, e.Category)
		}
		c.index[e.Category] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

type catalogFile struct {
	Categories []Entry `yaml:"categories"`
}

// Load lee un catalogo YAML con la forma:
//
//	categories:
//	  - category: Music
//	    score: 2
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidCatalog, path, err)
	}
	return New(file.Categories)
}

// Score devuelve la afinidad de una categoria.
func (c *Catalog) Score(cat domain.Category) (int, bool) {
	i, ok := c.index[cat]
	if !ok {
		return 0, false
	}
	return c.entries[i].Score, true
}

func (c *Catalog) Contains(cat domain.Category) bool {
	_, ok := c.index[cat]
	return ok
}

// Entries returns a copy in declaration order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}
