package catalog

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/GlebRadaev/minipoints/internal/domain"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyCatalog  = errors.New("catalog has no items")
	ErrInvalidItem   = errors.New("invalid catalog item")
	ErrDuplicateItem = errors.New("duplicate catalog item id")
)

// Catalog is an immutable list of redeemable items. Safe for concurrent use.
type Catalog struct {
	items []domain.CatalogItem
	byID  map[string]domain.CatalogItem
}

type file struct {
	Items []domain.CatalogItem `yaml:"items"`
}

var defaultItems = []domain.CatalogItem{
	{ID: "basic-prompt", Name: "Basic İstem Paketi", Points: 100, Description: "1 adet kısa istem şablonu"},
	{ID: "pro-prompt", Name: "Pro İstem Paketi", Points: 250, Description: "5 adet optimize istem şablonu"},
	{ID: "team-prompt", Name: "Takım Paketi", Points: 500, Description: "20 adet gelişmiş istem şablonu"},
}

func Default() *Catalog {
	c, err := New(defaultItems)
	if err != nil {
		panic(err)
	}
	return c
}

func New(items []domain.CatalogItem) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		items: slices.Clone(items),
		byID:  make(map[string]domain.CatalogItem, len(items)),
	}
	for _, item := range items {
		if item.ID == "" || item.Name == "" || item.Points <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidItem, item.ID)
		}
		if _, ok := c.byID[item.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateItem, item.ID)
		}
		c.byID[item.ID] = item
	}
	return c, nil
}

// Load reads a YAML catalog from path. An empty path selects the builtin catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		zap.L().Info("using builtin catalog", zap.Int("items", len(defaultItems)))
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	c, err := New(f.Items)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	zap.L().Info("catalog loaded", zap.String("path", path), zap.Int("items", len(c.items)))
	return c, nil
}

// Items returns a copy in catalog order.
func (c *Catalog) Items() []domain.CatalogItem {
	return slices.Clone(c.items)
}

func (c *Catalog) Find(id string) (domain.CatalogItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}
