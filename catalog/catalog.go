// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/danielhkuo/quickly-tally/models"
)

var (
	ErrEmptyCatalog      = errors.New("catalog has no categories")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrDuplicateCategory = errors.New("duplicate category")
	ErrInvalidOption     = errors.New("invalid option")
)

//go:embed default.json
var defaultCatalog []byte

// Category is a named, ordered group of options.
type Category struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// Catalog is the ordered, read-only set of categories.
type Catalog struct {
	categories  []Category
	byName      map[string]int
	optionIdx   map[string]map[string]int
	fingerprint string
}

// New validates categories and builds a catalog. The input is copied.
func New(categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		byName:     make(map[string]int, len(categories)),
		optionIdx:  make(map[string]map[string]int, len(categories)),
	}

	for _, cat := range categories {
		// The separator would make vote keys ambiguous
		if strings.TrimSpace(cat.Name) == "" || strings.Contains(cat.Name, models.KeySeparator) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, cat.Name)
		}
		if cat.Name == models.Unclassified {
			return nil, fmt.Errorf("%w: %q is reserved", ErrInvalidCategory, cat.Name)
		}
		if _, exists := c.byName[cat.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, cat.Name)
		}
		if len(cat.Options) == 0 {
			return nil, fmt.Errorf("%w: category %q has no options", ErrInvalidOption, cat.Name)
		}

		idx := make(map[string]int, len(cat.Options))
		for i, opt := range cat.Options {
			if strings.TrimSpace(opt) == "" {
				return nil, fmt.Errorf("%w: empty option in %q", ErrInvalidOption, cat.Name)
			}
			if _, exists := idx[opt]; exists {
				return nil, fmt.Errorf("%w: duplicate option %q in %q", ErrInvalidOption, opt, cat.Name)
			}
			idx[opt] = i
		}

		c.byName[cat.Name] = len(c.categories)
		c.optionIdx[cat.Name] = idx
		c.categories = append(c.categories, Category{
			Name:    cat.Name,
			Options: append([]string(nil), cat.Options...),
		})
	}

	// JSON keeps name and option boundaries distinct
	encoded, err := json.Marshal(c.categories)
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	sum := sha256.Sum256(encoded)
	c.fingerprint = hex.EncodeToString(sum[:6])

	return c, nil
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse builds a catalog from a JSON array of categories.
func Parse(data []byte) (*Catalog, error) {
	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(categories)
}

// Load reads a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Fingerprint identifies the catalog contents, order included.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

// Len returns the number of categories (and therefore panel pages).
func (c *Catalog) Len() int {
	return len(c.categories)
}

// CategoryNames returns category names in declaration order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Category returns the category at index i. Callers keep i in [0, Len()).
func (c *Catalog) Category(i int) Category {
	cat := c.categories[i]
	return Category{Name: cat.Name, Options: append([]string(nil), cat.Options...)}
}

// OptionsFor returns the options of a category in declaration order,
// or nil for an unknown category.
func (c *Catalog) OptionsFor(name string) []string {
	i, ok := c.byName[name]
	if !ok {
		return nil
	}
	return append([]string(nil), c.categories[i].Options...)
}

// CategoryIndex returns the declaration position of a category.
func (c *Catalog) CategoryIndex(name string) (int, bool) {
	i, ok := c.byName[name]
	return i, ok
}

// OptionIndex returns the declaration position of an option in a category.
func (c *Catalog) OptionIndex(category, option string) (int, bool) {
	idx, ok := c.optionIdx[category]
	if !ok {
		return 0, false
	}
	i, ok := idx[option]
	return i, ok
}
