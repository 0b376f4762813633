// Package registry holds the fixed catalog of spending and income
// categories. The catalog is loaded once per process, shared read-only, and
// outlives any session; nothing mutates it at runtime.
package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wealthai/internal/models"
)

// Registry is the immutable category catalog. Order is significant: the
// aggregation engine uses catalog order for display and for tie-breaking.
type Registry struct {
	categories []models.Category
	index      map[string]int
}

// catalogFile is the YAML shape of an optional category override file.
type catalogFile struct {
	Categories []models.Category `yaml:"categories"`
}

// Default returns the built-in category catalog.
func Default() *Registry {
	reg, err := New([]models.Category{
		{ID: "cat1", Name: "Food", Icon: "🍴", Color: "#EF4444"},
		{ID: "cat2", Name: "Transport", Icon: "🚗", Color: "#3B82F6"},
		{ID: "cat3", Name: "Salary", Icon: "💰", Color: "#10B981"},
		{ID: "cat4", Name: "Entertainment", Icon: "🎮", Color: "#F59E0B"},
		{ID: "cat5", Name: "Shopping", Icon: "🛍️", Color: "#8B5CF6"},
		{ID: "cat6", Name: "Other", Icon: "📦", Color: "#6B7280"},
	})
	if err != nil {
		// The built-in catalog is statically valid.
		panic(err)
	}
	return reg
}

// New builds a Registry from the given categories, preserving their order.
func New(categories []models.Category) (*Registry, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("category catalog cannot be empty")
	}

	index := make(map[string]int, len(categories))
	for i, cat := range categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("category at position %d has an empty id", i)
		}
		if _, dup := index[cat.ID]; dup {
			return nil, fmt.Errorf("duplicate category id '%s'", cat.ID)
		}
		index[cat.ID] = i
	}

	return &Registry{
		categories: append([]models.Category{}, categories...),
		index:      index,
	}, nil
}

// LoadFile reads a category catalog from a YAML file.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read category file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("could not parse category file '%s': %w", path, err)
	}

	return New(file.Categories)
}

// Categories returns the catalog in registry order.
func (r *Registry) Categories() []models.Category {
	return append([]models.Category{}, r.categories...)
}

// ByID looks up a category by its identifier.
func (r *Registry) ByID(id string) (models.Category, bool) {
	i, ok := r.index[id]
	if !ok {
		return models.Category{}, false
	}
	return r.categories[i], true
}

// IndexOf returns the catalog position of a category id, or -1 if unknown.
func (r *Registry) IndexOf(id string) int {
	i, ok := r.index[id]
	if !ok {
		return -1
	}
	return i
}

// Len returns the number of categories in the catalog.
func (r *Registry) Len() int {
	return len(r.categories)
}
