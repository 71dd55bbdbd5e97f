// Package catalog holds the ordered product collection that specifications
// are applied to.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spprichard/Generics-Medium-Article/internal/models"
	"github.com/spprichard/Generics-Medium-Article/internal/spec"
)

// Catalog is a read-only, ordered list of products.
type Catalog struct {
	products []models.Product
}

// New creates a catalog holding a copy of products.
func New(products ...models.Product) *Catalog {
	cp := make([]models.Product, len(products))
	copy(cp, products)
	return &Catalog{products: cp}
}

// Sample returns the built-in demonstration catalog.
func Sample() *Catalog {
	return New(
		models.NewProduct("Tree", models.ColorGreen, models.SizeLarge),
		models.NewProduct("Frog", models.ColorGreen, models.SizeSmall),
		models.NewProduct("Strawberry", models.ColorRed, models.SizeSmall),
	)
}

// Products returns a copy of the catalog contents.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int { return len(c.products) }

// Find returns the products satisfying s in catalog order.
func (c *Catalog) Find(s spec.Specification[models.Product]) []models.Product {
	return spec.Filter(c.products, s)
}

type catalogFile struct {
	Products []productEntry `yaml:"products"`
}

type productEntry struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Size  string `yaml:"size"`
}

// Load reads a YAML catalog file of the form
//
//	products:
//	  - {name: Tree, color: green, size: large}
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is operator-supplied
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	products := make([]models.Product, 0, len(f.Products))
	for i, e := range f.Products {
		if e.Name == "" {
			return nil, fmt.Errorf("product %d: name must not be empty", i)
		}
		color, err := models.ParseColor(e.Color)
		if err != nil {
			return nil, fmt.Errorf("product %d (%s): %w", i, e.Name, err)
		}
		size, err := models.ParseSize(e.Size)
		if err != nil {
			return nil, fmt.Errorf("product %d (%s): %w", i, e.Name, err)
		}
		products = append(products, models.NewProduct(e.Name, color, size))
	}
	return &Catalog{products: products}, nil
}
