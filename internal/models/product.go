package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownColor is returned by ParseColor for text that names no Color.
	ErrUnknownColor = errors.New("unknown color")

	// ErrUnknownSize is returned by ParseSize for text that names no Size.
	ErrUnknownSize = errors.New("unknown size")
)

// Color is the color of a product.
type Color string

const (
	ColorRed   Color = "red"
	ColorGreen Color = "green"
	ColorBlue  Color = "blue"
)

// ValidColors is the set of all valid colors.
var ValidColors = []Color{
	ColorRed,
	ColorGreen,
	ColorBlue,
}

// IsValid returns true if the color is recognized.
func (c Color) IsValid() bool {
	for _, v := range ValidColors {
		if c == v {
			return true
		}
	}
	return false
}

func (c Color) String() string { return string(c) }

// ParseColor converts user or file input into a Color.
func ParseColor(s string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return c, nil
}

// Size is the size class of a product.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// ValidSizes is the set of all valid sizes.
var ValidSizes = []Size{
	SizeSmall,
	SizeMedium,
	SizeLarge,
}

// IsValid returns true if the size is recognized.
func (s Size) IsValid() bool {
	for i := range ValidSizes {
		if s == ValidSizes[i] {
			return true
		}
	}
	return false
}

func (s Size) String() string { return string(s) }

// ParseSize converts user or file input into a Size.
func ParseSize(s string) (Size, error) {
	sz := Size(strings.ToLower(strings.TrimSpace(s)))
	if !sz.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSize, s)
	}
	return sz, nil
}

// Colored is implemented by anything that exposes a Color.
type Colored interface {
	Color() Color
}

// Sized is implemented by anything that exposes a Size.
type Sized interface {
	Size() Size
}

// Product is a catalog entry. It is a value type and cannot be changed after
// NewProduct returns.
type Product struct {
	name  string
	color Color
	size  Size
}

// NewProduct creates a product.
func NewProduct(name string, color Color, size Size) Product {
	return Product{name: name, color: color, size: size}
}

func (p Product) Name() string { return p.name }
func (p Product) Color() Color { return p.color }
func (p Product) Size() Size   { return p.size }

// String renders the product as "<size> <color> <name>".
func (p Product) String() string {
	return fmt.Sprintf("%s %s %s", p.size, p.color, p.name)
}

type productJSON struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
	Size  Size   `json:"size"`
}

// MarshalJSON encodes the product as {"name","color","size"}.
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{Name: p.name, Color: p.color, Size: p.size})
}
