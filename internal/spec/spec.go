// Package spec implements composable predicates over entities and the filter
// that applies them to a slice.
package spec

import "github.com/spprichard/Generics-Medium-Article/internal/models"

// Specification tests whether a single item satisfies a criterion.
// Implementations must be pure: the result depends only on the criterion
// they hold and the item, and the item is never modified.
type Specification[T any] interface {
	IsSatisfied(item T) bool
}

// Func adapts an ordinary function to a Specification.
type Func[T any] func(item T) bool

// IsSatisfied calls f(item).
func (f Func[T]) IsSatisfied(item T) bool { return f(item) }

// ColorSpec matches items of the given color.
type ColorSpec[T models.Colored] struct {
	color models.Color
}

// ByColor creates a specification for items whose color equals c.
func ByColor[T models.Colored](c models.Color) ColorSpec[T] {
	return ColorSpec[T]{color: c}
}

// IsSatisfied returns true if item has the specified color.
func (s ColorSpec[T]) IsSatisfied(item T) bool {
	return item.Color() == s.color
}

// SizeSpec matches items of the given size.
type SizeSpec[T models.Sized] struct {
	size models.Size
}

// BySize creates a specification for items whose size equals sz.
func BySize[T models.Sized](sz models.Size) SizeSpec[T] {
	return SizeSpec[T]{size: sz}
}

// IsSatisfied returns true if item has the specified size.
func (s SizeSpec[T]) IsSatisfied(item T) bool {
	return item.Size() == s.size
}
