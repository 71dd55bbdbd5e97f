package spec

// AndSpec is satisfied when both of its children are. Either child may itself
// be an AndSpec, so conjunctions of any depth are built by nesting.
type AndSpec[T any] struct {
	left  Specification[T]
	right Specification[T]
}

// And combines two specifications over the same item type.
func And[T any](left, right Specification[T]) AndSpec[T] {
	return AndSpec[T]{left: left, right: right}
}

// IsSatisfied returns true if item satisfies both children.
func (s AndSpec[T]) IsSatisfied(item T) bool {
	return s.left.IsSatisfied(item) && s.right.IsSatisfied(item)
}
