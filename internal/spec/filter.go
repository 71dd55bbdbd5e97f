package spec

// Filter returns the items that satisfy s, in their original order.
// items is not modified and the result never aliases it.
func Filter[T any](items []T, s Specification[T]) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if s.IsSatisfied(items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}
