package model

// Filter returns the products satisfying spec, in the same relative order as
// the input. It is a pure function of its arguments: the input slice is never
// modified and no state survives between calls. A nil spec selects every
// product, matching AllOf with zero children.
func Filter(items []*Product, spec Specification) []*Product {
	matched := make([]*Product, 0, len(items))

	for _, item := range items {
		if spec == nil || spec.IsSatisfiedBy(item) {
			matched = append(matched, item)
		}
	}

	return matched
}
