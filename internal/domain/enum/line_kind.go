package enum

// LineKind distinguishes the two sellable unit types in a cart.
type LineKind string

const (
	// LineKindStockedProduct is a catalog product backed by warehouse stock.
	LineKindStockedProduct LineKind = "STOCKED_PRODUCT"
	// LineKindUniqueLabItem is a lab material sellable at most once system-wide.
	LineKindUniqueLabItem LineKind = "UNIQUE_LAB_ITEM"
)

// ParseLineKind converts a wire string into a LineKind, reporting whether it is known.
func ParseLineKind(s string) (LineKind, bool) {
	k := LineKind(s)
	return k, k.Valid()
}

// Valid reports whether the kind is one of the known line kinds.
func (k LineKind) Valid() bool {
	return k == LineKindStockedProduct || k == LineKindUniqueLabItem
}

func (k LineKind) String() string {
	return string(k)
}
