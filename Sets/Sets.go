package Sets

// Set of comparable elements. Unlike the maps it's built on, a Set never holds the same element twice.
type Set[E comparable] interface {
	//Put e into the set. Returns false if e was already present.
	Put(E) bool
	Has(E) bool
	//Remove e from the set. Returns false if e wasn't present.
	Remove(E) bool
	Size() uint
}
