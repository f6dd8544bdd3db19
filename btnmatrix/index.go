package btnmatrix

// Index is an optional button index. The zero value is None.
type Index struct {
	v   int
	set bool
}

// None refers to no button.
var None Index

// At returns an Index referring to button i. Negative values yield None.
func At(i int) Index {
	if i < 0 {
		return None
	}
	return Index{v: i, set: true}
}

// Get returns the button index and whether one is set.
func (x Index) Get() (int, bool) {
	return x.v, x.set
}

// Valid reports whether x refers to a button.
func (x Index) Valid() bool {
	return x.set
}

// Int returns the index, or -1 for None. Handy for logging and tests.
func (x Index) Int() int {
	if !x.set {
		return -1
	}
	return x.v
}
