// Package ptr contains helpers for working with pointers to values.
package ptr

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}

// Clone returns a pointer to a copy of *p, or nil if p is nil.
//
// Builders use it so that a built node never shares storage with the builder it came from.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Deref returns *p, or the zero value of T if p is nil.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
