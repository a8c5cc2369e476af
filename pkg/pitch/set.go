package pitch

import "math/bits"

// Set is a set of pitch classes packed one bit per class.
// The zero value is the empty set.
type Set uint16

// NewSet returns a Set containing the given classes.
func NewSet(classes ...Class) Set {
	var s Set
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

// With returns the set with the class added.
func (s Set) With(c Class) Set {
	return s | 1<<(int(c)%12)
}

// Has reports whether the class is in the set.
func (s Set) Has(c Class) bool {
	return s&(1<<(int(c)%12)) != 0
}

// ContainsAll reports whether every class in other is also in s.
func (s Set) ContainsAll(other Set) bool {
	return s&other == other
}

// Classes returns the members in ascending class order.
func (s Set) Classes() []Class {
	out := make([]Class, 0, s.Len())
	for c := Class(0); c < 12; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of classes in the set.
func (s Set) Len() int {
	return bits.OnesCount16(uint16(s))
}
