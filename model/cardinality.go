package model

import (
	"fmt"
	"strconv"
)

// Unbounded is the Max of a Cardinality without an upper bound ("*").
const Unbounded = -1

// Cardinality holds the minimum and maximum number of occurrences of a field.
type Cardinality struct {
	Min int
	Max int
}

// ParseCardinality parses the textual bounds used in StructureDefinitions,
// where max is either "*" or a non-negative decimal integer.
func ParseCardinality(min int, max string) (Cardinality, error) {
	if min < 0 {
		return Cardinality{}, fmt.Errorf("invalid min cardinality %d", min)
	}
	if max == "*" {
		return Cardinality{Min: min, Max: Unbounded}, nil
	}

	m, err := strconv.Atoi(max)
	if err != nil || m < 0 {
		return Cardinality{}, fmt.Errorf("invalid max cardinality %q", max)
	}
	if m < min {
		return Cardinality{}, fmt.Errorf("max cardinality %d is lower than min %d", m, min)
	}

	return Cardinality{Min: min, Max: m}, nil
}

// Allows reports whether n occurrences lie within the bounds.
func (c Cardinality) Allows(n int) bool {
	if n < c.Min {
		return false
	}
	return c.Max == Unbounded || n <= c.Max
}

// Repeated reports whether the field may occur more than once.
func (c Cardinality) Repeated() bool {
	return c.Max == Unbounded || c.Max > 1
}

// Implied reports whether the bounds are already enforced by the shape of the
// field alone (optional, required, repeated or required repeated), so that
// no explicit cardinality check has to be generated.
func (c Cardinality) Implied() bool {
	switch {
	case c.Min == 0 && c.Max == 1,
		c.Min == 1 && c.Max == 1,
		c.Min == 0 && c.Max == Unbounded,
		c.Min == 1 && c.Max == Unbounded:
		return true
	}
	return false
}

func (c Cardinality) String() string {
	if c.Max == Unbounded {
		return fmt.Sprintf("%d..*", c.Min)
	}
	return fmt.Sprintf("%d..%d", c.Min, c.Max)
}
