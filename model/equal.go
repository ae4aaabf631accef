package model

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Equal compares two possibly absent elements structurally.
func Equal(a, b Element) bool {
	an, bn := IsNil(a), IsNil(b)
	if an || bn {
		return an == bn
	}
	return a.Equal(b)
}

// EqualSlices compares two repeated fields entry by entry.
// A nil and an empty slice are equal.
func EqualSlices[T Element](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// EqualValues compares two optional plain values.
func EqualValues[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Hasher accumulates the fields of an element into a 64 bit hash.
//
// Every write is prefixed so that adjacent fields can not collide,
// e.g. ("ab", "c") and ("a", "bc").
type Hasher struct {
	d   *xxhash.Digest
	buf [9]byte
}

// NewHasher starts a hash for an element of the given type.
func NewHasher(typeName string) *Hasher {
	h := &Hasher{d: xxhash.New()}
	h.String(typeName)
	return h
}

const (
	tagAbsent byte = iota
	tagString
	tagBool
	tagInt
	tagFloat
	tagElement
	tagList
)

func (h *Hasher) writeUint(tag byte, v uint64) {
	h.buf[0] = tag
	binary.LittleEndian.PutUint64(h.buf[1:], v)
	_, _ = h.d.Write(h.buf[:])
}

func (h *Hasher) absent() {
	_, _ = h.d.Write([]byte{tagAbsent})
}

// String writes a string.
func (h *Hasher) String(s string) {
	h.writeUint(tagString, uint64(len(s)))
	_, _ = h.d.WriteString(s)
}

// Bool writes a bool.
func (h *Hasher) Bool(b bool) {
	var v uint64
	if b {
		v = 1
	}
	h.writeUint(tagBool, v)
}

// Int writes an integer.
func (h *Hasher) Int(i int64) {
	h.writeUint(tagInt, uint64(i))
}

// Float writes a float.
func (h *Hasher) Float(f float64) {
	h.writeUint(tagFloat, math.Float64bits(f))
}

// OptString writes an optional string.
func (h *Hasher) OptString(s *string) {
	if s == nil {
		h.absent()
		return
	}
	h.String(*s)
}

// OptBool writes an optional bool.
func (h *Hasher) OptBool(b *bool) {
	if b == nil {
		h.absent()
		return
	}
	h.Bool(*b)
}

// HashOptInt writes an optional integer.
func HashOptInt[T int32 | int64 | uint32](h *Hasher, i *T) {
	if i == nil {
		h.absent()
		return
	}
	h.Int(int64(*i))
}

// Strings writes a repeated string field.
func (h *Hasher) Strings(list []string) {
	h.writeUint(tagList, uint64(len(list)))
	for _, s := range list {
		h.String(s)
	}
}

// Element writes the (memoized) hash of a possibly absent child element.
func (h *Hasher) Element(e Element) {
	if IsNil(e) {
		h.absent()
		return
	}
	h.writeUint(tagElement, e.Hash())
}

// Sum returns the hash.
func (h *Hasher) Sum() uint64 {
	return h.d.Sum64()
}

// HashElements writes a repeated element field.
func HashElements[T Element](h *Hasher, list []T) {
	h.writeUint(tagList, uint64(len(list)))
	for _, e := range list {
		h.Element(e)
	}
}

// HashCache memoizes the hash of an immutable element.
//
// Concurrent first calls may compute the hash more than once,
// which is harmless because every computation yields the same value.
// The zero value is ready to use. A HashCache must not be copied after first use.
type HashCache struct {
	sum  atomic.Uint64
	done atomic.Bool
}

// Load returns the cached hash, computing it with compute on first use.
func (c *HashCache) Load(compute func() uint64) uint64 {
	if c.done.Load() {
		return c.sum.Load()
	}
	sum := compute()
	c.sum.Store(sum)
	c.done.Store(true)
	return sum
}
