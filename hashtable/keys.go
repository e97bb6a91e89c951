package hashtable

import (
	"bytes"
	"hash/fnv"

	"github.com/cespare/xxhash/v2"
)

// String is a ready-made string element hashed with FNV-1a.
type String string

func (s String) Hash() int {
	h := fnv.New32a()
	h.Write([]byte(s))
	return int(h.Sum32())
}

func (s String) Equal(other String) bool {
	return s == other
}

// Int is a ready-made integer element using the identity hash.
type Int int

func (i Int) Hash() int {
	return int(i)
}

func (i Int) Equal(other Int) bool {
	return i == other
}

// Bytes is a ready-made byte-slice element hashed with xxhash. The 64-bit
// sum is truncated to int and may come out negative.
type Bytes []byte

func (b Bytes) Hash() int {
	return int(xxhash.Sum64(b))
}

func (b Bytes) Equal(other Bytes) bool {
	return bytes.Equal(b, other)
}
