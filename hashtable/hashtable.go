package hashtable

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultSize is the bucket count used when a requested size is not positive.
	DefaultSize = 4

	// LoadFactorThreshold is the occupancy ratio past which a table is due
	// for a rehash. Add never rehashes on its own; callers check NeedsRehash
	// and invoke Rehash themselves.
	LoadFactorThreshold = 0.75
)

// Hashable constrains the element types the table can store. Hash must be
// deterministic for a given element; Equal defines membership.
type Hashable[E any] interface {
	Hash() int
	Equal(other E) bool
}

// Entry is one node of a bucket chain.
type Entry[E Hashable[E]] struct {
	Content E
	Next    *Entry[E]
}

// HashTable maps elements into buckets by their own hash, resolving
// collisions with singly-linked chains. Duplicate elements are kept as
// separate entries. Not safe for concurrent use.
type HashTable[E Hashable[E]] struct {
	slots      []*Entry[E]
	usage      int // non-empty slots
	totalNodes int // entries across all chains
	loadFactor float64
}

// New returns an empty table with DefaultSize buckets.
func New[E Hashable[E]]() *HashTable[E] {
	return NewWithSize[E](DefaultSize)
}

// NewWithSize returns an empty table with size buckets. A non-positive size
// falls back to DefaultSize.
func NewWithSize[E Hashable[E]](size int) *HashTable[E] {
	if size <= 0 {
		size = DefaultSize
	}
	return &HashTable[E]{slots: make([]*Entry[E], size)}
}

// position derives the bucket index for an element against n buckets. The
// hash is made non-negative before the modulo; math.MinInt saturates to
// math.MaxInt since it has no positive counterpart.
func position[E Hashable[E]](content E, n int) int {
	h := content.Hash()
	if h == math.MinInt {
		h = math.MaxInt
	} else if h < 0 {
		h = -h
	}
	return h % n
}

// Add stores content in its bucket. The new entry becomes the head of the
// chain. Add never fails and never rejects duplicates.
func (t *HashTable[E]) Add(content E) {
	pos := position(content, len(t.slots))
	entry := &Entry[E]{Content: content}
	if t.slots[pos] == nil {
		t.slots[pos] = entry
		t.usage++
	} else {
		entry.Next = t.slots[pos]
		t.slots[pos] = entry
	}
	t.totalNodes++
	t.loadFactor = float64(t.usage) / float64(len(t.slots))
}

// Contains reports whether an element equal to target is stored. Equality is
// the element's Equal contract, not identity.
func (t *HashTable[E]) Contains(target E) bool {
	for cur := t.slots[position(target, len(t.slots))]; cur != nil; cur = cur.Next {
		if cur.Content.Equal(target) {
			return true
		}
	}
	return false
}

// NeedsRehash reports whether occupancy has crossed LoadFactorThreshold.
func (t *HashTable[E]) NeedsRehash() bool {
	return t.loadFactor > LoadFactorThreshold
}

// Rehash doubles the bucket count and relinks every entry into its new
// bucket. Entries are moved, not copied. Entries that collapse into the same
// new bucket come out in reverse of their old chain order.
func (t *HashTable[E]) Rehash() {
	newSlots := make([]*Entry[E], len(t.slots)*2)
	t.usage = 0
	t.totalNodes = 0
	for _, head := range t.slots {
		for cur := head; cur != nil; {
			next := cur.Next
			pos := position(cur.Content, len(newSlots))
			if newSlots[pos] == nil {
				t.usage++
			}
			cur.Next = newSlots[pos]
			newSlots[pos] = cur
			t.totalNodes++
			cur = next
		}
	}
	t.slots = newSlots
	t.loadFactor = float64(t.usage) / float64(len(t.slots))
}

// Usage returns the number of non-empty buckets.
func (t *HashTable[E]) Usage() int {
	return t.usage
}

// TotalNodes returns the number of stored entries, duplicates included.
func (t *HashTable[E]) TotalNodes() int {
	return t.totalNodes
}

// LoadFactor returns usage divided by the bucket count.
func (t *HashTable[E]) LoadFactor() float64 {
	return t.loadFactor
}

// Cap returns the bucket count.
func (t *HashTable[E]) Cap() int {
	return len(t.slots)
}

// String renders the bucket array for inspection: usage over length, total
// nodes, then each chain from head to tail.
func (t *HashTable[E]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "bucket usage/length: %d/%d", t.usage, len(t.slots))
	fmt.Fprintf(&b, "\ntotal nodes: %d", t.totalNodes)
	for i, head := range t.slots {
		fmt.Fprintf(&b, "\n[%3d]: ", i)
		if head == nil {
			b.WriteString("nil")
			continue
		}
		for cur := head; cur != nil; cur = cur.Next {
			fmt.Fprintf(&b, "%v", cur.Content)
			if cur.Next != nil {
				b.WriteString(" --> ")
			}
		}
	}
	return b.String()
}
