package hashtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAddAndContains(t *testing.T) {
	s := NewSet[String](4)
	s.Add("one")
	s.Add("two")

	assert.True(t, s.Contains("one"))
	assert.True(t, s.Contains("two"))
	assert.False(t, s.Contains("three"))
	assert.Equal(t, 2, s.Len())
}

func TestSetDeduplicates(t *testing.T) {
	s := NewSet[String](4)
	s.Add("one")
	s.Add("one")
	s.Add("one")

	assert.True(t, s.Contains("one"))
	assert.Equal(t, 1, s.Len(), "equal elements should be stored once")
}

func TestSetEmpty(t *testing.T) {
	s := NewSet[Int](0)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(42))
}
