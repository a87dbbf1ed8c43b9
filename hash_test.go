package hll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Murmur64A_EmptyInput(t *testing.T) {
	// A zero-length message still mixes in the seed and the length (0); a
	// nil slice and an empty slice must hash identically.
	h1 := murmur64A(nil, murmurSeed)
	h2 := murmur64A([]byte{}, murmurSeed)
	assert.Equal(t, h1, h2)
}

func Test_Murmur64A_Deterministic(t *testing.T) {
	for _, s := range []string{"a", "b", "c", "hello world", ""} {
		require.Equal(t, murmur64A([]byte(s), murmurSeed), murmur64A([]byte(s), murmurSeed))
	}
}

func Test_Murmur64A_DifferentSeedsDiffer(t *testing.T) {
	h1 := murmur64A([]byte("some element"), murmurSeed)
	h2 := murmur64A([]byte("some element"), murmurSeed+1)
	assert.NotEqual(t, h1, h2)
}

func Test_HashElement_IndexInRange(t *testing.T) {
	for _, s := range []string{"a", "b", "c", "d", "e", "long element name here"} {
		index, value := hashElement(s)
		assert.GreaterOrEqual(t, index, 0)
		assert.Less(t, index, numRegisters)
		assert.GreaterOrEqual(t, value, byte(1))
		assert.LessOrEqual(t, value, byte(maxRegisterVal))
	}
}

func Test_HashElement_DistinctElementsUsuallyDistinctRegisters(t *testing.T) {
	// Not a correctness guarantee (collisions are expected at this scale),
	// but all three short, distinct strings landing on one register would be
	// a red flag for a broken hash.
	ia, _ := hashElement("a")
	ib, _ := hashElement("b")
	ic, _ := hashElement("c")
	assert.False(t, ia == ib && ib == ic)
}
