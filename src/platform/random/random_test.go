package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoRandom_Intn(t *testing.T) {
	r := New()
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
	for range 100 {
		n := r.Intn(5)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 5)
	}
}

func TestCryptoRandom_String(t *testing.T) {
	r := New()
	assert.Empty(t, r.String(0, Letters))
	assert.Empty(t, r.String(4, ""))

	s := r.String(16, Letters)
	assert.Len(t, s, 16)
	for _, c := range s {
		assert.True(t, strings.ContainsRune(Letters, c), "unexpected rune %q", c)
	}
}
