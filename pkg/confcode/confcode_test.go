package confcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	code, err := Generate(Length)
	require.NoError(t, err)
	assert.Len(t, code, Length)

	for _, r := range code {
		assert.True(t, strings.ContainsRune(charset, r), "unexpected character %q", r)
	}
}

// Частоты символов должны быть близки к равномерным: до отбраковки
// остатка 256 % 36 первые четыре буквы выпадали на ~14% чаще остальных.
func TestGenerate_UniformDistribution(t *testing.T) {
	const codes = 100_000
	counts := make(map[rune]int, len(charset))

	for i := 0; i < codes; i++ {
		code, err := Generate(Length)
		require.NoError(t, err)
		for _, r := range code {
			counts[r]++
		}
	}

	expected := float64(codes*Length) / float64(len(charset))
	for _, r := range charset {
		deviation := (float64(counts[r]) - expected) / expected
		assert.InDelta(t, 0, deviation, 0.05, "character %q is over- or under-represented", r)
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := Generate(Length)
		require.NoError(t, err)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
