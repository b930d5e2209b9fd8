// internal/ident/ident_test.go
package ident

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := NewCode()
		assert.Len(t, code, CodeLength)
		for _, c := range code {
			assert.Contains(t, codeAlphabet, string(c), "code %q uses a character outside the alphabet", code)
		}
		// The ambiguous characters must never show up.
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "1")
		assert.NotContains(t, code, "I")
		assert.NotContains(t, code, "L")
	}
}

func TestNewHostSecret(t *testing.T) {
	for i := 0; i < 100; i++ {
		secret := NewHostSecret()
		require.Len(t, secret, 4)
		n, err := strconv.Atoi(secret)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "AB2CD", NormalizeCode("  ab2cd \n"))
	assert.Equal(t, "XYZ99", NormalizeCode("xYz99"))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestNewPlayerIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewPlayerID()
		require.False(t, seen[id])
		seen[id] = true
	}
	assert.True(t, strings.Contains(NewPlayerID(), "-"))
}
