// internal/ident/ident.go
package ident

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// codeAlphabet deliberately omits 0/O/1/I/L so codes read unambiguously off a
// shared screen.
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// CodeLength is the fixed length of a lobby code.
const CodeLength = 5

// NewPlayerID returns an opaque unique player identifier.
func NewPlayerID() string {
	return uuid.NewString()
}

// NewCode returns a random lobby code. Uniqueness against existing lobbies is
// the caller's concern.
func NewCode() string {
	var b strings.Builder
	b.Grow(CodeLength)
	for i := 0; i < CodeLength; i++ {
		b.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
	}
	return b.String()
}

// NewHostSecret returns the 4-digit numeric string a disconnected host
// presents to reclaim host status on rejoin.
func NewHostSecret() string {
	return strconv.Itoa(1000 + rand.Intn(9000))
}

// NormalizeCode maps user input onto the canonical (upper-case, trimmed) form
// lobbies are keyed by.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
