package common

import (
	"crypto/rand"
	"unicode/utf8"
)

// WipeByteArray overwrites b with zeros. Used for passwords and master keys
// once they are no longer needed. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// GenerateRandByteArray returns n bytes from crypto/rand. It panics if the
// system random source fails, which only happens on a broken host.
func GenerateRandByteArray(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// Mask returns a run of asterisks as long as s is in characters.
// An empty s yields an empty string; callers decide what to print instead.
func Mask(s string) string {
	n := utf8.RuneCountInString(s)
	b := make([]byte, n)
	for i := range b {
		b[i] = '*'
	}
	return string(b)
}

// Truncate cuts s to at most limit characters and appends "..." when
// something was cut. A non-positive limit disables truncation.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit]) + "..."
}
