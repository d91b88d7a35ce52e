package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywords_putNotPrint(t *testing.T) {
	kind, ok := Keywords["put"]
	assert.True(t, ok)
	assert.Equal(t, PUT, kind)

	_, ok = Keywords["print"]
	assert.False(t, ok, "the print keyword is spelled 'put', not 'print'")
}

func TestKeywords_allReservedWordsMapToDistinctKinds(t *testing.T) {
	want := []string{
		"and", "class", "else", "false", "fun", "for", "if", "nil", "or",
		"put", "return", "super", "this", "true", "var", "while", "break", "continue",
	}
	assert.Len(t, Keywords, len(want))
	seen := make(map[Kind]string)
	for _, w := range want {
		kind, ok := Keywords[w]
		assert.True(t, ok, "missing keyword %q", w)
		if ok {
			prev, dup := seen[kind]
			assert.False(t, dup, "keywords %q and %q share kind %s", prev, w, kind)
			seen[kind] = w
		}
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "PUT", PUT.String())
	assert.Equal(t, "EOF", EOF.String())
}
