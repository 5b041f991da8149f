package shortcode_test

import (
	"strings"
	"testing"

	"github.com/MoodinAhmed1/classicet/internal/shortcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func TestGenerate(t *testing.T) {
	code, err := shortcode.Generate()
	require.NoError(t, err)
	assert.Len(t, code, shortcode.Length)

	for _, c := range code {
		assert.True(t, strings.ContainsRune(charset, c), "unexpected character %q", c)
	}
}

func TestGenerate_Distinct(t *testing.T) {
	// Повтор в тысяче генераций означал бы сломанный источник случайности
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := shortcode.Generate()
		require.NoError(t, err)
		require.False(t, seen[code], "duplicate code %q after %d generations", code, i)
		seen[code] = true
	}
}

func TestValidCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"lowercase", "abcdef", true},
		{"mixed", "aB3xY9", true},
		{"digits only", "123456", true},
		{"empty", "", false},
		{"dash", "abc-def", false},
		{"space", "abc def", false},
		{"unicode", "абвгде", false},
		{"slash", "a/b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shortcode.ValidCode(tt.code))
		})
	}
}
