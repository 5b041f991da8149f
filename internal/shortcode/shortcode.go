// Package shortcode генерирует короткие коды ссылок.
package shortcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Алфавит из 62 символов: пространство кодов 62^6 ≈ 56.8 млрд.
const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Length — длина короткого кода.
const Length = 6

// MaxAttempts — предел повторных генераций при коллизии.
// Не подобранный параметр, а защитный потолок: при таком пространстве
// кодов пять коллизий подряд практически невозможны.
const MaxAttempts = 5

// Generate возвращает случайный код из Length символов алфавита A-Za-z0-9.
// Использует crypto/rand, чтобы коды нельзя было предсказать.
func Generate() (string, error) {
	b := make([]byte, Length)
	max := big.NewInt(int64(len(charset)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		b[i] = charset[n.Int64()]
	}
	return string(b), nil
}

// ValidCode проверяет, что строка подходит в качестве короткого кода.
func ValidCode(code string) bool {
	if code == "" {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		ok := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
		if !ok {
			return false
		}
	}
	return true
}
