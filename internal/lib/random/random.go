// Package random генерирует непрозрачные refresh-токены.
//
// Токен — криптографически случайная строка из букв и цифр,
// по символу на каждый байт энтропии из crypto/rand.
package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TokenLength — длина выпускаемых refresh-токенов.
const TokenLength = 32

// NewToken возвращает случайную строку длиной n из смешанного
// буквенно-цифрового алфавита.
func NewToken(n int) (string, error) {
	const op = "random.NewToken"
	result := make([]byte, n)
	max := big.NewInt(int64(len(alphabet)))
	for i := range result {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		result[i] = alphabet[idx.Int64()]
	}
	return string(result), nil
}
