// Package jwt реализует выпуск и проверку access-токенов с пользовательскими claim полями.
//
// Maker определяет интерфейс для создания и проверки токенов,
// MakerImpl — конкретная реализация на секретном ключе HS256 и TTL.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга access-токенов.
type Maker interface {
	// GenerateToken создаёт токен для пользователя с указанными username и id.
	GenerateToken(username string, userID int64) (string, error)
	// ParseToken возвращает *CustomClaims, если токен корректен и не истёк.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
