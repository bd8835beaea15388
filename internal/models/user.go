// Package models содержит доменные структуры сервиса подписок на журналы,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// User представляет зарегистрированного пользователя системы.
// Пароль хранится только в виде bcrypt-хэша. Запись никогда не удаляется
// физически: деактивация выполняется через флаг IsActive.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	IsActive     bool   `json:"is_active"`
}

// Session описывает владельца refresh-токена, сохраняемого в хранилище токенов.
type Session struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}
