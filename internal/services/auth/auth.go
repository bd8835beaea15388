// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/jwt"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/password"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/random"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

// Ошибки аутентификации. Неверный пароль и неизвестный пользователь
// не различаются в ответе, чтобы не раскрывать существование учётной записи.
var (
	// ErrInvalidCredentials — вход отклонён: неверная пара username/password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken — refresh-токен неизвестен, истёк или отозван.
	ErrInvalidToken = errors.New("invalid or expired token")
)

const refreshKeyPrefix = "refresh_token:"

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (int64, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// UpdatePasswordByEmail заменяет хэш пароля пользователя с указанным email.
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error

	// DeactivateUser снимает флаг активности у пользователя с указанным ID.
	DeactivateUser(ctx context.Context, id int64) error
}

// TokenStore описывает внешнее key-value хранилище refresh-токенов.
// Реализация — Redis, токены переживают рестарт процесса.
type TokenStore interface {
	// Get пытается получить значение из хранилища по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение по ключу.
	Invalidate(key string) error
}

// TokenPair — пара токенов, выдаваемая при входе и при обновлении.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService отвечает за регистрацию, вход, выпуск и проверку токенов.
type AuthService struct {
	users      UserRepository
	jwtMaker   jwt.Maker
	tokens     TokenStore
	refreshTTL time.Duration
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, tokens TokenStore, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		jwtMaker:   jwtMaker,
		tokens:     tokens,
		refreshTTL: refreshTTL,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Дубликат username или email возвращается как repository.ErrAlreadyExists.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword, address, phone string) (int64, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return 0, err
	}
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Address:      address,
		Phone:        phone,
		IsActive:     true,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login проверяет пароль пользователя и выдаёт пару access/refresh токенов.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (*TokenPair, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issuePair(user.Username, user.ID)
}

// Refresh обменивает действующий refresh-токен на новую пару токенов.
// Старый токен отзывается: повторное использование невозможно.
func (s *AuthService) Refresh(_ context.Context, refreshToken string) (*TokenPair, error) {
	var session models.Session
	found, err := s.tokens.Get(refreshKeyPrefix+refreshToken, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrInvalidToken
	}
	if err := s.tokens.Invalidate(refreshKeyPrefix + refreshToken); err != nil {
		return nil, err
	}
	return s.issuePair(session.Username, session.UserID)
}

// ValidateToken проверяет access-токен и возвращает данные его владельца.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*models.User, bool, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	user := &models.User{
		Username: claims.Username,
		ID:       claims.UserID,
	}
	return user, true, nil
}

// Me возвращает запись пользователя по имени из access-токена.
func (s *AuthService) Me(ctx context.Context, username string) (*models.User, error) {
	return s.users.GetUserByUsername(ctx, username)
}

// DeactivateUser снимает флаг активности у пользователя. Запись остаётся в базе,
// но вход и создание новых подписок для деактивированного аккаунта блокируются.
func (s *AuthService) DeactivateUser(ctx context.Context, userID int64) error {
	return s.users.DeactivateUser(ctx, userID)
}

// ResetPassword заменяет пароль пользователя с указанным email.
// Новый пароль хэшируется до записи — открытый текст в базу не попадает.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	hashed, err := password.GetHash(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePasswordByEmail(ctx, email, hashed)
}

func (s *AuthService) issuePair(username string, userID int64) (*TokenPair, error) {
	access, err := s.jwtMaker.GenerateToken(username, userID)
	if err != nil {
		return nil, err
	}
	refresh, err := random.NewToken(random.TokenLength)
	if err != nil {
		return nil, err
	}
	session := models.Session{UserID: userID, Username: username}
	if err := s.tokens.Set(refreshKeyPrefix+refresh, session, s.refreshTTL); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
