package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
)

// RegisterUser сохраняет нового пользователя и возвращает его ID.
// Уникальность username и email обеспечивается ограничениями БД:
// при конкурентной регистрации с одинаковыми данными проигравший
// получает ErrAlreadyExists.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (int64, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int64
	query := `INSERT INTO users (username, email, password_hash, address, phone, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash,
		nullString(user.Address), nullString(user.Phone), true).Scan(&newID); err != nil {
		return 0, translateError(op, err)
	}
	return newID, nil
}

// GetUserByUsername возвращает пользователя по его username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, email, password_hash, address, phone, is_active
			  FROM users
			  WHERE username = $1`
	return scanUser(s.DB.QueryRowContext(ctx, query, username), op)
}

// GetUserByEmail возвращает пользователя по его email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, email, password_hash, address, phone, is_active
			  FROM users
			  WHERE email = $1`
	return scanUser(s.DB.QueryRowContext(ctx, query, email), op)
}

// GetUser возвращает пользователя по его ID.
func (s *Storage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, email, password_hash, address, phone, is_active
			  FROM users
			  WHERE id = $1`
	return scanUser(s.DB.QueryRowContext(ctx, query, id), op)
}

// UpdatePasswordByEmail заменяет хэш пароля пользователя с указанным email.
func (s *Storage) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	const op = "storage.UpdatePasswordByEmail"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users SET password_hash = $1 WHERE email = $2`
	result, err := s.DB.ExecContext(ctx, query, passwordHash, email)
	if err != nil {
		return translateError(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// DeactivateUser снимает флаг активности пользователя. Запись не удаляется.
func (s *Storage) DeactivateUser(ctx context.Context, id int64) error {
	const op = "storage.DeactivateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users SET is_active = false WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return translateError(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

func scanUser(row *sql.Row, op string) (*models.User, error) {
	u := &models.User{}
	var address, phone sql.NullString
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&address, &phone, &u.IsActive); err != nil {
		return nil, translateError(op, err)
	}
	if address.Valid {
		u.Address = address.String
	}
	if phone.Valid {
		u.Phone = phone.String
	}
	return u, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
