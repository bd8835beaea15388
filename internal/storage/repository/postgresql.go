// Package repository реализует хранилище данных на основе PostgreSQL
// для пользователей, журналов, планов и подписок. Каждая логическая операция
// выполняется в рамках одной единицы работы: begin → изменение → commit,
// с откатом при любой ошибке внутри.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки хранилища, на которые опираются сервисы и обработчики.
var (
	// ErrNotFound — запись с указанным ключом не существует.
	ErrNotFound = errors.New("entity not found")
	// ErrAlreadyExists — нарушено ограничение уникальности (username, email, name, title).
	ErrAlreadyExists = errors.New("entity already exists")
	// ErrHasActiveSubscriptions — на запись ссылаются активные подписки, удаление заблокировано.
	ErrHasActiveSubscriptions = errors.New("entity has active subscriptions")
	// ErrInvalidData — данные нарушают CHECK-ограничение таблицы (цена, период и т.п.).
	ErrInvalidData = errors.New("entity data violates constraints")
)

// Коды ошибок PostgreSQL, различаемые при трансляции.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с сущностями сервиса.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func (s *Storage) CheckDatabaseReady(ctx context.Context) error {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'subscriptions'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table subscriptions missing or query error: %w", err)
	}
	return nil
}

// translateError переводит низкоуровневые ошибки БД в ошибки хранилища.
// Конкурентная вставка дубликата — ожидаемая, восстановимая ситуация,
// а не фатальный сбой: проигравший получает ErrAlreadyExists.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		case pgCheckViolation:
			return fmt.Errorf("%s: %w", op, ErrInvalidData)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// inTx выполняет fn внутри транзакции: commit при успехе, rollback при ошибке.
func (s *Storage) inTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
