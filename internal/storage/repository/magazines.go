package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
)

// CreateMagazine вставляет новый журнал и возвращает его ID.
func (s *Storage) CreateMagazine(ctx context.Context, m models.Magazine) (int64, error) {
	const op = "storage.CreateMagazine"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO magazines (name, description, base_price,
			      discount_quarterly, discount_half_yearly, discount_annual)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		m.Name, m.Description, m.BasePrice,
		m.DiscountQuarterly, m.DiscountHalfYearly, m.DiscountAnnual).Scan(&newID)
	if err != nil {
		return 0, translateError(op, err)
	}
	return newID, nil
}

// ReadMagazine возвращает журнал по его ID.
func (s *Storage) ReadMagazine(ctx context.Context, id int64) (*models.Magazine, error) {
	const op = "storage.ReadMagazine"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, base_price,
			      discount_quarterly, discount_half_yearly, discount_annual
			  FROM magazines WHERE id = $1`
	var m models.Magazine
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Description,
		&m.BasePrice, &m.DiscountQuarterly, &m.DiscountHalfYearly, &m.DiscountAnnual); err != nil {
		return nil, translateError(op, err)
	}
	return &m, nil
}

// ListMagazines возвращает список журналов с пагинацией.
func (s *Storage) ListMagazines(ctx context.Context, limit, offset int) ([]*models.Magazine, error) {
	const op = "storage.ListMagazines"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, base_price,
			      discount_quarterly, discount_half_yearly, discount_annual
			  FROM magazines
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Magazine
	for rows.Next() {
		var m models.Magazine
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.BasePrice,
			&m.DiscountQuarterly, &m.DiscountHalfYearly, &m.DiscountAnnual); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateMagazine обновляет данные журнала по его ID и возвращает количество изменённых строк.
func (s *Storage) UpdateMagazine(ctx context.Context, m models.Magazine, id int64) (int, error) {
	const op = "storage.UpdateMagazine"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE magazines
			  SET name = $1, description = $2, base_price = $3,
			      discount_quarterly = $4, discount_half_yearly = $5, discount_annual = $6
			  WHERE id = $7`
	result, err := s.DB.ExecContext(ctx, query,
		m.Name, m.Description, m.BasePrice,
		m.DiscountQuarterly, m.DiscountHalfYearly, m.DiscountAnnual, id)
	if err != nil {
		return 0, translateError(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveMagazine удаляет журнал по ID. Удаление выполняется в транзакции
// и блокируется, пока на журнал ссылаются активные подписки.
func (s *Storage) RemoveMagazine(ctx context.Context, id int64) error {
	const op = "storage.RemoveMagazine"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	return s.inTx(ctx, op, func(tx *sql.Tx) error {
		var activeCount int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM subscriptions WHERE magazine_id = $1 AND is_active = true`,
			id).Scan(&activeCount); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if activeCount > 0 {
			return fmt.Errorf("%s: %w", op, ErrHasActiveSubscriptions)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM magazines WHERE id = $1`, id)
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
	})
}
