package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
)

// CreatePlan вставляет новый план продления и возвращает его ID.
// Нулевой период продления дополнительно отсекается CHECK-ограничением БД.
func (s *Storage) CreatePlan(ctx context.Context, p models.Plan) (int64, error) {
	const op = "storage.CreatePlan"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO plans (title, description, renewal_period)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query, p.Title, p.Description, p.RenewalPeriod).Scan(&newID)
	if err != nil {
		return 0, translateError(op, err)
	}
	return newID, nil
}

// ReadPlan возвращает план по его ID.
func (s *Storage) ReadPlan(ctx context.Context, id int64) (*models.Plan, error) {
	const op = "storage.ReadPlan"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, renewal_period FROM plans WHERE id = $1`
	var p models.Plan
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Title,
		&p.Description, &p.RenewalPeriod); err != nil {
		return nil, translateError(op, err)
	}
	return &p, nil
}

// ListPlans возвращает список планов с пагинацией.
func (s *Storage) ListPlans(ctx context.Context, limit, offset int) ([]*models.Plan, error) {
	const op = "storage.ListPlans"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, renewal_period
			  FROM plans
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Plan
	for rows.Next() {
		var p models.Plan
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.RenewalPeriod); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdatePlan обновляет данные плана по его ID и возвращает количество изменённых строк.
func (s *Storage) UpdatePlan(ctx context.Context, p models.Plan, id int64) (int, error) {
	const op = "storage.UpdatePlan"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE plans
			  SET title = $1, description = $2, renewal_period = $3
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query, p.Title, p.Description, p.RenewalPeriod, id)
	if err != nil {
		return 0, translateError(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemovePlan удаляет план по ID. Как и для журналов, удаление выполняется
// в транзакции и блокируется активными подписками.
func (s *Storage) RemovePlan(ctx context.Context, id int64) error {
	const op = "storage.RemovePlan"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	return s.inTx(ctx, op, func(tx *sql.Tx) error {
		var activeCount int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM subscriptions WHERE plan_id = $1 AND is_active = true`,
			id).Scan(&activeCount); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if activeCount > 0 {
			return fmt.Errorf("%s: %w", op, ErrHasActiveSubscriptions)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM plans WHERE id = $1`, id)
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
