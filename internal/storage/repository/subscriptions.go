package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
)

// CreateSubscription вставляет новую подписку и возвращает её ID.
// Выполняется в транзакции: сначала проверяются ссылки на пользователя,
// журнал и план, затем вставляется строка. Отсутствие любой из ссылок
// откатывает транзакцию с ErrNotFound — строка не создаётся.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (int64, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int64
	err := s.inTx(ctx, op, func(tx *sql.Tx) error {
		refs := []struct {
			query string
			id    int64
		}{
			{`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, sub.UserID},
			{`SELECT EXISTS (SELECT 1 FROM magazines WHERE id = $1)`, sub.MagazineID},
			{`SELECT EXISTS (SELECT 1 FROM plans WHERE id = $1)`, sub.PlanID},
		}
		for _, ref := range refs {
			var exists bool
			if err := tx.QueryRowContext(ctx, ref.query, ref.id).Scan(&exists); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			if !exists {
				return fmt.Errorf("%s: %w", op, ErrNotFound)
			}
		}

		query := `INSERT INTO subscriptions (user_id, magazine_id, plan_id, price,
				      price_at_renewal, next_renewal_date, is_active)
				  VALUES ($1, $2, $3, $4, $5, $6, $7)
				  RETURNING id`
		if err := tx.QueryRowContext(ctx, query,
			sub.UserID, sub.MagazineID, sub.PlanID, sub.Price,
			sub.PriceAtRenewal, sub.NextRenewalDate, sub.IsActive).Scan(&newID); err != nil {
			return translateError(op, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newID, nil
}

// ReadSubscription возвращает подписку по её ID.
func (s *Storage) ReadSubscription(ctx context.Context, id int64) (*models.Subscription, error) {
	const op = "storage.ReadSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, magazine_id, plan_id, price,
			      price_at_renewal, next_renewal_date, is_active
			  FROM subscriptions WHERE id = $1`
	var sub models.Subscription
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&sub.ID, &sub.UserID,
		&sub.MagazineID, &sub.PlanID, &sub.Price, &sub.PriceAtRenewal,
		&sub.NextRenewalDate, &sub.IsActive); err != nil {
		return nil, translateError(op, err)
	}
	return &sub, nil
}

// ListSubscriptions возвращает список подписок пользователя с пагинацией.
func (s *Storage) ListSubscriptions(ctx context.Context, userID int64, limit, offset int) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, magazine_id, plan_id, price,
			      price_at_renewal, next_renewal_date, is_active
			  FROM subscriptions
			  WHERE user_id = $1
			  ORDER BY id
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Subscription
	for rows.Next() {
		var sub models.Subscription
		if err := rows.Scan(&sub.ID, &sub.UserID, &sub.MagazineID, &sub.PlanID,
			&sub.Price, &sub.PriceAtRenewal, &sub.NextRenewalDate, &sub.IsActive); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &sub)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateSubscription перезаписывает изменяемые поля подписки: цену, план,
// цену продления и дату следующего продления. Затрагивает только активные
// строки — обновление не может оживить деактивированную подписку.
// Возвращает количество изменённых строк.
func (s *Storage) UpdateSubscription(ctx context.Context, sub models.Subscription, id int64) (int, error) {
	const op = "storage.UpdateSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET price = $1, plan_id = $2, price_at_renewal = $3, next_renewal_date = $4
			  WHERE id = $5 AND is_active = true`
	result, err := s.DB.ExecContext(ctx, query,
		sub.Price, sub.PlanID, sub.PriceAtRenewal, sub.NextRenewalDate, id)
	if err != nil {
		return 0, translateError(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeactivateSubscription снимает флаг активности подписки и возвращает
// количество затронутых строк. Строка сохраняется ради истории; повторная
// деактивация затрагивает ту же строку и даёт тот же наблюдаемый результат.
func (s *Storage) DeactivateSubscription(ctx context.Context, id int64) (int, error) {
	const op = "storage.DeactivateSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions SET is_active = false WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, translateError(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
