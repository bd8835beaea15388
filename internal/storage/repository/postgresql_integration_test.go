package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
)

func TestStorage_RegisterUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	id, err := storage.RegisterUser(ctx, models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashedpassword",
		Address:      "Moscow",
		Phone:        "+79001234567",
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	t.Run("повторное имя пользователя", func(t *testing.T) {
		_, err := storage.RegisterUser(ctx, models.User{
			Username:     "alice",
			Email:        "other@example.com",
			PasswordHash: "hashedpassword",
			IsActive:     true,
		})
		require.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("повторный email", func(t *testing.T) {
		_, err := storage.RegisterUser(ctx, models.User{
			Username:     "bob",
			Email:        "alice@example.com",
			PasswordHash: "hashedpassword",
			IsActive:     true,
		})
		require.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("чтение по имени", func(t *testing.T) {
		user, err := storage.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "Moscow", user.Address)
	})

	t.Run("неизвестное имя", func(t *testing.T) {
		_, err := storage.GetUserByUsername(ctx, "nobody")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStorage_UpdatePasswordByEmail(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	factory.CreateUser(t, "alice", "alice@example.com", "oldhash", true)

	err := storage.UpdatePasswordByEmail(ctx, "alice@example.com", "newhash")
	require.NoError(t, err)

	user, err := storage.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "newhash", user.PasswordHash)

	err = storage.UpdatePasswordByEmail(ctx, "nobody@example.com", "newhash")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_DeactivateUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	id := factory.CreateUser(t, "bob", "bob@example.com", "hash", true)

	err := storage.DeactivateUser(ctx, id)
	require.NoError(t, err)

	user, err := storage.GetUser(ctx, id)
	require.NoError(t, err)
	assert.False(t, user.IsActive)

	// повторная деактивация затрагивает ту же строку
	err = storage.DeactivateUser(ctx, id)
	require.NoError(t, err)

	err = storage.DeactivateUser(ctx, 9999)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = storage.GetUser(ctx, 9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_CreateSubscription(t *testing.T) {
	nextRenewal := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(t *testing.T, factory *TestDataFactory) models.Subscription
		wantErr error
	}{
		{
			name: "успешное создание",
			setup: func(t *testing.T, factory *TestDataFactory) models.Subscription {
				userID := factory.CreateUser(t, "alice", "alice@example.com", "hash", true)
				magazineID := factory.CreateMagazine(t, "Nature", 9.99, 0.1, 0.15, 0.25)
				planID := factory.CreatePlan(t, "Annual", 12)
				return models.Subscription{
					UserID:          userID,
					MagazineID:      magazineID,
					PlanID:          planID,
					Price:           9.99,
					PriceAtRenewal:  7.49,
					NextRenewalDate: nextRenewal,
					IsActive:        true,
				}
			},
			wantErr: nil,
		},
		{
			name: "журнал не существует",
			setup: func(t *testing.T, factory *TestDataFactory) models.Subscription {
				userID := factory.CreateUser(t, "bob", "bob@example.com", "hash", true)
				planID := factory.CreatePlan(t, "Monthly", 1)
				return models.Subscription{
					UserID:          userID,
					MagazineID:      9999,
					PlanID:          planID,
					Price:           5.0,
					PriceAtRenewal:  5.0,
					NextRenewalDate: nextRenewal,
					IsActive:        true,
				}
			},
			wantErr: ErrNotFound,
		},
		{
			name: "пользователь не существует",
			setup: func(t *testing.T, factory *TestDataFactory) models.Subscription {
				magazineID := factory.CreateMagazine(t, "Science", 5.99, 0, 0, 0)
				planID := factory.CreatePlan(t, "Quarterly", 3)
				return models.Subscription{
					UserID:          9999,
					MagazineID:      magazineID,
					PlanID:          planID,
					Price:           5.99,
					PriceAtRenewal:  5.99,
					NextRenewalDate: nextRenewal,
					IsActive:        true,
				}
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			sub := tt.setup(t, factory)

			id, err := storage.CreateSubscription(context.Background(), sub)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Positive(t, id)

			got, err := storage.ReadSubscription(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, sub.UserID, got.UserID)
			assert.InDelta(t, sub.PriceAtRenewal, got.PriceAtRenewal, 0.001)
			assert.True(t, got.IsActive)
		})
	}
}

func TestStorage_ListSubscriptions(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	nextRenewal := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	aliceID := factory.CreateUser(t, "alice", "alice@example.com", "hash", true)
	bobID := factory.CreateUser(t, "bob", "bob@example.com", "hash", true)
	magazineID := factory.CreateMagazine(t, "Nature", 9.99, 0, 0, 0)
	planID := factory.CreatePlan(t, "Monthly", 1)

	factory.CreateSubscription(t, aliceID, magazineID, planID, 9.99, 9.99, nextRenewal, true)
	factory.CreateSubscription(t, aliceID, magazineID, planID, 9.99, 9.99, nextRenewal, false)
	factory.CreateSubscription(t, bobID, magazineID, planID, 9.99, 9.99, nextRenewal, true)

	got, err := storage.ListSubscriptions(ctx, aliceID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = storage.ListSubscriptions(ctx, aliceID, 1, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = storage.ListSubscriptions(ctx, 9999, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStorage_UpdateSubscription(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	verify := NewTestVerification(storage)
	nextRenewal := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	userID := factory.CreateUser(t, "alice", "alice@example.com", "hash", true)
	magazineID := factory.CreateMagazine(t, "Nature", 9.99, 0, 0, 0)
	planID := factory.CreatePlan(t, "Monthly", 1)
	activeID := factory.CreateSubscription(t, userID, magazineID, planID, 9.99, 9.99, nextRenewal, true)
	inactiveID := factory.CreateSubscription(t, userID, magazineID, planID, 9.99, 9.99, nextRenewal, false)

	updated := models.Subscription{
		Price:           12.99,
		PlanID:          planID,
		PriceAtRenewal:  12.99,
		NextRenewalDate: nextRenewal.AddDate(0, 1, 0),
	}

	count, err := storage.UpdateSubscription(ctx, updated, activeID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := storage.ReadSubscription(ctx, activeID)
	require.NoError(t, err)
	assert.InDelta(t, 12.99, got.Price, 0.001)

	// Неактивные подписки обновлению не подлежат
	count, err = storage.UpdateSubscription(ctx, updated, inactiveID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	verify.VerifySubscriptionActive(t, inactiveID, false)
}

func TestStorage_DeactivateSubscription(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	verify := NewTestVerification(storage)
	nextRenewal := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	userID := factory.CreateUser(t, "alice", "alice@example.com", "hash", true)
	magazineID := factory.CreateMagazine(t, "Nature", 9.99, 0, 0, 0)
	planID := factory.CreatePlan(t, "Monthly", 1)
	subID := factory.CreateSubscription(t, userID, magazineID, planID, 9.99, 9.99, nextRenewal, true)

	count, err := storage.DeactivateSubscription(ctx, subID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	verify.VerifySubscriptionActive(t, subID, false)

	// Повторная деактивация безопасна
	count, err = storage.DeactivateSubscription(ctx, subID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	verify.VerifySubscriptionActive(t, subID, false)

	count, err = storage.DeactivateSubscription(ctx, 9999)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestStorage_RemoveMagazine(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	verify := NewTestVerification(storage)
	nextRenewal := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	userID := factory.CreateUser(t, "alice", "alice@example.com", "hash", true)
	planID := factory.CreatePlan(t, "Monthly", 1)
	busyID := factory.CreateMagazine(t, "Nature", 9.99, 0, 0, 0)
	freeID := factory.CreateMagazine(t, "Science", 5.99, 0, 0, 0)
	subID := factory.CreateSubscription(t, userID, busyID, planID, 9.99, 9.99, nextRenewal, true)

	// Журнал с активной подпиской удалить нельзя
	err := storage.RemoveMagazine(ctx, busyID)
	require.ErrorIs(t, err, ErrHasActiveSubscriptions)

	err = storage.RemoveMagazine(ctx, freeID)
	require.NoError(t, err)
	verify.VerifyMagazineDeleted(t, freeID)

	err = storage.RemoveMagazine(ctx, 9999)
	require.ErrorIs(t, err, ErrNotFound)

	// После деактивации подписки журнал остаётся под защитой внешнего ключа
	_, err = storage.DeactivateSubscription(ctx, subID)
	require.NoError(t, err)
	err = storage.RemoveMagazine(ctx, busyID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_Magazines(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	id, err := storage.CreateMagazine(ctx, models.Magazine{
		Name:               "Nature",
		Description:        "Weekly science journal",
		BasePrice:          9.99,
		DiscountQuarterly:  0.1,
		DiscountHalfYearly: 0.15,
		DiscountAnnual:     0.25,
	})
	require.NoError(t, err)

	_, err = storage.CreateMagazine(ctx, models.Magazine{
		Name:        "Nature",
		Description: "Duplicate",
		BasePrice:   1.0,
	})
	require.ErrorIs(t, err, ErrAlreadyExists)

	// CHECK (base_price > 0) транслируется в ErrInvalidData
	_, err = storage.CreateMagazine(ctx, models.Magazine{
		Name:        "Free Issue",
		Description: "Invalid price",
		BasePrice:   -1.0,
	})
	require.ErrorIs(t, err, ErrInvalidData)

	got, err := storage.ReadMagazine(ctx, id)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, got.DiscountAnnual, 0.001)

	count, err := storage.UpdateMagazine(ctx, models.Magazine{
		Name:        "Nature Weekly",
		Description: "Renamed",
		BasePrice:   10.99,
	}, id)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	list, err := storage.ListMagazines(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Nature Weekly", list[0].Name)
}
