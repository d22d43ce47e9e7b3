package service

import (
	"context"
	"testing"

	"golang-stock-alert/internal/alerter/dto"
	"golang-stock-alert/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

type fakeUserRepo struct {
	users []entity.User
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func newTestAlertService(t *testing.T, alertRepo *fakeAlertRepo, stockRepo *fakeStockRepo) AlertService {
	t.Helper()
	userRepo := &fakeUserRepo{users: []entity.User{
		{ID: 42, Email: "owner@example.com", IsActive: true},
	}}
	return NewAlertService(alertRepo, stockRepo, userRepo, newTestLogger(t))
}

func TestCreateAlert(t *testing.T) {
	stockRepo := &fakeStockRepo{stocks: []entity.Stock{
		testStock(t, 1, "005930", "60000", "70000"),
	}}

	t.Run("creates an active target price alert", func(t *testing.T) {
		alertRepo := &fakeAlertRepo{}
		svc := newTestAlertService(t, alertRepo, stockRepo)

		resp, err := svc.CreateAlert(context.Background(), &dto.CreateAlertRequest{
			UserID:      42,
			StockCode:   "005930",
			AlertType:   "TARGET_PRICE",
			TargetPrice: decimalPtr("65000"),
			IsAbove:     boolPtr(true),
		})
		require.NoError(t, err)

		assert.Equal(t, uint(1), resp.StockID)
		assert.Equal(t, uint(42), resp.UserID)
		assert.Equal(t, "ACTIVE", resp.Status)
		require.NotNil(t, resp.TargetPrice)
		assert.True(t, resp.TargetPrice.Equal(*decimalPtr("65000")))
		require.Len(t, alertRepo.saved, 1)
	})

	t.Run("unknown alert type", func(t *testing.T) {
		svc := newTestAlertService(t, &fakeAlertRepo{}, stockRepo)

		_, err := svc.CreateAlert(context.Background(), &dto.CreateAlertRequest{
			UserID:    42,
			StockCode: "005930",
			AlertType: "MOON_PHASE",
		})
		assert.ErrorIs(t, err, entity.ErrInvalidAlertCondition)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newTestAlertService(t, &fakeAlertRepo{}, stockRepo)

		_, err := svc.CreateAlert(context.Background(), &dto.CreateAlertRequest{
			UserID:      999,
			StockCode:   "005930",
			AlertType:   "TARGET_PRICE",
			TargetPrice: decimalPtr("65000"),
			IsAbove:     boolPtr(true),
		})
		assert.ErrorIs(t, err, entity.ErrUserNotFound)
	})

	t.Run("unknown stock", func(t *testing.T) {
		svc := newTestAlertService(t, &fakeAlertRepo{}, stockRepo)

		_, err := svc.CreateAlert(context.Background(), &dto.CreateAlertRequest{
			UserID:      42,
			StockCode:   "999999",
			AlertType:   "TARGET_PRICE",
			TargetPrice: decimalPtr("65000"),
			IsAbove:     boolPtr(true),
		})
		assert.ErrorIs(t, err, entity.ErrStockNotFound)
	})

	t.Run("target price alert without target price", func(t *testing.T) {
		svc := newTestAlertService(t, &fakeAlertRepo{}, stockRepo)

		_, err := svc.CreateAlert(context.Background(), &dto.CreateAlertRequest{
			UserID:    42,
			StockCode: "005930",
			AlertType: "TARGET_PRICE",
			IsAbove:   boolPtr(true),
		})
		assert.ErrorIs(t, err, entity.ErrInvalidAlertCondition)
	})
}

func TestGetUserAlerts(t *testing.T) {
	alertRepo := &fakeAlertRepo{alerts: []entity.Alert{
		{ID: 10, StockID: 1, UserID: 42, AlertType: entity.AlertTypeNewHigh, Status: entity.AlertStatusActive},
		{ID: 11, StockID: 1, UserID: 7, AlertType: entity.AlertTypeNewHigh, Status: entity.AlertStatusActive},
		{ID: 12, StockID: 2, UserID: 42, AlertType: entity.AlertTypeSurge, Status: entity.AlertStatusTriggered},
	}}
	svc := newTestAlertService(t, alertRepo, &fakeStockRepo{})

	alerts, err := svc.GetUserAlerts(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, uint(10), alerts[0].ID)
	assert.Equal(t, uint(12), alerts[1].ID)
}

func TestDisableAlert(t *testing.T) {
	t.Run("owner disables", func(t *testing.T) {
		alertRepo := &fakeAlertRepo{alerts: []entity.Alert{
			{ID: 10, StockID: 1, UserID: 42, AlertType: entity.AlertTypeNewHigh, Status: entity.AlertStatusActive},
		}}
		svc := newTestAlertService(t, alertRepo, &fakeStockRepo{})

		require.NoError(t, svc.DisableAlert(context.Background(), 10, 42))
		require.Len(t, alertRepo.saved, 1)
		assert.Equal(t, entity.AlertStatusDisabled, alertRepo.saved[0].Status)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		alertRepo := &fakeAlertRepo{alerts: []entity.Alert{
			{ID: 10, StockID: 1, UserID: 42, AlertType: entity.AlertTypeNewHigh, Status: entity.AlertStatusActive},
		}}
		svc := newTestAlertService(t, alertRepo, &fakeStockRepo{})

		err := svc.DisableAlert(context.Background(), 10, 7)
		assert.ErrorIs(t, err, entity.ErrUnauthorizedAlertAccess)
		assert.Empty(t, alertRepo.saved)
	})

	t.Run("unknown alert", func(t *testing.T) {
		svc := newTestAlertService(t, &fakeAlertRepo{}, &fakeStockRepo{})

		err := svc.DisableAlert(context.Background(), 999, 42)
		assert.ErrorIs(t, err, entity.ErrAlertNotFound)
	})
}

func TestDeleteAlert(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		alertRepo := &fakeAlertRepo{alerts: []entity.Alert{
			{ID: 10, StockID: 1, UserID: 42, AlertType: entity.AlertTypeNewHigh, Status: entity.AlertStatusActive},
		}}
		svc := newTestAlertService(t, alertRepo, &fakeStockRepo{})

		require.NoError(t, svc.DeleteAlert(context.Background(), 10, 42))
		require.Len(t, alertRepo.deleted, 1)
		assert.Equal(t, uint(10), alertRepo.deleted[0].ID)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		alertRepo := &fakeAlertRepo{alerts: []entity.Alert{
			{ID: 10, StockID: 1, UserID: 42, AlertType: entity.AlertTypeNewHigh, Status: entity.AlertStatusActive},
		}}
		svc := newTestAlertService(t, alertRepo, &fakeStockRepo{})

		err := svc.DeleteAlert(context.Background(), 10, 7)
		assert.ErrorIs(t, err, entity.ErrUnauthorizedAlertAccess)
		assert.Empty(t, alertRepo.deleted)
	})
}
