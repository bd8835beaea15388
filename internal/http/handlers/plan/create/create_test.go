package create

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) CreatePlan(ctx context.Context, req models.DummyPlan) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreatePlanHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное создание плана",
			body: `{"title":"Monthly","description":"Renews every month","renewal_period":1}`,
			setupMock: func(m *MockService) {
				m.On("CreatePlan", mock.Anything, models.DummyPlan{
					Title:         "Monthly",
					Description:   "Renews every month",
					RenewalPeriod: 1,
				}).Return(int64(5), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":5`,
		},
		{
			name:           "нулевой период продления",
			body:           `{"title":"Broken","description":"No period","renewal_period":0}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field RenewalPeriod`,
		},
		{
			name: "план с таким названием уже есть",
			body: `{"title":"Monthly","description":"Duplicate","renewal_period":1}`,
			setupMock: func(m *MockService) {
				m.On("CreatePlan", mock.Anything, models.DummyPlan{
					Title:         "Monthly",
					Description:   "Duplicate",
					RenewalPeriod: 1,
				}).Return(int64(0), repository.ErrAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"plan with this title already exists"`,
		},
		{
			name: "хранилище отклонило данные по ограничению",
			body: `{"title":"Odd","description":"Rejected by check","renewal_period":1}`,
			setupMock: func(m *MockService) {
				m.On("CreatePlan", mock.Anything, models.DummyPlan{
					Title:         "Odd",
					Description:   "Rejected by check",
					RenewalPeriod: 1,
				}).Return(int64(0), repository.ErrInvalidData)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"error":"plan data violates constraints"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/plans", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
