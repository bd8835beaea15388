package refresh

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

	services "github.com/magabrotheeeer/magazine-subscription-service/internal/services/auth"
)

// MockService реализует интерфейс refresh.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if res := args.Get(0); res != nil {
		return res.(*services.TokenPair), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestRefreshHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		authHeader     string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное обновление токенов",
			body: `{"refresh_token":"old-refresh"}`,
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "old-refresh").
					Return(&services.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"refresh_token":"new-refresh"`,
		},
		{
			name: "неизвестный refresh-токен",
			body: `{"refresh_token":"stolen"}`,
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "stolen").
					Return(nil, services.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"invalid or expired refresh token"`,
		},
		{
			name:           "пустой refresh-токен",
			body:           `{"refresh_token":""}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field RefreshToken is a required field`,
		},
		{
			name:       "токен в заголовке Authorization",
			authHeader: "Bearer header-refresh",
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "header-refresh").
					Return(&services.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"refresh_token":"new-refresh"`,
		},
		{
			name:       "заголовок имеет приоритет над телом",
			body:       `{"refresh_token":"body-refresh"}`,
			authHeader: "Bearer header-refresh",
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "header-refresh").
					Return(&services.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"refresh_token":"new-refresh"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/token/refresh", strings.NewReader(tt.body))
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
