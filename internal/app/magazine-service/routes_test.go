package magazineservice

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
)

// Запросы без заголовка Authorization отклоняются middleware до обращения
// к сервисам, поэтому зависимости можно не инициализировать: проверяется
// только регистрация маршрутов.
func newTestRouter() chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	RegisterRoutes(r, logger, nil, nil, nil, nil)
	return r
}

func TestRegisterRoutes_ProtectedEndpointsRequireAuth(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"обновление подписки через PUT", http.MethodPut, "/api/v1/subscriptions/1"},
		{"обновление подписки через PATCH", http.MethodPatch, "/api/v1/subscriptions/1"},
		{"деактивация пользователя", http.MethodDelete, "/api/v1/users/me"},
		{"создание подписки", http.MethodPost, "/api/v1/subscriptions"},
		{"создание журнала", http.MethodPost, "/api/v1/magazines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			// 401, а не 404/405: маршрут зарегистрирован, но требует токен
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
