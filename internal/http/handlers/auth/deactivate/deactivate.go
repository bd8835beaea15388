// Package deactivate реализует HTTP-обработчик деактивации текущего пользователя.
package deactivate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/response"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/sl"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики деактивации пользователя.
type Service interface {
	DeactivateUser(ctx context.Context, userID int64) error
}

// Handler управляет HTTP-запросами на деактивацию аккаунта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Деактивировать текущего пользователя
// @Description Снимает флаг активности у владельца access-токена. Запись пользователя не удаляется,
// повторный вход становится невозможен, уже выданный access-токен действует до истечения.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Пользователь деактивирован"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /users/me [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.deactivate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserID).(int64)
	if !ok || userID == 0 {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.DeactivateUser(r.Context(), userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("user not found", slog.Int64("user_id", userID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to deactivate user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to deactivate user"))
		return
	}

	log.Info("user deactivated", slog.Int64("user_id", userID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deactivated_id": userID,
	}))
}
