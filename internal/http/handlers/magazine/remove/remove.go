// Package remove реализует HTTP-обработчик удаления журнала из каталога.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/response"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/sl"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики удаления журнала.
type Service interface {
	RemoveMagazine(ctx context.Context, id int64) error
}

// Handler управляет HTTP-запросами на удаление журналов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить журнал
// @Description Удаляет журнал по ID. Журнал с активными подписками удалить нельзя.
// @Tags Magazines
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID журнала"
// @Success 200 {object} map[string]any "Журнал удален"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Журнал не найден"
// @Failure 409 {object} response.ErrorResponse "Есть активные подписки на журнал"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /magazines/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.magazine.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	if err := h.service.RemoveMagazine(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			log.Error("magazine not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("magazine not found"))
		case errors.Is(err, repository.ErrHasActiveSubscriptions):
			log.Error("magazine has active subscriptions", slog.Int64("id", id))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("magazine has active subscriptions"))
		default:
			log.Error("failed to delete magazine", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not delete magazine"))
		}
		return
	}

	log.Info("magazine deleted", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted_id": id,
	}))
}
