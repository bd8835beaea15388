// Package read реализует HTTP-обработчик получения журнала по ID.
package read

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
	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики чтения журнала.
type Service interface {
	ReadMagazine(ctx context.Context, id int64) (*models.Magazine, error)
}

// Handler управляет HTTP-запросами на чтение журнала по идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить журнал
// @Description Возвращает журнал по его идентификатору.
// @Tags Magazines
// @Produce json
// @Param id path int true "ID журнала"
// @Success 200 {object} map[string]any "Данные журнала"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Журнал не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /magazines/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.magazine.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	res, err := h.service.ReadMagazine(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("magazine not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("magazine not found"))
			return
		}
		log.Error("failed to read magazine", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read magazine"))
		return
	}

	log.Info("magazine read", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"magazine": res,
	}))
}
