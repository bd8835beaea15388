// Package create реализует HTTP-обработчик добавления журнала в каталог.
//
// Handler принимает JSON-запрос с данными журнала, валидирует их,
// вызывает бизнес-логику создания и возвращает ID созданной записи.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/response"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/sl"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики создания журнала.
type Service interface {
	CreateMagazine(ctx context.Context, req models.DummyMagazine) (int64, error)
}

// Handler управляет HTTP-запросами на добавление журналов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить журнал
// @Description Создает новый журнал в каталоге. Название должно быть уникальным.
// @Tags Magazines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.DummyMagazine true "Данные журнала"
// @Success 200 {object} map[string]any "Журнал создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Журнал с таким названием уже существует"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /magazines [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.magazine.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyMagazine
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	id, err := h.service.CreateMagazine(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			log.Error("magazine already exists", slog.String("name", req.Name))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("magazine with this name already exists"))
			return
		}
		if errors.Is(err, repository.ErrInvalidData) {
			log.Error("magazine data rejected by storage", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("magazine data violates constraints"))
			return
		}
		log.Error("failed to create magazine", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create magazine"))
		return
	}

	log.Info("magazine created", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
