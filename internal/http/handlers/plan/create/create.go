// Package create реализует HTTP-обработчик добавления тарифного плана.
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
	services "github.com/magabrotheeeer/magazine-subscription-service/internal/services/catalog"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики создания тарифного плана.
type Service interface {
	CreatePlan(ctx context.Context, req models.DummyPlan) (int64, error)
}

// Handler управляет HTTP-запросами на добавление тарифных планов.
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
// @Summary Добавить тарифный план
// @Description Создает новый тарифный план. Название должно быть уникальным, период продления — положительным.
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.DummyPlan true "Данные тарифного плана"
// @Success 200 {object} map[string]any "План создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "План с таким названием уже существует"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /plans [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPlan
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

	id, err := h.service.CreatePlan(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyExists):
			log.Error("plan already exists", slog.String("title", req.Title))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("plan with this title already exists"))
		case errors.Is(err, services.ErrInvalidRenewalPeriod):
			log.Error("invalid renewal period", slog.Int("renewal_period", req.RenewalPeriod))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("renewal period must be greater than zero"))
		case errors.Is(err, repository.ErrInvalidData):
			log.Error("plan data rejected by storage", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("plan data violates constraints"))
		default:
			log.Error("failed to create plan", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create plan"))
		}
		return
	}

	log.Info("plan created", slog.Int64("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
