// Package refresh реализует HTTP-обработчик обновления пары токенов.
//
// Handler принимает refresh-токен из заголовка Authorization (Bearer) или
// из тела запроса, проверяет его наличие в хранилище сессий и выдает новую
// пару токенов. Старый refresh-токен при этом отзывается.
package refresh

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/http/response"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/sl"
	services "github.com/magabrotheeeer/magazine-subscription-service/internal/services/auth"
)

// Request — входные данные для обновления токенов.
type Request struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Service описывает интерфейс бизнес-логики обновления токенов.
type Service interface {
	Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

// Handler управляет HTTP-запросами на обновление токенов.
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
// @Summary Обновить пару токенов
// @Description Меняет действующий refresh-токен на новую пару access/refresh токенов.
// Токен передается в заголовке Authorization (Bearer) или в теле запроса.
// @Tags Auth
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer <refresh-токен>"
// @Param request body Request false "Refresh-токен"
// @Success 200 {object} map[string]any "Новая пара токенов"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Неизвестный или истекший refresh-токен"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /token/refresh [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.refresh"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	refreshToken := bearerToken(r)
	if refreshToken == "" {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid request body"))
			return
		}

		if err := h.validate.Struct(req); err != nil {
			log.Error("validation failed", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
			return
		}
		refreshToken = req.RefreshToken
	}

	pair, err := h.service.Refresh(r.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			log.Error("unknown refresh token")
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid or expired refresh token"))
			return
		}
		log.Error("failed to refresh tokens", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to refresh tokens"))
		return
	}

	log.Info("tokens refreshed")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}))
}

// bearerToken извлекает refresh-токен из заголовка Authorization.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
