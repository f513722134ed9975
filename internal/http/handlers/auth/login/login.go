// Package login реализует HTTP-обработчик входа пациента.
//
// Идентификатором может быть email или национальный идентификатор.
// Отсутствие учётной записи и неверный пароль намеренно различаются
// статусами 404 и 401, как в исходной системе.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/clinic-scheduler/internal/http/response"
	"github.com/magabrotheeeer/clinic-scheduler/internal/lib/sl"
	"github.com/magabrotheeeer/clinic-scheduler/internal/models"
	"github.com/magabrotheeeer/clinic-scheduler/internal/services/auth"
	"github.com/magabrotheeeer/clinic-scheduler/internal/storage"
)

// Request — структура входных данных для входа пациента.
type Request struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// Service описывает интерфейс бизнес-логики входа пациента.
type Service interface {
	Login(ctx context.Context, identifier, password string) (*models.User, error)
}

// Handler обрабатывает HTTP-запросы входа пациента.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Вход пациента
// @Description Проверяет пароль пациента, найденного по email или национальному идентификатору.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пациента"
// @Success 200 {object} response.Response "Успешный вход"
// @Failure 401 {object} response.ErrorResponse "Неверный пароль"
// @Failure 404 {object} response.ErrorResponse "Пациент не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("identifier", req.Identifier))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	_, err := h.service.Login(r.Context(), req.Identifier, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUserNotFound):
			log.Info("login for unknown user", slog.String("identifier", req.Identifier))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
		case errors.Is(err, auth.ErrInvalidCredentials):
			log.Info("wrong password", slog.String("identifier", req.Identifier))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("wrong password"))
		default:
			log.Error("login failed", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("internal error"))
		}
		return
	}

	log.Info("login success", slog.String("identifier", req.Identifier))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "login successful",
	}))
}
