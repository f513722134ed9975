// Package update реализует HTTP-обработчик обновления профиля пациента.
//
// Поля fullname, nationalId и phone записываются всегда; пароль меняется
// только если передан и не пуст. Оба изменения выполняются одной
// транзакцией хранилища.
package update

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
	"github.com/magabrotheeeer/clinic-scheduler/internal/services/profile"
	"github.com/magabrotheeeer/clinic-scheduler/internal/storage"
)

// Request — входные данные обновления профиля. Email идентифицирует
// обновляемую строку и сам не меняется.
type Request struct {
	Email      string `json:"email" validate:"required,email"`
	Fullname   string `json:"fullname" validate:"required"`
	NationalID string `json:"nationalId" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Password   string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// Service описывает интерфейс бизнес-логики обновления профиля.
type Service interface {
	Update(ctx context.Context, req profile.UpdateRequest) error
}

// Handler обрабатывает HTTP-запросы обновления профиля.
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
// @Summary Обновление профиля пациента
// @Description Обновляет fullname, национальный идентификатор и телефон; пароль — только если передан.
// @Tags Profile
// @Accept  json
// @Produce  json
// @Param request body Request true "Новые данные профиля"
// @Success 200 {object} response.Response "Профиль обновлён"
// @Failure 400 {object} response.ErrorResponse "Национальный идентификатор уже занят"
// @Failure 404 {object} response.ErrorResponse "Пациент не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/profile [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.update"

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
	log.Info("request body decoded", slog.String("email", req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	err := h.service.Update(r.Context(), profile.UpdateRequest{
		Email:      req.Email,
		Fullname:   req.Fullname,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		Password:   req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUserNotFound):
			log.Info("update for unknown user", slog.String("email", req.Email))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
		case errors.Is(err, storage.ErrDuplicateUser):
			log.Info("national id already taken", slog.String("email", req.Email))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("national id already registered"))
		default:
			log.Error("failed to update profile", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("internal error"))
		}
		return
	}

	log.Info("profile updated", slog.String("email", req.Email))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "profile updated successfully",
	}))
}
