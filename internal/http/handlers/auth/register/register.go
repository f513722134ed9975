// Package register реализует HTTP-обработчик регистрации пациента.
//
// В нём определяется структура Request для входных данных, выполняется
// декодирование JSON, валидация полей и делегирование операции сервису
// аутентификации. Пароль и его хэш в ответ не попадают.
package register

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
	"github.com/magabrotheeeer/clinic-scheduler/internal/services/auth"
	"github.com/magabrotheeeer/clinic-scheduler/internal/storage"
)

// Request — входные данные для регистрации.
type Request struct {
	Fullname   string `json:"fullname" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	NationalID string `json:"nationalId" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, req auth.RegisterRequest) (int, error)
}

// Handler обрабатывает HTTP-запросы регистрации.
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
// @Summary Регистрация пациента
// @Description Создаёт учётную запись пациента. Email и национальный идентификатор уникальны.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные пациента"
// @Success 201 {object} response.Response "Пациент зарегистрирован"
// @Failure 400 {object} response.ErrorResponse "Email или национальный идентификатор уже заняты"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

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

	_, err := h.service.Register(r.Context(), auth.RegisterRequest{
		Fullname:   req.Fullname,
		Email:      req.Email,
		NationalID: req.NationalID,
		Phone:      req.Phone,
		Password:   req.Password,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateUser) {
			log.Info("duplicate registration rejected", slog.String("email", req.Email))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("email or national id already registered"))
			return
		}
		log.Error("registration failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to register user"))
		return
	}

	log.Info("user registered", slog.String("email", req.Email))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "user registered successfully",
	}))
}
