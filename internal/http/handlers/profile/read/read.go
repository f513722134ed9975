// Package read реализует HTTP-обработчик чтения профиля пациента.
// Пациент идентифицируется email из query-параметра; хэш пароля
// в ответ не включается.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/clinic-scheduler/internal/http/response"
	"github.com/magabrotheeeer/clinic-scheduler/internal/lib/sl"
	"github.com/magabrotheeeer/clinic-scheduler/internal/models"
	"github.com/magabrotheeeer/clinic-scheduler/internal/storage"
)

// Service описывает интерфейс бизнес-логики чтения профиля.
type Service interface {
	Get(ctx context.Context, email string) (*models.User, error)
}

// Handler обрабатывает HTTP-запросы чтения профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Профиль пациента
// @Description Возвращает профиль пациента по email из query-параметра.
// @Tags Profile
// @Produce  json
// @Param email query string true "Email пациента"
// @Success 200 {object} response.Response "Данные профиля"
// @Failure 400 {object} response.ErrorResponse "Не передан email"
// @Failure 404 {object} response.ErrorResponse "Пациент не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := r.URL.Query().Get("email")
	if email == "" {
		log.Error("missing email query parameter")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("email is required"))
		return
	}

	user, err := h.service.Get(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Info("profile for unknown user", slog.String("email", email))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to read profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("profile read", slog.String("email", email))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"fullname":   user.Fullname,
		"email":      user.Email,
		"nationalId": user.NationalID,
		"phone":      user.Phone,
	}))
}
