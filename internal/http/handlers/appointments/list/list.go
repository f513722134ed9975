// Package list реализует HTTP-обработчик выдачи календаря приёмов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/clinic-scheduler/internal/http/response"
	"github.com/magabrotheeeer/clinic-scheduler/internal/lib/sl"
	"github.com/magabrotheeeer/clinic-scheduler/internal/models"
)

// Appointment — проекция записи календаря для клиента: только название и начало.
type Appointment struct {
	Title string `json:"title"`
	Start string `json:"start"`
}

// Service описывает интерфейс бизнес-логики чтения календаря.
type Service interface {
	List(ctx context.Context) ([]*models.Appointment, error)
}

// Handler обрабатывает HTTP-запросы чтения календаря.
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
// @Summary Календарь приёмов
// @Description Возвращает все записи календаря в порядке вставки.
// @Tags Appointments
// @Produce  json
// @Success 200 {array} Appointment "Записи календаря"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/appointments [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.appointments.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	items, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list appointments", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	result := make([]Appointment, 0, len(items))
	for _, item := range items {
		result = append(result, Appointment{
			Title: item.Title,
			Start: item.Start,
		})
	}

	log.Info("appointments listed", slog.Int("count", len(result)))
	render.JSON(w, r, result)
}
