// Package schedule содержит логику бизнес-уровня для чтения календаря приёмов.
package schedule

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/clinic-scheduler/internal/models"
)

// AppointmentRepository описывает контракт для чтения записей календаря.
type AppointmentRepository interface {
	// ListAppointments возвращает все записи в порядке вставки.
	ListAppointments(ctx context.Context) ([]*models.Appointment, error)
}

// Service отвечает за выдачу календаря приёмов.
type Service struct {
	appointments AppointmentRepository
}

// New создает новый экземпляр Service.
func New(appointments AppointmentRepository) *Service {
	return &Service{appointments: appointments}
}

// List возвращает записи календаря для отображения клиенту.
func (s *Service) List(ctx context.Context) ([]*models.Appointment, error) {
	const op = "schedule.List"

	items, err := s.appointments.ListAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}
