package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/clinic-scheduler/internal/models"
)

// ListAppointments возвращает все записи календаря в порядке вставки.
func (s *Storage) ListAppointments(ctx context.Context) ([]*models.Appointment, error) {
	const op = "storage.ListAppointments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, start_time
			  FROM appointments
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Appointment
	for rows.Next() {
		var item models.Appointment
		if err := rows.Scan(&item.ID, &item.Title, &item.Start); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
