package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/clinic-scheduler/internal/models"
)

// FindAdminByUsername возвращает администратора по его имени входа.
func (s *Storage) FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	const op = "storage.FindAdminByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, password_hash
			  FROM admins
			  WHERE username = $1`
	a := &models.Admin{}
	row := s.DB.QueryRowContext(ctx, query, username)

	if err := row.Scan(&a.ID, &a.Username, &a.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrAdminNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}
