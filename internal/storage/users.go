package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/clinic-scheduler/internal/models"
)

// ProfileUpdate описывает обновление профиля пациента, найденного по Email.
// Поля Fullname, NationalID и Phone записываются всегда; PasswordHash —
// только если указатель не nil.
type ProfileUpdate struct {
	Email        string
	Fullname     string
	NationalID   string
	Phone        string
	PasswordHash *string
}

// CreateUser сохраняет нового пациента в базу данных и возвращает его ID.
// При нарушении уникальности email или национального идентификатора
// возвращает ErrDuplicateUser: проигравший гонку "проверка, затем вставка"
// получает тот же результат, что и при срабатывании предварительной проверки.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (int, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO users (fullname, email, national_id, phone, password_hash)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Fullname, user.Email, user.NationalID, user.Phone,
		user.PasswordHash).Scan(&newID); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, ErrDuplicateUser)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// FindUserByIdentifier возвращает пациента, чей email ИЛИ национальный
// идентификатор равен identifier. Уникальные ограничения на обе колонки
// гарантируют не больше одного совпадения.
func (s *Storage) FindUserByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	const op = "storage.FindUserByIdentifier"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, fullname, email, national_id, phone, password_hash
			  FROM users
			  WHERE email = $1 OR national_id = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, identifier)

	if err := row.Scan(&u.ID, &u.Fullname, &u.Email, &u.NationalID,
		&u.Phone, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// FindUserByEmail возвращает пациента по его email.
func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.FindUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, fullname, email, national_id, phone, password_hash
			  FROM users
			  WHERE email = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, email)

	if err := row.Scan(&u.ID, &u.Fullname, &u.Email, &u.NationalID,
		&u.Phone, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdateProfile обновляет данные профиля и, при необходимости, хэш пароля
// одной транзакцией: частично обновлённый профиль невозможен. Возвращает
// ErrUserNotFound, если строка с таким email отсутствует, и ErrDuplicateUser,
// если новый национальный идентификатор уже занят другим пациентом.
func (s *Storage) UpdateProfile(ctx context.Context, upd ProfileUpdate) error {
	const op = "storage.UpdateProfile"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `UPDATE users
			  SET fullname = $1, national_id = $2, phone = $3
			  WHERE email = $4`
	result, err := tx.ExecContext(ctx, query,
		upd.Fullname, upd.NationalID, upd.Phone, upd.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, ErrDuplicateUser)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}

	if upd.PasswordHash != nil {
		query = `UPDATE users
				 SET password_hash = $1
				 WHERE email = $2`
		if _, err = tx.ExecContext(ctx, query, *upd.PasswordHash, upd.Email); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
