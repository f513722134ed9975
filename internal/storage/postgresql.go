// Package storage реализует хранилище данных на основе PostgreSQL
// для управления пациентами, администраторами и записями календаря.
// Уникальность email, национального идентификатора и имени администратора
// обеспечивается ограничениями базы; кеширования поверх хранилища нет.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки хранилища, по которым слои выше строят ответы клиенту.
var (
	// ErrUserNotFound возвращается, когда пациент с указанным идентификатором не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrAdminNotFound возвращается, когда администратор с указанным именем не найден.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrDuplicateUser возвращается при нарушении уникальности email или национального идентификатора.
	ErrDuplicateUser = errors.New("user already exists")
)

// uniqueViolation код SQLSTATE нарушения уникального ограничения в PostgreSQL.
const uniqueViolation = "23505"

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пациентами, администраторами и календарём.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// Close закрывает соединение с базой данных.
func (s *Storage) Close() error {
	return s.DB.Close()
}

// isUniqueViolation проверяет, является ли ошибка нарушением уникального ограничения.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
