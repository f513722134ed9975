// Package profile содержит логику бизнес-уровня для чтения и обновления
// профиля пациента.
package profile

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/clinic-scheduler/internal/lib/password"
	"github.com/magabrotheeeer/clinic-scheduler/internal/models"
	"github.com/magabrotheeeer/clinic-scheduler/internal/storage"
)

// UserRepository описывает контракт для работы с профилями в базе данных.
type UserRepository interface {
	// FindUserByEmail возвращает пациента по email, либо storage.ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateProfile атомарно обновляет профиль и, если задан, хэш пароля.
	UpdateProfile(ctx context.Context, upd storage.ProfileUpdate) error
}

// Service отвечает за операции с профилем пациента.
type Service struct {
	users  UserRepository
	hasher *password.Hasher
}

// New создает новый экземпляр Service.
func New(users UserRepository, hasher *password.Hasher) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
	}
}

// Get возвращает профиль пациента по email.
func (s *Service) Get(ctx context.Context, email string) (*models.User, error) {
	const op = "profile.Get"

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// UpdateRequest — входные данные обновления профиля. Password не обязателен:
// пустая строка означает "оставить прежний пароль".
type UpdateRequest struct {
	Email      string
	Fullname   string
	NationalID string
	Phone      string
	Password   string
}

// Update всегда записывает fullname, национальный идентификатор и телефон.
// Пароль хешируется и включается в ту же транзакцию только когда он передан
// и не пуст, прежний хэш при этом перестаёт действовать.
func (s *Service) Update(ctx context.Context, req UpdateRequest) error {
	const op = "profile.Update"

	upd := storage.ProfileUpdate{
		Email:      req.Email,
		Fullname:   req.Fullname,
		NationalID: req.NationalID,
		Phone:      req.Phone,
	}
	if req.Password != "" {
		hashed, err := s.hasher.Hash(req.Password)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		upd.PasswordHash = &hashed
	}

	if err := s.users.UpdateProfile(ctx, upd); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
