// Package auth содержит логику бизнес-уровня для регистрации и входа
// пациентов и администраторов.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/clinic-scheduler/internal/lib/password"
	"github.com/magabrotheeeer/clinic-scheduler/internal/models"
	"github.com/magabrotheeeer/clinic-scheduler/internal/storage"
)

// ErrInvalidCredentials возвращается, когда учётная запись найдена,
// но пароль не совпал. Отличается от storage.ErrUserNotFound намеренно:
// клиент получает 401 вместо 404, как и в исходной системе.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пациентами в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пациента и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int, error)

	// FindUserByIdentifier возвращает пациента по email или национальному
	// идентификатору, либо storage.ErrUserNotFound.
	FindUserByIdentifier(ctx context.Context, identifier string) (*models.User, error)
}

// AdminRepository описывает контракт для чтения администраторов.
type AdminRepository interface {
	// FindAdminByUsername возвращает администратора по имени входа,
	// либо storage.ErrAdminNotFound.
	FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
}

// Service отвечает за регистрацию и проверку учётных данных.
type Service struct {
	users  UserRepository
	admins AdminRepository
	hasher *password.Hasher
}

// New создает новый экземпляр Service.
func New(users UserRepository, admins AdminRepository, hasher *password.Hasher) *Service {
	return &Service{
		users:  users,
		admins: admins,
		hasher: hasher,
	}
}

// RegisterRequest — входные данные регистрации пациента.
type RegisterRequest struct {
	Fullname   string
	Email      string
	NationalID string
	Phone      string
	Password   string
}

// Register создает нового пациента: проверяет уникальность email и
// национального идентификатора, хеширует пароль и вставляет запись.
// Проверка выполняется до хеширования, чтобы не тратить работу bcrypt
// на заведомо дублирующую заявку. Гонку двух одновременных регистраций
// закрывает уникальное ограничение базы: проигравший также получает
// storage.ErrDuplicateUser.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (int, error) {
	const op = "auth.Register"

	for _, identifier := range []string{req.Email, req.NationalID} {
		_, err := s.users.FindUserByIdentifier(ctx, identifier)
		if err == nil {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrDuplicateUser)
		}
		if !errors.Is(err, storage.ErrUserNotFound) {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		Fullname:     req.Fullname,
		Email:        req.Email,
		NationalID:   req.NationalID,
		Phone:        req.Phone,
		PasswordHash: hashed,
	}
	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Login проверяет пароль пациента, найденного по email или национальному
// идентификатору. Возвращает storage.ErrUserNotFound, если учётной записи
// нет, и ErrInvalidCredentials при несовпадении пароля.
func (s *Service) Login(ctx context.Context, identifier, rawPassword string) (*models.User, error) {
	const op = "auth.Login"

	user, err := s.users.FindUserByIdentifier(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.hasher.Compare(user.PasswordHash, rawPassword); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	return user, nil
}

// AdminLogin проверяет пароль администратора, найденного по имени входа.
// Возвращает storage.ErrAdminNotFound, если учётной записи нет,
// и ErrInvalidCredentials при несовпадении пароля.
func (s *Service) AdminLogin(ctx context.Context, username, rawPassword string) (*models.Admin, error) {
	const op = "auth.AdminLogin"

	admin, err := s.admins.FindAdminByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.hasher.Compare(admin.PasswordHash, rawPassword); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	return admin, nil
}
