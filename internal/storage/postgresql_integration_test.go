package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/clinic-scheduler/internal/models"
)

func TestStorage_CreateUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	user := models.User{
		Fullname:     "Ana",
		Email:        UniqueEmail(),
		NationalID:   "111",
		Phone:        "555",
		PasswordHash: "hashedpassword",
	}

	id, err := storage.CreateUser(ctx, user)
	require.NoError(t, err)
	assert.Greater(t, id, 0)

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := user
		dup.NationalID = "222"
		_, err := storage.CreateUser(ctx, dup)
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})

	t.Run("duplicate national id rejected", func(t *testing.T) {
		dup := user
		dup.Email = "other@x.com"
		_, err := storage.CreateUser(ctx, dup)
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})
}

// Две одновременные регистрации с одним email: ровно одна вставка проходит,
// проигравшая получает ErrDuplicateUser от уникального ограничения базы.
func TestStorage_CreateUser_ConcurrentDuplicate(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	user := models.User{
		Fullname:     "Ana",
		Email:        "race@x.com",
		NationalID:   "333",
		Phone:        "555",
		PasswordHash: "hashedpassword",
	}

	const attempts = 2
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = storage.CreateUser(ctx, user)
		}()
	}
	wg.Wait()

	var succeeded, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrDuplicateUser):
			duplicates++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, duplicates)

	var count int
	err := storage.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE email = $1`, user.Email).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStorage_FindUserByIdentifier(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateUser(t, "Ana", "ana@x.com", "111", "555", "hashedpassword")

	ctx := context.Background()

	t.Run("lookup by email and national id return the same row", func(t *testing.T) {
		byEmail, err := storage.FindUserByIdentifier(ctx, "ana@x.com")
		require.NoError(t, err)

		byNationalID, err := storage.FindUserByIdentifier(ctx, "111")
		require.NoError(t, err)

		assert.Equal(t, byEmail, byNationalID)
		assert.Equal(t, "Ana", byEmail.Fullname)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := storage.FindUserByIdentifier(ctx, "ghost@x.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestStorage_FindUserByEmail(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateUser(t, "Ana", "ana@x.com", "111", "555", "hashedpassword")

	ctx := context.Background()

	got, err := storage.FindUserByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, "111", got.NationalID)

	// Поиск по email не должен совпадать с национальным идентификатором.
	_, err = storage.FindUserByEmail(ctx, "111")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStorage_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("updates fields and keeps password", func(t *testing.T) {
		storage, cleanup := setupTestDatabase(t)
		defer cleanup()

		factory := NewTestDataFactory(storage)
		factory.CreateUser(t, "Ana", "ana@x.com", "111", "555", "oldhash")

		err := storage.UpdateProfile(ctx, ProfileUpdate{
			Email:      "ana@x.com",
			Fullname:   "Ana Maria",
			NationalID: "112",
			Phone:      "556",
		})
		require.NoError(t, err)

		got, err := storage.FindUserByEmail(ctx, "ana@x.com")
		require.NoError(t, err)
		assert.Equal(t, "Ana Maria", got.Fullname)
		assert.Equal(t, "112", got.NationalID)
		assert.Equal(t, "556", got.Phone)
		assert.Equal(t, "oldhash", got.PasswordHash)
	})

	t.Run("rotates password when hash provided", func(t *testing.T) {
		storage, cleanup := setupTestDatabase(t)
		defer cleanup()

		factory := NewTestDataFactory(storage)
		factory.CreateUser(t, "Ana", "ana@x.com", "111", "555", "oldhash")

		newHash := "newhash"
		err := storage.UpdateProfile(ctx, ProfileUpdate{
			Email:        "ana@x.com",
			Fullname:     "Ana",
			NationalID:   "111",
			Phone:        "555",
			PasswordHash: &newHash,
		})
		require.NoError(t, err)

		got, err := storage.FindUserByEmail(ctx, "ana@x.com")
		require.NoError(t, err)
		assert.Equal(t, "newhash", got.PasswordHash)
	})

	t.Run("unknown email surfaces not found", func(t *testing.T) {
		storage, cleanup := setupTestDatabase(t)
		defer cleanup()

		err := storage.UpdateProfile(ctx, ProfileUpdate{
			Email:      "ghost@x.com",
			Fullname:   "Ghost",
			NationalID: "999",
			Phone:      "000",
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("national id of another user rejected", func(t *testing.T) {
		storage, cleanup := setupTestDatabase(t)
		defer cleanup()

		factory := NewTestDataFactory(storage)
		factory.CreateUser(t, "Ana", "ana@x.com", "111", "555", "hash1")
		factory.CreateUser(t, "Bob", "bob@x.com", "222", "556", "hash2")

		err := storage.UpdateProfile(ctx, ProfileUpdate{
			Email:      "bob@x.com",
			Fullname:   "Bob",
			NationalID: "111",
			Phone:      "556",
		})
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})
}

func TestStorage_FindAdminByUsername(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateAdmin(t, "admin", "adminhash")

	ctx := context.Background()

	got, err := storage.FindAdminByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)
	assert.Equal(t, "adminhash", got.PasswordHash)

	_, err = storage.FindAdminByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestStorage_ListAppointments(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateAppointment(t, "Consulta inicial", "2026-09-01T09:00:00")
	factory.CreateAppointment(t, "Retorno", "2026-09-03T14:30:00")

	ctx := context.Background()

	got, err := storage.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Consulta inicial", got[0].Title)
	assert.Equal(t, "2026-09-01T09:00:00", got[0].Start)
	assert.Equal(t, "Retorno", got[1].Title)
}

func TestStorage_ListAppointments_Empty(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	got, err := storage.ListAppointments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
