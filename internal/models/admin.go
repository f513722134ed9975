package models

// Admin представляет учётную запись администратора клиники.
// Записи создаются миграцией, рабочего процесса регистрации администраторов нет.
type Admin struct {
	ID           int    // Уникальный идентификатор администратора
	Username     string // Имя входа (уникальное)
	PasswordHash string // Хэш пароля администратора
}
