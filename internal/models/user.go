// Package models содержит доменные модели системы записи на приём:
// пациента, администратора и запись календаря. Структуры используются
// в бизнес‑логике и при работе с хранилищем.
package models

// User представляет зарегистрированного пациента.
type User struct {
	ID           int    // Уникальный идентификатор пользователя
	Fullname     string // Полное имя
	Email        string // Электронная почта (уникальная)
	NationalID   string // Национальный идентификатор, например CPF (уникальный)
	Phone        string // Контактный телефон
	PasswordHash string // Хэш пароля пользователя
}
