package models

// Appointment представляет запись календаря приёмов.
// В рамках сервиса записи доступны только для чтения.
type Appointment struct {
	ID    int    // Уникальный идентификатор записи
	Title string // Название приёма
	Start string // Дата и время начала в строковом виде, как хранит календарь
}
