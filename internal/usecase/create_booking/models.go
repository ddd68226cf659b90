package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64     // ID клиента (из заголовков гейтвея)
	TableID    int64     // ID стола
	GuestCount int       // Количество гостей
	StartTime  time.Time // Начало окна (UTC)
	EndTime    time.Time // Конец окна, не включается (UTC)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64     // ID созданного бронирования
	TableID    int64     // ID стола
	VenueID    int64     // ID фудкорта стола
	CustomerID int64     // ID клиента
	GuestCount int       // Количество гостей
	StartTime  time.Time // Начало окна
	EndTime    time.Time // Конец окна
	Status     string    // Статус бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
