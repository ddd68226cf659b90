package get_available_tables

import "time"

// Request модель запроса на поиск свободных столов
type Request struct {
	VenueID    int64     // ID фудкорта
	GuestCount int       // Количество гостей
	StartTime  time.Time // Начало окна (UTC)
	EndTime    time.Time // Конец окна, не включается (UTC)
}

// AvailableTable свободный стол в ответе
type AvailableTable struct {
	ID       int64  `json:"id"`
	VenueID  int64  `json:"venueId"`
	Label    string `json:"label"`
	Capacity int    `json:"capacity"`
}

// Response модель ответа со свободными столами
type Response struct {
	Tables []AvailableTable `json:"tables"`
}
