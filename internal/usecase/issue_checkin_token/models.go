package issue_checkin_token

// Request модель запроса на выпуск чекин-токена
type Request struct {
	BookingID int64 // ID бронирования
	WithQR    bool  // Включить в ответ QR-код с токеном
}

// Response модель ответа с чекин-токеном
type Response struct {
	BookingID    int64  `json:"bookingId"`
	CustomerID   int64  `json:"customerId"`
	CheckinToken string `json:"checkinToken"`
	QRCode       string `json:"qrCode,omitempty"` // data URL с PNG
}
