package issue_checkin_token

import (
	"context"
	"errors"
	"fmt"

	"github.com/eatease/EatEase-BookingService/internal/domain"
	bookingRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/booking"
)

// UseCase use case для выпуска чекин-токена и QR-кода по бронированию
type UseCase struct {
	bookingRepo  BookingRepository
	signer       TokenSigner
	qrGenerator  QRGenerator
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	signer TokenSigner,
	qrGenerator QRGenerator,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		signer:       signer,
		qrGenerator:  qrGenerator,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case выпуска чекин-токена.
// Токен выдается только владельцу активного бронирования и только после
// открытия окна самовывоза.
func (uc *UseCase) Execute(ctx context.Context, req *Request, actor domain.Actor) (*Response, error) {
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("IssueCheckinToken: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("IssueCheckinToken: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.CustomerID != actor.ID && !actor.IsAdmin() {
		uc.logger.Warn("IssueCheckinToken: user=%d is not the owner of booking id=%d", actor.ID, req.BookingID)
		return nil, ErrAccessDenied
	}

	if !booking.IsActive() {
		uc.logger.Warn("IssueCheckinToken: booking id=%d has status=%s", booking.ID, booking.Status)
		return nil, ErrNotActive
	}

	now := uc.timeProvider.Now()
	if now.Before(uc.policy.PickupOpensAt(booking.StartTime)) {
		uc.logger.Warn("IssueCheckinToken: pickup window for booking id=%d is not open yet", booking.ID)
		return nil, ErrTooEarly
	}
	if now.After(booking.EndTime) {
		uc.logger.Warn("IssueCheckinToken: booking id=%d has already ended", booking.ID)
		return nil, ErrBookingEnded
	}

	token, err := uc.signer.Issue(booking.ID, now)
	if err != nil {
		uc.logger.Error("IssueCheckinToken: failed to sign token for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to sign token: %v", ErrInternal, err)
	}

	resp := &Response{
		BookingID:    booking.ID,
		CustomerID:   booking.CustomerID,
		CheckinToken: token,
	}

	if req.WithQR {
		qr, err := uc.qrGenerator.Generate(token)
		if err != nil {
			uc.logger.Error("IssueCheckinToken: failed to generate QR for booking id=%d: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: failed to generate QR code: %v", ErrInternal, err)
		}
		resp.QRCode = qr
	}

	uc.logger.Info("IssueCheckinToken: token issued for booking id=%d", booking.ID)
	return resp, nil
}
