package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eatease/EatEase-BookingService/internal/domain"
	bookingRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/booking"
	venueRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/venue"
)

// Service движок переходов жизненного цикла бронирования.
// Каждый переход выполняется в транзакции: бронирование читается с блокировкой
// строки (FOR UPDATE), guard проверяется, статус пишется — конкурентные
// переходы по одному бронированию сериализуются на этой блокировке.
type Service struct {
	bookingRepo  BookingRepository
	venueRepo    VenueRepository
	txManager    TransactionManager
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр движка переходов
func NewService(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	txManager TransactionManager,
	policy domain.BookingPolicy,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		venueRepo:    venueRepo,
		txManager:    txManager,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование по ID.
// Пользователь видит только свои бронирования, админ — любые.
func (s *Service) GetByID(ctx context.Context, bookingID int64, actor domain.Actor) (*domain.Booking, error) {
	b, err := s.get(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.CustomerID != actor.ID && !actor.IsAdmin() {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.ID, bookingID)
		return nil, ErrAccessDenied
	}

	return b, nil
}

// GetUserBookings получает историю бронирований пользователя, новые первыми
func (s *Service) GetUserBookings(ctx context.Context, customerID int64, status *string, actor domain.Actor) ([]*domain.Booking, error) {
	if customerID != actor.ID && !actor.IsAdmin() {
		s.logger.Warn("GetUserBookings: access denied for user=%d to user=%d history", actor.ID, customerID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if status != nil {
		parsed, ok := domain.ParseBookingStatus(*status)
		if !ok {
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *status)
		}
		domainStatus = &parsed
	}

	list, err := s.bookingRepo.GetByCustomerID(ctx, customerID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	return list, nil
}

// GetNextBooking возвращает ближайшее предстоящее активное бронирование пользователя
func (s *Service) GetNextBooking(ctx context.Context, actor domain.Actor) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetNextForCustomer(ctx, actor.ID, s.timeProvider.Now())
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetNextBooking: repository error for user=%d: %v", actor.ID, err)
		return nil, fmt.Errorf("%w: GetNextBooking - repository error: %v", ErrInternal, err)
	}
	return b, nil
}

// GetVenueBookings получает бронирования фудкорта с фильтром.
// Доступно владельцу фудкорта и платформенным админам.
func (s *Service) GetVenueBookings(ctx context.Context, venueID int64, filter domain.VenueBookingsFilter, actor domain.Actor) ([]*domain.Booking, error) {
	if err := s.checkVenueAccess(ctx, venueID, actor); err != nil {
		return nil, err
	}

	list, err := s.bookingRepo.GetByVenueWithFilter(ctx, venueID, filter, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("GetVenueBookings: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetVenueBookings - repository error: %v", ErrInternal, err)
	}

	return list, nil
}

// CheckIn переводит бронирование в checked_in.
// Идемпотентен: повторный чек-ин уже отмеченного бронирования — успех, не ошибка.
// Бизнес-окно проверяется здесь заново при каждом вызове: предъявление после
// end_time отклоняется независимо от срока жизни токена.
func (s *Service) CheckIn(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	now := s.timeProvider.Now()

	var result *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		b, err := s.getTx(txCtx, bookingID)
		if err != nil {
			return err
		}

		if b.Status == domain.StatusCheckedIn {
			s.logger.Info("CheckIn: booking id=%d already checked in", bookingID)
			result = b
			return nil
		}

		if b.Status != domain.StatusBooked {
			s.logger.Warn("CheckIn: booking id=%d in terminal status=%s", bookingID, b.Status)
			return ErrNotCheckInable
		}

		if now.Before(s.policy.PickupOpensAt(b.StartTime)) {
			s.logger.Warn("CheckIn: too early for booking id=%d (start=%s)", bookingID, b.StartTime)
			return ErrCheckInTooEarly
		}
		if now.After(b.EndTime) {
			s.logger.Warn("CheckIn: window ended for booking id=%d (end=%s)", bookingID, b.EndTime)
			return ErrCheckInClosed
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusCheckedIn); err != nil {
			return s.wrapRepoErr("CheckIn", bookingID, err)
		}

		b.Status = domain.StatusCheckedIn
		result = b
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("CheckIn: booking id=%d checked in", bookingID)
	return result, nil
}

// Cancel отменяет бронирование.
// Разрешено владельцу бронирования и платформенному админу; начавшийся визит
// (checked_in) и освобождённое бронирование отменить нельзя.
func (s *Service) Cancel(ctx context.Context, bookingID int64, actor domain.Actor) (*domain.Booking, error) {
	var result *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		b, err := s.getTx(txCtx, bookingID)
		if err != nil {
			return err
		}

		if b.CustomerID != actor.ID && !actor.IsAdmin() {
			s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", actor.ID, bookingID)
			return ErrAccessDenied
		}

		if !b.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d not cancellable, status=%s", bookingID, b.Status)
			return ErrNotCancellable
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusCancelled); err != nil {
			return s.wrapRepoErr("Cancel", bookingID, err)
		}

		b.Status = domain.StatusCancelled
		result = b
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: booking id=%d cancelled by user=%d", bookingID, actor.ID)
	return result, nil
}

// Release добровольно освобождает ожидающее бронирование (операция админа)
func (s *Service) Release(ctx context.Context, bookingID int64, actor domain.Actor) (*domain.Booking, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}

	var result *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		b, err := s.getTx(txCtx, bookingID)
		if err != nil {
			return err
		}

		if b.Status != domain.StatusBooked {
			s.logger.Warn("Release: booking id=%d not in booked status, status=%s", bookingID, b.Status)
			return ErrNotActive
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusReleased); err != nil {
			return s.wrapRepoErr("Release", bookingID, err)
		}

		b.Status = domain.StatusReleased
		result = b
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Release: booking id=%d released", bookingID)
	return result, nil
}

// ForceRelease принудительно освобождает активное бронирование и обрезает
// end_time до текущего момента, сразу делая стол доступным.
func (s *Service) ForceRelease(ctx context.Context, bookingID int64, actor domain.Actor) (*domain.Booking, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}

	now := s.timeProvider.Now()

	var result *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		b, err := s.getTx(txCtx, bookingID)
		if err != nil {
			return err
		}

		if !b.IsActive() {
			s.logger.Warn("ForceRelease: booking id=%d not active, status=%s", bookingID, b.Status)
			return ErrNotActive
		}

		if err := s.bookingRepo.ForceRelease(txCtx, bookingID, now); err != nil {
			return s.wrapRepoErr("ForceRelease", bookingID, err)
		}

		b.Status = domain.StatusReleased
		b.EndTime = now
		result = b
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("ForceRelease: booking id=%d force released, table freed", bookingID)
	return result, nil
}

// SweepNoShows переводит в no_show все booked-бронирования, чьё окно уже прошло.
// Возвращает число обновлённых записей. checked_in записи не трогает.
func (s *Service) SweepNoShows(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()

	count, err := s.bookingRepo.MarkNoShows(ctx, now)
	if err != nil {
		s.logger.Error("SweepNoShows: repository error: %v", err)
		return 0, fmt.Errorf("%w: SweepNoShows - repository error: %v", ErrInternal, err)
	}

	if count > 0 {
		s.logger.Info("SweepNoShows: marked %d bookings as no_show", count)
	}
	return count, nil
}

// Stats статистика по бронированиям платформы
type Stats struct {
	ActiveBookings    int64
	TodayReservations int64
}

// GetStats возвращает статистику бронирований (операция админа)
func (s *Service) GetStats(ctx context.Context, actor domain.Actor) (*Stats, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}

	now := s.timeProvider.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	active, err := s.bookingRepo.CountActive(ctx)
	if err != nil {
		s.logger.Error("GetStats: count active failed: %v", err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	today, err := s.bookingRepo.CountStartingBetween(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		s.logger.Error("GetStats: count today failed: %v", err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	return &Stats{ActiveBookings: active, TodayReservations: today}, nil
}

// Вспомогательные методы

func (s *Service) get(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("get: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: get - repository error: %v", ErrInternal, err)
	}
	return b, nil
}

// getTx читает бронирование внутри транзакции; репозиторий при этом берёт FOR UPDATE
func (s *Service) getTx(txCtx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.get(txCtx, bookingID)
}

func (s *Service) wrapRepoErr(op string, bookingID int64, err error) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		return ErrBookingNotFound
	}
	s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func (s *Service) checkVenueAccess(ctx context.Context, venueID int64, actor domain.Actor) error {
	if actor.IsAdmin() {
		return nil
	}

	v, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return ErrVenueNotFound
		}
		s.logger.Error("checkVenueAccess: failed to get venue id=%d: %v", venueID, err)
		return fmt.Errorf("%w: checkVenueAccess - repository error: %v", ErrInternal, err)
	}

	if !v.IsOwnedBy(actor.ID) {
		s.logger.Warn("checkVenueAccess: user=%d is not the owner of venue=%d", actor.ID, venueID)
		return ErrAccessDenied
	}
	return nil
}
