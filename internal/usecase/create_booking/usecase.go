package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/eatease/EatEase-BookingService/internal/domain"
	tableRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/table"
	venueRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/venue"
	"github.com/eatease/EatEase-BookingService/pkg/metrics"
	"github.com/eatease/EatEase-BookingService/pkg/txmanager"
)

// UseCase use case для создания бронирования стола
type UseCase struct {
	bookingRepo  BookingRepository
	tableRepo    TableRepository
	venueRepo    VenueRepository
	txManager    TransactionManager
	policy       domain.BookingPolicy
	metrics      *metrics.Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. Метрики опциональны (nil).
func NewUseCase(
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	venueRepo VenueRepository,
	txManager TransactionManager,
	policy domain.BookingPolicy,
	m *metrics.Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tableRepo:    tableRepo,
		venueRepo:    venueRepo,
		txManager:    txManager,
		policy:       policy,
		metrics:      m,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования.
// Проверка пересечения и вставка выполняются в одной сериализуемой транзакции
// с блокировкой строки стола, что исключает гонку двух конкурентных запросов
// на одно и то же окно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, table=%d, guests=%d, window=[%s, %s)",
		req.CustomerID, req.TableID, req.GuestCount,
		req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем окно в UTC и проверяем политику заведения
	now := uc.timeProvider.Now()
	start := req.StartTime.UTC()
	end := req.EndTime.UTC()

	if err := validateWindow(uc.policy, start, end, now); err != nil {
		uc.logger.Warn("CreateBooking: window validation failed: %v", err)
		return nil, err
	}

	var (
		result  *domain.Booking
		venueID int64
	)

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем строку стола (FOR UPDATE). Блокировка сериализует
		// все конкурентные создания бронирований этого стола.
		table, err := uc.tableRepo.GetByIDForUpdate(txCtx, req.TableID)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				uc.logger.Warn("CreateBooking: table id=%d not found", req.TableID)
				return ErrTableNotFound
			}
			uc.logger.Error("CreateBooking: failed to get table id=%d: %v", req.TableID, err)
			return fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
		}
		venueID = table.VenueID

		// 3.2. Проверяем, что фудкорт стола не удалён
		if _, err := uc.venueRepo.GetByID(txCtx, table.VenueID); err != nil {
			if errors.Is(err, venueRepo.ErrVenueNotFound) {
				uc.logger.Warn("CreateBooking: venue id=%d not found for table id=%d", table.VenueID, req.TableID)
				return ErrVenueNotFound
			}
			uc.logger.Error("CreateBooking: failed to get venue id=%d: %v", table.VenueID, err)
			return fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
		}

		// 3.3. Проверяем вместимость стола
		if !table.Fits(req.GuestCount) {
			uc.logger.Warn("CreateBooking: table id=%d capacity=%d, requested guests=%d",
				table.ID, table.Capacity, req.GuestCount)
			return ErrInsufficientCapacity
		}

		// 3.4. Проверяем пересечение с активными бронированиями стола
		overlapping, err := uc.bookingRepo.GetActiveOverlapping(txCtx, req.TableID, start, end)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: table id=%d has %d conflicting booking(s) in [%s, %s)",
				req.TableID, len(overlapping), start.Format(time.RFC3339), end.Format(time.RFC3339))
			if uc.metrics != nil {
				uc.metrics.SlotConflictsTotal.WithLabelValues(strconv.FormatInt(venueID, 10)).Inc()
			}
			return ErrSlotConflict
		}

		// 3.5. Создаем бронирование
		booking := &domain.Booking{
			TableID:    req.TableID,
			CustomerID: req.CustomerID,
			GuestCount: req.GuestCount,
			StartTime:  start,
			EndTime:    end,
			Status:     domain.StatusBooked,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Исчерпанные ретраи сериализуемой транзакции транслируем в transient-ошибку
		if errors.Is(err, txmanager.ErrRetryLimitExceeded) {
			uc.logger.Warn("CreateBooking: transaction retry limit exceeded for table id=%d", req.TableID)
			return nil, ErrRetryLater
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	if uc.metrics != nil {
		uc.metrics.BookingsCreatedTotal.WithLabelValues(strconv.FormatInt(venueID, 10)).Inc()
	}

	return &Response{
		ID:         result.ID,
		TableID:    result.TableID,
		VenueID:    venueID,
		CustomerID: result.CustomerID,
		GuestCount: result.GuestCount,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		Status:     string(result.Status),
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
