package get_available_tables

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eatease/EatEase-BookingService/internal/domain"
	venueRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/venue"
)

// UseCase use case для поиска свободных столов фудкорта на временное окно
type UseCase struct {
	bookingRepo  BookingRepository
	tableRepo    TableRepository
	venueRepo    VenueRepository
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	venueRepo VenueRepository,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tableRepo:    tableRepo,
		venueRepo:    venueRepo,
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

// Execute выполняет use case поиска свободных столов.
// Ответ консультативный: без блокировок, следующая проверка при создании
// бронирования остаётся обязательной.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTables: venue=%d, guests=%d, window=[%s, %s)",
		req.VenueID, req.GuestCount,
		req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTables: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем окно в UTC и проверяем политику заведения
	now := uc.timeProvider.Now()
	start := req.StartTime.UTC()
	end := req.EndTime.UTC()

	if err := uc.policy.ValidateWindow(start, end, now); err != nil {
		if errors.Is(err, domain.ErrInvalidWindow) {
			uc.logger.Warn("GetAvailableTables: window validation failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Проверяем существование фудкорта
	if _, err := uc.venueRepo.GetByID(ctx, req.VenueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("GetAvailableTables: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetAvailableTables: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 4. Столы фудкорта с достаточной вместимостью
	tables, err := uc.tableRepo.GetByVenueID(ctx, req.VenueID)
	if err != nil {
		uc.logger.Error("GetAvailableTables: failed to get tables for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	fitting := make([]*domain.Table, 0, len(tables))
	fittingIDs := make([]int64, 0, len(tables))
	for _, t := range tables {
		if t.Fits(req.GuestCount) {
			fitting = append(fitting, t)
			fittingIDs = append(fittingIDs, t.ID)
		}
	}

	if len(fitting) == 0 {
		return &Response{Tables: []AvailableTable{}}, nil
	}

	// 5. Убираем столы с активными бронированиями, пересекающими окно
	overlapping, err := uc.bookingRepo.GetOverlappingForTables(ctx, fittingIDs, start, end)
	if err != nil {
		uc.logger.Error("GetAvailableTables: failed to get overlapping bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
	}

	busy := make(map[int64]bool, len(overlapping))
	for _, b := range overlapping {
		busy[b.TableID] = true
	}

	resp := &Response{Tables: make([]AvailableTable, 0, len(fitting))}
	for _, t := range fitting {
		if busy[t.ID] {
			continue
		}
		resp.Tables = append(resp.Tables, AvailableTable{
			ID:       t.ID,
			VenueID:  t.VenueID,
			Label:    t.Label,
			Capacity: t.Capacity,
		})
	}

	uc.logger.Info("GetAvailableTables: venue=%d, %d of %d fitting table(s) available",
		req.VenueID, len(resp.Tables), len(fitting))
	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.GuestCount < domain.MinGuestCount || req.GuestCount > domain.MaxGuestCount {
		return fmt.Errorf("%w: guestCount must be between %d and %d",
			ErrInvalidInput, domain.MinGuestCount, domain.MaxGuestCount)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	return nil
}
