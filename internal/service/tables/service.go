package tables

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eatease/EatEase-BookingService/internal/domain"
	tableRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/table"
	venueRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/venue"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	Create(ctx context.Context, t *domain.Table) (*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	GetByVenueID(ctx context.Context, venueID int64) ([]*domain.Table, error)
	Update(ctx context.Context, t *domain.Table) error
	Delete(ctx context.Context, id int64) error
}

// VenueRepository интерфейс репозитория фудкортов (для проверки владения)
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// BookingRepository интерфейс репозитория бронирований (для производного статуса столов)
type BookingRepository interface {
	GetOverlappingForTables(ctx context.Context, tableIDs []int64, start, end time.Time) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now().UTC() }

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service сервис управления столами фудкорта
type Service struct {
	tableRepo    TableRepository
	venueRepo    VenueRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(
	tableRepo TableRepository,
	venueRepo VenueRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		tableRepo:    tableRepo,
		venueRepo:    venueRepo,
		bookingRepo:  bookingRepo,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// CreateTableRequest запрос на создание стола
type CreateTableRequest struct {
	VenueID  int64
	Label    string
	Capacity int
}

// Create создает стол в фудкорте (только владелец фудкорта)
func (s *Service) Create(ctx context.Context, req CreateTableRequest, actor domain.Actor) (*domain.Table, error) {
	if err := validateTableFields(req.Label, req.Capacity); err != nil {
		return nil, err
	}
	if err := s.checkVenueOwnership(ctx, req.VenueID, actor); err != nil {
		return nil, err
	}

	t := &domain.Table{
		VenueID:  req.VenueID,
		Label:    strings.TrimSpace(req.Label),
		Capacity: req.Capacity,
	}

	created, err := s.tableRepo.Create(ctx, t)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: table id=%d (label=%s, capacity=%d) created in venue=%d",
		created.ID, created.Label, created.Capacity, created.VenueID)
	return created, nil
}

// ListByVenue получает столы фудкорта
func (s *Service) ListByVenue(ctx context.Context, venueID int64) ([]*domain.Table, error) {
	if err := s.checkVenueExists(ctx, venueID); err != nil {
		return nil, err
	}

	list, err := s.tableRepo.GetByVenueID(ctx, venueID)
	if err != nil {
		s.logger.Error("ListByVenue: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListByVenue - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// ListByVenueWithStatus получает столы фудкорта вместе с производной занятостью
// на текущий момент. Занятость нигде не хранится: стол occupied, если активное
// бронирование покрывает текущий момент.
func (s *Service) ListByVenueWithStatus(ctx context.Context, venueID int64) ([]*domain.TableStatus, error) {
	tables, err := s.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	ids := make([]int64, len(tables))
	for i, t := range tables {
		ids[i] = t.ID
	}

	// Активные бронирования, чьё окно покрывает now: [now, now+ε) пересекается
	// с окном ровно тогда, когда start <= now < end
	covering, err := s.bookingRepo.GetOverlappingForTables(ctx, ids, now, now.Add(time.Nanosecond))
	if err != nil {
		s.logger.Error("ListByVenueWithStatus: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListByVenueWithStatus - repository error: %v", ErrInternal, err)
	}

	occupied := make(map[int64]bool, len(covering))
	for _, b := range covering {
		occupied[b.TableID] = true
	}

	statuses := make([]*domain.TableStatus, len(tables))
	for i, t := range tables {
		occ := domain.TableAvailable
		if occupied[t.ID] {
			occ = domain.TableOccupied
		}
		statuses[i] = &domain.TableStatus{Table: *t, Occupancy: occ}
	}

	return statuses, nil
}

// UpdateTableRequest запрос на обновление стола; nil-поля не меняются
type UpdateTableRequest struct {
	Label    *string
	Capacity *int
}

// Update обновляет подпись и вместимость стола (только владелец фудкорта)
func (s *Service) Update(ctx context.Context, tableID int64, req UpdateTableRequest, actor domain.Actor) (*domain.Table, error) {
	t, err := s.getOwned(ctx, tableID, actor)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		t.Label = strings.TrimSpace(*req.Label)
	}
	if req.Capacity != nil {
		t.Capacity = *req.Capacity
	}

	if err := validateTableFields(t.Label, t.Capacity); err != nil {
		return nil, err
	}

	if err := s.tableRepo.Update(ctx, t); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		s.logger.Error("Update: repository error for table id=%d: %v", tableID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: table id=%d updated", tableID)
	return t, nil
}

// Delete удаляет стол (только владелец фудкорта).
// История бронирований стола остаётся как аудиторский след.
func (s *Service) Delete(ctx context.Context, tableID int64, actor domain.Actor) error {
	if _, err := s.getOwned(ctx, tableID, actor); err != nil {
		return err
	}

	if err := s.tableRepo.Delete(ctx, tableID); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return ErrTableNotFound
		}
		s.logger.Error("Delete: repository error for table id=%d: %v", tableID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: table id=%d deleted", tableID)
	return nil
}

func (s *Service) getOwned(ctx context.Context, tableID int64, actor domain.Actor) (*domain.Table, error) {
	t, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		s.logger.Error("getOwned: repository error for table id=%d: %v", tableID, err)
		return nil, fmt.Errorf("%w: getOwned - repository error: %v", ErrInternal, err)
	}

	if err := s.checkVenueOwnership(ctx, t.VenueID, actor); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) checkVenueExists(ctx context.Context, venueID int64) error {
	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return ErrVenueNotFound
		}
		s.logger.Error("checkVenueExists: repository error for venue=%d: %v", venueID, err)
		return fmt.Errorf("%w: checkVenueExists - repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) checkVenueOwnership(ctx context.Context, venueID int64, actor domain.Actor) error {
	v, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return ErrVenueNotFound
		}
		s.logger.Error("checkVenueOwnership: repository error for venue=%d: %v", venueID, err)
		return fmt.Errorf("%w: checkVenueOwnership - repository error: %v", ErrInternal, err)
	}

	if !v.IsOwnedBy(actor.ID) && !actor.IsAdmin() {
		s.logger.Warn("checkVenueOwnership: user=%d is not the owner of venue=%d", actor.ID, venueID)
		return ErrAccessDenied
	}
	return nil
}

func validateTableFields(label string, capacity int) error {
	if strings.TrimSpace(label) == "" {
		return fmt.Errorf("%w: label is required", ErrInvalidInput)
	}
	if len(label) > domain.MaxLabelLength {
		return fmt.Errorf("%w: label too long", ErrInvalidInput)
	}
	if capacity < domain.MinTableCapacity || capacity > domain.MaxTableCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinTableCapacity, domain.MaxTableCapacity)
	}
	return nil
}
