package venues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eatease/EatEase-BookingService/internal/domain"
	venueRepo "github.com/eatease/EatEase-BookingService/internal/infra/storage/venue"
)

// VenueRepository интерфейс репозитория фудкортов
type VenueRepository interface {
	Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error)
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	List(ctx context.Context, city, nameQuery *string) ([]*domain.Venue, error)
	GetByAdminID(ctx context.Context, adminID int64) ([]*domain.Venue, error)
	Update(ctx context.Context, v *domain.Venue) error
	SoftDelete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service сервис управления фудкортами
type Service struct {
	venueRepo VenueRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса фудкортов
func NewService(venueRepo VenueRepository, logger Logger) *Service {
	return &Service{venueRepo: venueRepo, logger: logger}
}

// CreateVenueRequest запрос на создание фудкорта
type CreateVenueRequest struct {
	Name     string
	Location string
	City     string
}

// Create создает фудкорт; создатель становится его владельцем
func (s *Service) Create(ctx context.Context, req CreateVenueRequest, actor domain.Actor) (*domain.Venue, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}
	if err := validateVenueFields(req.Name, req.Location, req.City); err != nil {
		return nil, err
	}

	v := &domain.Venue{
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
		City:     strings.TrimSpace(req.City),
		AdminID:  actor.ID,
	}

	created, err := s.venueRepo.Create(ctx, v)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: venue id=%d created by admin=%d", created.ID, actor.ID)
	return created, nil
}

// GetByID получает фудкорт по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	v, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetByID: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return v, nil
}

// List получает фудкорты с опциональными фильтрами по городу и имени
func (s *Service) List(ctx context.Context, city, nameQuery *string) ([]*domain.Venue, error) {
	venues, err := s.venueRepo.List(ctx, city, nameQuery)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return venues, nil
}

// ListOwned получает фудкорты, принадлежащие актору
func (s *Service) ListOwned(ctx context.Context, actor domain.Actor) ([]*domain.Venue, error) {
	venues, err := s.venueRepo.GetByAdminID(ctx, actor.ID)
	if err != nil {
		s.logger.Error("ListOwned: repository error for admin=%d: %v", actor.ID, err)
		return nil, fmt.Errorf("%w: ListOwned - repository error: %v", ErrInternal, err)
	}
	return venues, nil
}

// UpdateVenueRequest запрос на обновление фудкорта; nil-поля не меняются
type UpdateVenueRequest struct {
	Name     *string
	Location *string
	City     *string
}

// Update обновляет атрибуты фудкорта (только владелец)
func (s *Service) Update(ctx context.Context, id int64, req UpdateVenueRequest, actor domain.Actor) (*domain.Venue, error) {
	v, err := s.getOwned(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		v.Name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		v.Location = strings.TrimSpace(*req.Location)
	}
	if req.City != nil {
		v.City = strings.TrimSpace(*req.City)
	}

	if err := validateVenueFields(v.Name, v.Location, v.City); err != nil {
		return nil, err
	}

	if err := s.venueRepo.Update(ctx, v); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Update: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: venue id=%d updated by admin=%d", id, actor.ID)
	return v, nil
}

// Delete мягко удаляет фудкорт (только владелец).
// Столы фудкорта логически исчезают вместе с ним; строки остаются в БД.
func (s *Service) Delete(ctx context.Context, id int64, actor domain.Actor) error {
	if _, err := s.getOwned(ctx, id, actor); err != nil {
		return err
	}

	if err := s.venueRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return ErrVenueNotFound
		}
		s.logger.Error("Delete: repository error for venue id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: venue id=%d soft-deleted by admin=%d", id, actor.ID)
	return nil
}

func (s *Service) getOwned(ctx context.Context, id int64, actor domain.Actor) (*domain.Venue, error) {
	v, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !v.IsOwnedBy(actor.ID) {
		s.logger.Warn("getOwned: user=%d is not the owner of venue=%d", actor.ID, id)
		return nil, ErrAccessDenied
	}
	return v, nil
}

func validateVenueFields(name, location, city string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name too long", ErrInvalidInput)
	}
	if strings.TrimSpace(location) == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if strings.TrimSpace(city) == "" {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}
	return nil
}
