package service

import (
	"context"
	"log/slog"

	"turfbook/internal/cache"
	apperrors "turfbook/internal/errors"
	"turfbook/internal/models"
	"turfbook/internal/repository"
)

// TurfService owns the catalog: locations, services (sports) and turfs
// with their hourly pricing.
type TurfService struct {
	repos *repository.Repositories
	cache *cache.AvailabilityCache
}

func NewTurfService(repos *repository.Repositories, availCache *cache.AvailabilityCache) *TurfService {
	return &TurfService{repos: repos, cache: availCache}
}

func (s *TurfService) CreateLocation(ctx context.Context, req *models.CreateLocationRequest) (*models.Location, error) {
	loc := &models.Location{
		Name:        req.Name,
		AddressLine: req.AddressLine,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
	}
	if err := s.repos.Locations.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *TurfService) ListLocations(ctx context.Context, activeOnly bool) ([]models.Location, error) {
	return s.repos.Locations.List(ctx, activeOnly)
}

func (s *TurfService) SetLocationActive(ctx context.Context, id int64, active bool) error {
	return s.repos.Locations.SetActive(ctx, id, active)
}

func (s *TurfService) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.Service, error) {
	svc := &models.Service{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := s.repos.Services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *TurfService) ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	return s.repos.Services.List(ctx, activeOnly)
}

func (s *TurfService) CreateTurf(ctx context.Context, req *models.CreateTurfRequest) (*models.Turf, error) {
	turf := &models.Turf{
		LocationID: req.LocationID,
		ServiceID:  req.ServiceID,
		Name:       req.Name,
	}
	if err := s.repos.Turfs.Create(ctx, turf); err != nil {
		return nil, err
	}

	s.indexTurf(ctx, turf.ID)
	return turf, nil
}

func (s *TurfService) GetTurf(ctx context.Context, id int64) (*models.Turf, error) {
	turf, err := s.repos.Turfs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if turf == nil {
		return nil, apperrors.ErrTurfNotFound
	}
	return turf, nil
}

func (s *TurfService) ListTurfs(ctx context.Context, locationID int64) ([]models.Turf, error) {
	return s.repos.Turfs.List(ctx, locationID)
}

// SearchTurfs serves text search from the Elasticsearch index, falling
// back to the Postgres listing when no index is configured.
func (s *TurfService) SearchTurfs(ctx context.Context, query, city string, page, pageSize int) ([]models.ListTurfsResponseItem, error) {
	if s.repos.TurfIndex == nil {
		turfs, err := s.repos.Turfs.List(ctx, 0)
		if err != nil {
			return nil, err
		}
		items := make([]models.ListTurfsResponseItem, len(turfs))
		for i, t := range turfs {
			items[i] = models.ListTurfsResponseItem{
				ID:           t.ID,
				Name:         t.Name,
				LocationID:   t.LocationID,
				LocationName: t.LocationName,
				ServiceName:  t.ServiceName,
				IsAvailable:  t.IsAvailable,
			}
		}
		return items, nil
	}

	return s.repos.TurfIndex.Search(ctx, query, city, page, pageSize)
}

func (s *TurfService) SetTurfAvailable(ctx context.Context, id int64, available bool) error {
	if err := s.repos.Turfs.SetAvailable(ctx, id, available); err != nil {
		return err
	}
	s.indexTurf(ctx, id)
	return nil
}

// UpsertPricing replaces the hourly price rows. Availability caches are
// not invalidated here; the short TTL absorbs price changes.
func (s *TurfService) UpsertPricing(ctx context.Context, turfID int64, req *models.UpsertPricingRequest) error {
	turf, err := s.repos.Turfs.GetByID(ctx, turfID)
	if err != nil {
		return err
	}
	if turf == nil {
		return apperrors.ErrTurfNotFound
	}
	return s.repos.Turfs.UpsertPricing(ctx, turfID, req.Slots)
}

func (s *TurfService) DeletePricing(ctx context.Context, turfID int64, hour int) error {
	return s.repos.Turfs.DeletePricing(ctx, turfID, hour)
}

// indexTurf refreshes the search document. Indexing is best-effort;
// failures are logged and never fail the write that triggered them.
func (s *TurfService) indexTurf(ctx context.Context, id int64) {
	if s.repos.TurfIndex == nil {
		return
	}

	turf, err := s.repos.Turfs.GetByID(ctx, id)
	if err != nil || turf == nil {
		slog.Warn("Failed to load turf for indexing", "turf_id", id, "error", err)
		return
	}

	loc, err := s.repos.Locations.GetByID(ctx, turf.LocationID)
	if err != nil || loc == nil {
		slog.Warn("Failed to load location for indexing", "turf_id", id, "error", err)
		return
	}

	city := ""
	if loc.City != nil {
		city = *loc.City
	}

	if err := s.repos.TurfIndex.Index(ctx, turf, city); err != nil {
		slog.Warn("Failed to index turf", "turf_id", id, "error", err)
	}
}
