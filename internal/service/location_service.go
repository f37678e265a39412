package service

import (
	"context"

	"github.com/asset-inventory-api/internal/domain"
	"github.com/asset-inventory-api/internal/dto"
	"github.com/asset-inventory-api/internal/repository"
)

// LocationService определяет интерфейс бизнес-логики для помещений
type LocationService interface {
	Create(ctx context.Context, req *dto.LocationRequest) (*domain.LocationSpace, error)
	GetDetail(ctx context.Context, id int64) (*domain.LocationDetail, error)
	List(ctx context.Context, query *dto.LocationListQuery) ([]domain.LocationDetail, int64, error)
	Update(ctx context.Context, id int64, req *dto.LocationRequest) (*domain.LocationSpace, error)
	Delete(ctx context.Context, id int64) error
}

type locationService struct {
	locRepo  repository.LocationRepository
	deptRepo repository.DepartmentRepository
}

// NewLocationService создаёт новый экземпляр сервиса
func NewLocationService(locRepo repository.LocationRepository, deptRepo repository.DepartmentRepository) LocationService {
	return &locationService{
		locRepo:  locRepo,
		deptRepo: deptRepo,
	}
}

func (s *locationService) Create(ctx context.Context, req *dto.LocationRequest) (*domain.LocationSpace, error) {
	// Проверяем существование подразделения
	if _, err := s.deptRepo.GetByID(ctx, *req.DeptID); err != nil {
		return nil, err
	}

	loc := &domain.LocationSpace{
		DeptID: *req.DeptID,
		RoomNo: req.RoomNo,
		Area:   *req.Area,
		Remark: req.Remark,
	}
	if err := s.locRepo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *locationService) GetDetail(ctx context.Context, id int64) (*domain.LocationDetail, error) {
	return s.locRepo.GetDetail(ctx, id)
}

func (s *locationService) List(ctx context.Context, query *dto.LocationListQuery) ([]domain.LocationDetail, int64, error) {
	return s.locRepo.List(ctx, repository.LocationFilter{
		Keyword: query.Keyword,
		DeptID:  query.DeptID,
		Page:    query.Page,
		Size:    query.Size,
	})
}

func (s *locationService) Update(ctx context.Context, id int64, req *dto.LocationRequest) (*domain.LocationSpace, error) {
	// Проверяем существование подразделения
	if _, err := s.deptRepo.GetByID(ctx, *req.DeptID); err != nil {
		return nil, err
	}

	loc := &domain.LocationSpace{
		ID:     id,
		DeptID: *req.DeptID,
		RoomNo: req.RoomNo,
		Area:   *req.Area,
		Remark: req.Remark,
	}
	if err := s.locRepo.Update(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *locationService) Delete(ctx context.Context, id int64) error {
	return s.locRepo.Delete(ctx, id)
}
