package service

import (
	"context"

	"github.com/asset-inventory-api/internal/domain"
	"github.com/asset-inventory-api/internal/dto"
	"github.com/asset-inventory-api/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для подразделений
type DepartmentService interface {
	Create(ctx context.Context, req *dto.DepartmentRequest) (*domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	List(ctx context.Context, query *dto.ListQuery) ([]domain.Department, int64, error)
	Update(ctx context.Context, id int64, req *dto.DepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
	Locations(ctx context.Context, id int64) ([]domain.LocationBrief, error)
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
	locRepo  repository.LocationRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository, locRepo repository.LocationRepository) DepartmentService {
	return &departmentService{
		deptRepo: deptRepo,
		locRepo:  locRepo,
	}
}

func (s *departmentService) Create(ctx context.Context, req *dto.DepartmentRequest) (*domain.Department, error) {
	dept := &domain.Department{
		DeptCode: req.DeptCode,
		DeptName: req.DeptName,
		Remark:   req.Remark,
	}
	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *departmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	return s.deptRepo.GetByID(ctx, id)
}

func (s *departmentService) List(ctx context.Context, query *dto.ListQuery) ([]domain.Department, int64, error) {
	return s.deptRepo.List(ctx, query.Keyword, query.Page, query.Size)
}

func (s *departmentService) Update(ctx context.Context, id int64, req *dto.DepartmentRequest) (*domain.Department, error) {
	dept := &domain.Department{
		ID:       id,
		DeptCode: req.DeptCode,
		DeptName: req.DeptName,
		Remark:   req.Remark,
	}
	if err := s.deptRepo.Update(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *departmentService) Delete(ctx context.Context, id int64) error {
	return s.deptRepo.Delete(ctx, id)
}

// Locations возвращает помещения подразделения. Существование
// подразделения не проверяется: неизвестный id даёт пустой список.
func (s *departmentService) Locations(ctx context.Context, id int64) ([]domain.LocationBrief, error) {
	return s.locRepo.ListByDept(ctx, id)
}
