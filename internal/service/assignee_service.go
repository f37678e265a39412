package service

import (
	"context"

	"github.com/asset-inventory-api/internal/domain"
	"github.com/asset-inventory-api/internal/dto"
	"github.com/asset-inventory-api/internal/repository"
)

// AssigneeService определяет интерфейс бизнес-логики для сотрудников
type AssigneeService interface {
	Create(ctx context.Context, req *dto.AssigneeRequest) (*domain.Assignee, error)
	GetByID(ctx context.Context, id int64) (*domain.Assignee, error)
	List(ctx context.Context, query *dto.ListQuery) ([]domain.Assignee, int64, error)
	Update(ctx context.Context, id int64, req *dto.AssigneeRequest) (*domain.Assignee, error)
	Delete(ctx context.Context, id int64) error
	Assets(ctx context.Context, id int64, page, size int) ([]domain.AssigneeAsset, int64, error)
}

type assigneeService struct {
	assigneeRepo repository.AssigneeRepository
	assetRepo    repository.AssetRepository
}

// NewAssigneeService создаёт новый экземпляр сервиса
func NewAssigneeService(assigneeRepo repository.AssigneeRepository, assetRepo repository.AssetRepository) AssigneeService {
	return &assigneeService{
		assigneeRepo: assigneeRepo,
		assetRepo:    assetRepo,
	}
}

func (s *assigneeService) Create(ctx context.Context, req *dto.AssigneeRequest) (*domain.Assignee, error) {
	assignee := &domain.Assignee{
		EmpNo:  req.EmpNo,
		Name:   req.Name,
		Phone:  req.Phone,
		Remark: req.Remark,
	}
	if err := s.assigneeRepo.Create(ctx, assignee); err != nil {
		return nil, err
	}
	return assignee, nil
}

func (s *assigneeService) GetByID(ctx context.Context, id int64) (*domain.Assignee, error) {
	return s.assigneeRepo.GetByID(ctx, id)
}

func (s *assigneeService) List(ctx context.Context, query *dto.ListQuery) ([]domain.Assignee, int64, error) {
	return s.assigneeRepo.List(ctx, query.Keyword, query.Page, query.Size)
}

func (s *assigneeService) Update(ctx context.Context, id int64, req *dto.AssigneeRequest) (*domain.Assignee, error) {
	assignee := &domain.Assignee{
		ID:     id,
		EmpNo:  req.EmpNo,
		Name:   req.Name,
		Phone:  req.Phone,
		Remark: req.Remark,
	}
	if err := s.assigneeRepo.Update(ctx, assignee); err != nil {
		return nil, err
	}
	return assignee, nil
}

func (s *assigneeService) Delete(ctx context.Context, id int64) error {
	return s.assigneeRepo.Delete(ctx, id)
}

// Assets возвращает активы, числящиеся за сотрудником. Существование
// сотрудника не проверяется: неизвестный id даёт пустую страницу.
func (s *assigneeService) Assets(ctx context.Context, id int64, page, size int) ([]domain.AssigneeAsset, int64, error) {
	return s.assetRepo.ListByAssignee(ctx, id, page, size)
}
