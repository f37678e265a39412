package service

import (
	"context"

	"github.com/asset-inventory-api/internal/domain"
	"github.com/asset-inventory-api/internal/dto"
	"github.com/asset-inventory-api/internal/repository"
)

// AssetService определяет интерфейс бизнес-логики для активов
type AssetService interface {
	Create(ctx context.Context, req *dto.AssetRequest) (*domain.Asset, error)
	GetDetail(ctx context.Context, id int64) (*domain.AssetDetail, error)
	List(ctx context.Context, query *dto.AssetListQuery) ([]domain.AssetDetail, int64, error)
	Update(ctx context.Context, id int64, req *dto.AssetRequest) (*domain.Asset, error)
	Delete(ctx context.Context, id int64) error
	Assign(ctx context.Context, id, assigneeID int64) error
	Return(ctx context.Context, id int64) error
}

type assetService struct {
	assetRepo    repository.AssetRepository
	locRepo      repository.LocationRepository
	assigneeRepo repository.AssigneeRepository
}

// NewAssetService создаёт новый экземпляр сервиса
func NewAssetService(
	assetRepo repository.AssetRepository,
	locRepo repository.LocationRepository,
	assigneeRepo repository.AssigneeRepository,
) AssetService {
	return &assetService{
		assetRepo:    assetRepo,
		locRepo:      locRepo,
		assigneeRepo: assigneeRepo,
	}
}

func (s *assetService) Create(ctx context.Context, req *dto.AssetRequest) (*domain.Asset, error) {
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	asset := &domain.Asset{
		AssetNo:    req.AssetNo,
		AssetName:  req.AssetName,
		Value:      *req.Value,
		LocationID: *req.LocationID,
		AssigneeID: req.AssigneeID,
		Status:     domain.DerivedStatus(req.AssigneeID),
		Remark:     req.Remark,
	}
	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *assetService) GetDetail(ctx context.Context, id int64) (*domain.AssetDetail, error) {
	return s.assetRepo.GetDetail(ctx, id)
}

func (s *assetService) List(ctx context.Context, query *dto.AssetListQuery) ([]domain.AssetDetail, int64, error) {
	return s.assetRepo.List(ctx, repository.AssetFilter{
		Keyword:    query.Keyword,
		DeptID:     query.DeptID,
		LocationID: query.LocationID,
		AssigneeID: query.AssigneeID,
		Status:     query.Status,
		Page:       query.Page,
		Size:       query.Size,
	})
}

// Update полностью заменяет редактируемые поля. AssigneeID меняется
// напрямую в обход предусловий assign/return, статус пересчитывается по
// его наличию: это сохранённый административный путь к тому же состоянию.
func (s *assetService) Update(ctx context.Context, id int64, req *dto.AssetRequest) (*domain.Asset, error) {
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	asset := &domain.Asset{
		ID:         id,
		AssetNo:    req.AssetNo,
		AssetName:  req.AssetName,
		Value:      *req.Value,
		LocationID: *req.LocationID,
		AssigneeID: req.AssigneeID,
		Status:     domain.DerivedStatus(req.AssigneeID),
		Remark:     req.Remark,
	}
	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *assetService) Delete(ctx context.Context, id int64) error {
	return s.assetRepo.Delete(ctx, id)
}

func (s *assetService) Assign(ctx context.Context, id, assigneeID int64) error {
	asset, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if asset.Status == domain.AssetStatusAssigned {
		return domain.ErrAssetAlreadyAssigned
	}

	// Проверяем существование сотрудника
	if _, err := s.assigneeRepo.GetByID(ctx, assigneeID); err != nil {
		return err
	}

	return s.assetRepo.Assign(ctx, id, assigneeID)
}

func (s *assetService) Return(ctx context.Context, id int64) error {
	asset, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if asset.Status == domain.AssetStatusIdle {
		return domain.ErrAssetAlreadyIdle
	}

	return s.assetRepo.Return(ctx, id)
}

// checkReferences проверяет существование помещения и, при наличии,
// сотрудника до записи актива
func (s *assetService) checkReferences(ctx context.Context, req *dto.AssetRequest) error {
	if _, err := s.locRepo.GetByID(ctx, *req.LocationID); err != nil {
		return err
	}
	if req.AssigneeID != nil {
		if _, err := s.assigneeRepo.GetByID(ctx, *req.AssigneeID); err != nil {
			return err
		}
	}
	return nil
}
