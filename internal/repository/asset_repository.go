package repository

import (
	"context"
	"errors"

	"github.com/asset-inventory-api/internal/domain"
	"gorm.io/gorm"
)

// AssetFilter - условия выборки активов
type AssetFilter struct {
	Keyword    string
	DeptID     *int64
	LocationID *int64
	AssigneeID *int64
	Status     *int
	Page       int
	Size       int
}

// AssetRepository определяет интерфейс для работы с активами
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	GetByID(ctx context.Context, id int64) (*domain.Asset, error)
	GetDetail(ctx context.Context, id int64) (*domain.AssetDetail, error)
	List(ctx context.Context, filter AssetFilter) ([]domain.AssetDetail, int64, error)
	ListByAssignee(ctx context.Context, assigneeID int64, page, size int) ([]domain.AssigneeAsset, int64, error)
	Update(ctx context.Context, asset *domain.Asset) error
	Delete(ctx context.Context, id int64) error
	Assign(ctx context.Context, id, assigneeID int64) error
	Return(ctx context.Context, id int64) error
}

type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository создаёт новый экземпляр репозитория
func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	err := r.db.WithContext(ctx).Create(asset).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicateAssetNo
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrAssetRefNotFound
	}
	return err
}

func (r *assetRepository) GetByID(ctx context.Context, id int64) (*domain.Asset, error) {
	var asset domain.Asset
	err := r.db.WithContext(ctx).First(&asset, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) GetDetail(ctx context.Context, id int64) (*domain.AssetDetail, error) {
	var detail domain.AssetDetail
	err := r.db.WithContext(ctx).
		Table("asset AS ast").
		Select(assetDetailColumns).
		Joins("JOIN location_space ls ON ast.location_id = ls.id").
		Joins("JOIN department d ON ls.dept_id = d.id").
		Joins("LEFT JOIN assignee ag ON ast.assignee_id = ag.id").
		Where("ast.id = ?", id).
		Take(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, err
	}
	return &detail, nil
}

const assetDetailColumns = "ast.id, ast.asset_no, ast.asset_name, ast.value, ast.location_id," +
	" ast.assignee_id, ast.status, ast.remark, ls.room_no, ls.dept_id, d.dept_name," +
	" ag.name AS assignee_name"

func (r *assetRepository) List(ctx context.Context, filter AssetFilter) ([]domain.AssetDetail, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).
			Table("asset AS ast").
			Joins("JOIN location_space ls ON ast.location_id = ls.id").
			Joins("JOIN department d ON ls.dept_id = d.id").
			Joins("LEFT JOIN assignee ag ON ast.assignee_id = ag.id")
		if filter.DeptID != nil {
			q = q.Where("ls.dept_id = ?", *filter.DeptID)
		}
		if filter.LocationID != nil {
			q = q.Where("ast.location_id = ?", *filter.LocationID)
		}
		if filter.AssigneeID != nil {
			q = q.Where("ast.assignee_id = ?", *filter.AssigneeID)
		}
		if filter.Status != nil {
			q = q.Where("ast.status = ?", *filter.Status)
		}
		if filter.Keyword != "" {
			like := "%" + filter.Keyword + "%"
			q = q.Where("ast.asset_no LIKE ? OR ast.asset_name LIKE ?", like, like)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	assets := make([]domain.AssetDetail, 0, filter.Size)
	err := base().
		Select(assetDetailColumns).
		Order("ast.id DESC").
		Limit(filter.Size).
		Offset((filter.Page - 1) * filter.Size).
		Scan(&assets).Error
	if err != nil {
		return nil, 0, err
	}
	return assets, total, nil
}

func (r *assetRepository) ListByAssignee(ctx context.Context, assigneeID int64, page, size int) ([]domain.AssigneeAsset, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.Asset{}).
		Where("assignee_id = ?", assigneeID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	assets := make([]domain.AssigneeAsset, 0, size)
	err = r.db.WithContext(ctx).
		Table("asset AS ast").
		Select("ast.id, ast.asset_no, ast.asset_name, ls.room_no, ast.status").
		Joins("JOIN location_space ls ON ast.location_id = ls.id").
		Where("ast.assignee_id = ?", assigneeID).
		Order("ast.id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Scan(&assets).Error
	if err != nil {
		return nil, 0, err
	}
	return assets, total, nil
}

// Update заменяет все редактируемые поля, включая сброс assignee_id в NULL
func (r *assetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Asset{}).
		Where("id = ?", asset.ID).
		Select("asset_no", "asset_name", "value", "location_id", "assignee_id", "status", "remark").
		Updates(asset)
	if result.Error != nil {
		switch {
		case errors.Is(result.Error, gorm.ErrDuplicatedKey):
			return domain.ErrDuplicateAssetNo
		case errors.Is(result.Error, gorm.ErrForeignKeyViolated):
			return domain.ErrAssetRefNotFound
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

func (r *assetRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Asset{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

// Assign выдаёт актив одним условным UPDATE: переход выполняется только
// из статуса «свободен», поэтому две конкурентные выдачи не пройдут обе.
func (r *assetRepository) Assign(ctx context.Context, id, assigneeID int64) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Asset{}).
		Where("id = ? AND status = ?", id, domain.AssetStatusIdle).
		Updates(map[string]any{
			"assignee_id": assigneeID,
			"status":      domain.AssetStatusAssigned,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return domain.ErrAssigneeNotFound
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.explainMissedTransition(ctx, id, domain.ErrAssetAlreadyAssigned)
	}
	return nil
}

// Return возвращает актив одним условным UPDATE из статуса «выдан»
func (r *assetRepository) Return(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Asset{}).
		Where("id = ? AND status = ?", id, domain.AssetStatusAssigned).
		Updates(map[string]any{
			"assignee_id": nil,
			"status":      domain.AssetStatusIdle,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.explainMissedTransition(ctx, id, domain.ErrAssetAlreadyIdle)
	}
	return nil
}

// explainMissedTransition различает «актив не найден» и «актив уже в
// целевом статусе» после условного UPDATE, не затронувшего ни одной строки
func (r *assetRepository) explainMissedTransition(ctx context.Context, id int64, conflict error) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Asset{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrAssetNotFound
	}
	return conflict
}
