package repository

import (
	"context"
	"errors"

	"github.com/asset-inventory-api/internal/domain"
	"gorm.io/gorm"
)

// LocationFilter - условия выборки помещений
type LocationFilter struct {
	Keyword string
	DeptID  *int64
	Page    int
	Size    int
}

// LocationRepository определяет интерфейс для работы с помещениями
type LocationRepository interface {
	Create(ctx context.Context, loc *domain.LocationSpace) error
	GetByID(ctx context.Context, id int64) (*domain.LocationSpace, error)
	GetDetail(ctx context.Context, id int64) (*domain.LocationDetail, error)
	List(ctx context.Context, filter LocationFilter) ([]domain.LocationDetail, int64, error)
	ListByDept(ctx context.Context, deptID int64) ([]domain.LocationBrief, error)
	Update(ctx context.Context, loc *domain.LocationSpace) error
	Delete(ctx context.Context, id int64) error
}

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository создаёт новый экземпляр репозитория
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, loc *domain.LocationSpace) error {
	err := r.db.WithContext(ctx).Create(loc).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicateRoomNo
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrDepartmentNotFound
	}
	return err
}

func (r *locationRepository) GetByID(ctx context.Context, id int64) (*domain.LocationSpace, error) {
	var loc domain.LocationSpace
	err := r.db.WithContext(ctx).First(&loc, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, err
	}
	return &loc, nil
}

func (r *locationRepository) GetDetail(ctx context.Context, id int64) (*domain.LocationDetail, error) {
	var detail domain.LocationDetail
	err := r.db.WithContext(ctx).
		Table("location_space AS ls").
		Select("ls.id, ls.dept_id, d.dept_name, ls.room_no, ls.area, ls.remark").
		Joins("JOIN department d ON ls.dept_id = d.id").
		Where("ls.id = ?", id).
		Take(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, err
	}
	return &detail, nil
}

func (r *locationRepository) List(ctx context.Context, filter LocationFilter) ([]domain.LocationDetail, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).
			Table("location_space AS ls").
			Joins("JOIN department d ON ls.dept_id = d.id")
		if filter.DeptID != nil {
			q = q.Where("ls.dept_id = ?", *filter.DeptID)
		}
		if filter.Keyword != "" {
			q = q.Where("ls.room_no LIKE ?", "%"+filter.Keyword+"%")
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	locations := make([]domain.LocationDetail, 0, filter.Size)
	err := base().
		Select("ls.id, ls.dept_id, d.dept_name, ls.room_no, ls.area, ls.remark").
		Order("ls.id DESC").
		Limit(filter.Size).
		Offset((filter.Page - 1) * filter.Size).
		Scan(&locations).Error
	if err != nil {
		return nil, 0, err
	}
	return locations, total, nil
}

func (r *locationRepository) ListByDept(ctx context.Context, deptID int64) ([]domain.LocationBrief, error) {
	briefs := make([]domain.LocationBrief, 0)
	err := r.db.WithContext(ctx).
		Model(&domain.LocationSpace{}).
		Select("id, room_no").
		Where("dept_id = ?", deptID).
		Order("id DESC").
		Scan(&briefs).Error
	if err != nil {
		return nil, err
	}
	return briefs, nil
}

func (r *locationRepository) Update(ctx context.Context, loc *domain.LocationSpace) error {
	result := r.db.WithContext(ctx).
		Model(&domain.LocationSpace{}).
		Where("id = ?", loc.ID).
		Select("dept_id", "room_no", "area", "remark").
		Updates(loc)
	if result.Error != nil {
		switch {
		case errors.Is(result.Error, gorm.ErrDuplicatedKey):
			return domain.ErrDuplicateRoomNo
		case errors.Is(result.Error, gorm.ErrForeignKeyViolated):
			return domain.ErrDepartmentNotFound
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrLocationNotFound
	}
	return nil
}

// Delete удаляет помещение, если в нём не числятся активы
func (r *locationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dependents int64
		if err := tx.Model(&domain.Asset{}).Where("location_id = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return domain.ErrLocationHasAssets
		}

		result := tx.Delete(&domain.LocationSpace{}, id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
				return domain.ErrLocationHasAssets
			}
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrLocationNotFound
		}
		return nil
	})
}
