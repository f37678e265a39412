package repository

import (
	"context"
	"errors"

	"github.com/asset-inventory-api/internal/domain"
	"gorm.io/gorm"
)

// DepartmentRepository определяет интерфейс для работы с подразделениями
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	List(ctx context.Context, keyword string, page, size int) ([]domain.Department, int64, error)
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id int64) error
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	err := r.db.WithContext(ctx).Create(dept).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateDeptCode
	}
	return err
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).First(&dept, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) List(ctx context.Context, keyword string, page, size int) ([]domain.Department, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&domain.Department{})
		if keyword != "" {
			like := "%" + keyword + "%"
			q = q.Where("dept_code LIKE ? OR dept_name LIKE ?", like, like)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	departments := make([]domain.Department, 0, size)
	err := base().
		Order("id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&departments).Error
	if err != nil {
		return nil, 0, err
	}
	return departments, total, nil
}

func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Department{}).
		Where("id = ?", dept.ID).
		Select("dept_code", "dept_name", "remark").
		Updates(dept)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateDeptCode
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

// Delete удаляет подразделение, если за ним не числятся помещения.
// Проверка и удаление выполняются в одной транзакции; ограничение
// внешнего ключа ON DELETE RESTRICT страхует оставшуюся гонку.
func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dependents int64
		if err := tx.Model(&domain.LocationSpace{}).Where("dept_id = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return domain.ErrDepartmentHasLocations
		}

		result := tx.Delete(&domain.Department{}, id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
				return domain.ErrDepartmentHasLocations
			}
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrDepartmentNotFound
		}
		return nil
	})
}
