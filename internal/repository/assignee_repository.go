package repository

import (
	"context"
	"errors"

	"github.com/asset-inventory-api/internal/domain"
	"gorm.io/gorm"
)

// AssigneeRepository определяет интерфейс для работы с сотрудниками
type AssigneeRepository interface {
	Create(ctx context.Context, assignee *domain.Assignee) error
	GetByID(ctx context.Context, id int64) (*domain.Assignee, error)
	List(ctx context.Context, keyword string, page, size int) ([]domain.Assignee, int64, error)
	Update(ctx context.Context, assignee *domain.Assignee) error
	Delete(ctx context.Context, id int64) error
}

type assigneeRepository struct {
	db *gorm.DB
}

// NewAssigneeRepository создаёт новый экземпляр репозитория
func NewAssigneeRepository(db *gorm.DB) AssigneeRepository {
	return &assigneeRepository{db: db}
}

func (r *assigneeRepository) Create(ctx context.Context, assignee *domain.Assignee) error {
	err := r.db.WithContext(ctx).Create(assignee).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateEmpNo
	}
	return err
}

func (r *assigneeRepository) GetByID(ctx context.Context, id int64) (*domain.Assignee, error) {
	var assignee domain.Assignee
	err := r.db.WithContext(ctx).First(&assignee, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssigneeNotFound
		}
		return nil, err
	}
	return &assignee, nil
}

func (r *assigneeRepository) List(ctx context.Context, keyword string, page, size int) ([]domain.Assignee, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&domain.Assignee{})
		if keyword != "" {
			like := "%" + keyword + "%"
			q = q.Where("emp_no LIKE ? OR name LIKE ?", like, like)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	assignees := make([]domain.Assignee, 0, size)
	err := base().
		Order("id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&assignees).Error
	if err != nil {
		return nil, 0, err
	}
	return assignees, total, nil
}

func (r *assigneeRepository) Update(ctx context.Context, assignee *domain.Assignee) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Assignee{}).
		Where("id = ?", assignee.ID).
		Select("emp_no", "name", "phone", "remark").
		Updates(assignee)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateEmpNo
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAssigneeNotFound
	}
	return nil
}

// Delete удаляет сотрудника, если за ним не числятся активы
func (r *assigneeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dependents int64
		if err := tx.Model(&domain.Asset{}).Where("assignee_id = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return domain.ErrAssigneeHasAssets
		}

		result := tx.Delete(&domain.Assignee{}, id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
				return domain.ErrAssigneeHasAssets
			}
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrAssigneeNotFound
		}
		return nil
	})
}
