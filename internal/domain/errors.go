package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrLocationNotFound   = errors.New("location space not found")
	ErrAssigneeNotFound   = errors.New("assignee not found")
	ErrAssetNotFound      = errors.New("asset not found")
	// Нарушение внешнего ключа актива: какая именно ссылка битая
	// (помещение или ответственный) из ошибки БД не извлекается
	ErrAssetRefNotFound = errors.New("location space or assignee not found")

	ErrDuplicateDeptCode = errors.New("department with this deptCode already exists")
	ErrDuplicateRoomNo   = errors.New("location space with this roomNo already exists")
	ErrDuplicateEmpNo    = errors.New("assignee with this empNo already exists")
	ErrDuplicateAssetNo  = errors.New("asset with this assetNo already exists")

	ErrDepartmentHasLocations = errors.New("department has location spaces and cannot be deleted")
	ErrLocationHasAssets      = errors.New("location space has assets and cannot be deleted")
	ErrAssigneeHasAssets      = errors.New("assignee has assets and cannot be deleted")

	ErrAssetAlreadyAssigned = errors.New("asset is already assigned")
	ErrAssetAlreadyIdle     = errors.New("asset is already idle")
)
