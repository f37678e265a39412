package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Коды ответа API. 0 — успех, остальные — классы ошибок.
const (
	CodeOK         = 0
	CodeValidation = 4001
	CodeForbidden  = 4002
	CodeNotFound   = 4004
	CodeConflict   = 4090
	CodeInternal   = 5000
)

// Response - единый конверт ответа API
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// PageResponse - страница списка
type PageResponse struct {
	List  any   `json:"list"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}

// DepartmentRequest - запрос на создание/обновление подразделения
type DepartmentRequest struct {
	DeptCode string  `json:"deptCode" validate:"required,max=50"`
	DeptName string  `json:"deptName" validate:"required,max=200"`
	Remark   *string `json:"remark" validate:"omitempty,max=500"`
}

// Normalize обрезает пробелы и приводит пустые необязательные поля к nil
func (r *DepartmentRequest) Normalize() {
	r.DeptCode = strings.TrimSpace(r.DeptCode)
	r.DeptName = strings.TrimSpace(r.DeptName)
	r.Remark = normalizeOptional(r.Remark)
}

// LocationRequest - запрос на создание/обновление помещения
type LocationRequest struct {
	DeptID *int64           `json:"deptId" validate:"required,min=1"`
	RoomNo string           `json:"roomNo" validate:"required,max=50"`
	Area   *decimal.Decimal `json:"area" validate:"required"`
	Remark *string          `json:"remark" validate:"omitempty,max=500"`
}

// Normalize обрезает пробелы и приводит пустые необязательные поля к nil
func (r *LocationRequest) Normalize() {
	r.RoomNo = strings.TrimSpace(r.RoomNo)
	r.Remark = normalizeOptional(r.Remark)
}

// AssigneeRequest - запрос на создание/обновление сотрудника
type AssigneeRequest struct {
	EmpNo  string  `json:"empNo" validate:"required,max=50"`
	Name   string  `json:"name" validate:"required,max=200"`
	Phone  *string `json:"phone" validate:"omitempty,max=50"`
	Remark *string `json:"remark" validate:"omitempty,max=500"`
}

// Normalize обрезает пробелы и приводит пустые необязательные поля к nil
func (r *AssigneeRequest) Normalize() {
	r.EmpNo = strings.TrimSpace(r.EmpNo)
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = normalizeOptional(r.Phone)
	r.Remark = normalizeOptional(r.Remark)
}

// AssetRequest - запрос на создание/обновление актива.
// Status не принимается: он вычисляется по AssigneeID.
type AssetRequest struct {
	AssetNo    string           `json:"assetNo" validate:"required,max=50"`
	AssetName  string           `json:"assetName" validate:"required,max=200"`
	Value      *decimal.Decimal `json:"value" validate:"required"`
	LocationID *int64           `json:"locationId" validate:"required,min=1"`
	AssigneeID *int64           `json:"assigneeId" validate:"omitempty,min=1"`
	Remark     *string          `json:"remark" validate:"omitempty,max=500"`
}

// Normalize обрезает пробелы и приводит пустые необязательные поля к nil
func (r *AssetRequest) Normalize() {
	r.AssetNo = strings.TrimSpace(r.AssetNo)
	r.AssetName = strings.TrimSpace(r.AssetName)
	r.Remark = normalizeOptional(r.Remark)
}

// AssignRequest - запрос на выдачу актива сотруднику
type AssignRequest struct {
	AssigneeID *int64 `json:"assigneeId" validate:"required,min=1"`
}

// ListQuery - общие параметры списков
type ListQuery struct {
	Keyword string
	Page    int `validate:"min=1"`
	Size    int `validate:"min=1"`
}

// LocationListQuery - параметры списка помещений
type LocationListQuery struct {
	Keyword string
	DeptID  *int64
	Page    int `validate:"min=1"`
	Size    int `validate:"min=1"`
}

// AssetListQuery - параметры списка активов
type AssetListQuery struct {
	Keyword    string
	DeptID     *int64
	LocationID *int64
	AssigneeID *int64
	Status     *int `validate:"omitempty,oneof=0 1"`
	Page       int  `validate:"min=1"`
	Size       int  `validate:"min=1"`
}

// DepartmentResponse - ответ с данными подразделения
type DepartmentResponse struct {
	ID       int64   `json:"id"`
	DeptCode string  `json:"deptCode"`
	DeptName string  `json:"deptName"`
	Remark   *string `json:"remark"`
}

// LocationResponse - ответ на создание/обновление помещения
type LocationResponse struct {
	ID     int64           `json:"id"`
	DeptID int64           `json:"deptId"`
	RoomNo string          `json:"roomNo"`
	Area   decimal.Decimal `json:"area"`
	Remark *string         `json:"remark"`
}

// LocationDetailResponse - строка помещения с наименованием подразделения
type LocationDetailResponse struct {
	ID       int64           `json:"id"`
	DeptID   int64           `json:"deptId"`
	DeptName string          `json:"deptName"`
	RoomNo   string          `json:"roomNo"`
	Area     decimal.Decimal `json:"area"`
	Remark   *string         `json:"remark"`
}

// DeptLocationResponse - помещение в списке подразделения
type DeptLocationResponse struct {
	ID     int64  `json:"id"`
	RoomNo string `json:"roomNo"`
}

// AssigneeResponse - ответ с данными сотрудника
type AssigneeResponse struct {
	ID     int64   `json:"id"`
	EmpNo  string  `json:"empNo"`
	Name   string  `json:"name"`
	Phone  *string `json:"phone"`
	Remark *string `json:"remark"`
}

// AssigneeAssetResponse - актив в списке сотрудника
type AssigneeAssetResponse struct {
	ID        int64  `json:"id"`
	AssetNo   string `json:"assetNo"`
	AssetName string `json:"assetName"`
	RoomNo    string `json:"roomNo"`
	Status    int    `json:"status"`
}

// AssetResponse - ответ на создание/обновление актива
type AssetResponse struct {
	ID         int64           `json:"id"`
	AssetNo    string          `json:"assetNo"`
	AssetName  string          `json:"assetName"`
	Value      decimal.Decimal `json:"value"`
	LocationID int64           `json:"locationId"`
	AssigneeID *int64          `json:"assigneeId"`
	Status     int             `json:"status"`
	Remark     *string         `json:"remark"`
}

// AssetDetailResponse - строка актива с данными помещения, подразделения
// и ответственного
type AssetDetailResponse struct {
	ID           int64           `json:"id"`
	AssetNo      string          `json:"assetNo"`
	AssetName    string          `json:"assetName"`
	Value        decimal.Decimal `json:"value"`
	LocationID   int64           `json:"locationId"`
	RoomNo       string          `json:"roomNo"`
	DeptID       int64           `json:"deptId"`
	DeptName     string          `json:"deptName"`
	AssigneeID   *int64          `json:"assigneeId"`
	AssigneeName *string         `json:"assigneeName"`
	Status       int             `json:"status"`
	Remark       *string         `json:"remark"`
}

// HealthResponse - ответ проверки живости сервиса
type HealthResponse struct {
	Status string `json:"status"`
}

// normalizeOptional превращает пустую после обрезки строку в nil
func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
