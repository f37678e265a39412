package domain

import (
	"github.com/shopspring/decimal"
)

// Статусы актива
const (
	AssetStatusIdle     = 0
	AssetStatusAssigned = 1
)

// Department представляет подразделение
type Department struct {
	ID       int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	DeptCode string  `json:"deptCode" gorm:"type:varchar(50);not null;uniqueIndex"`
	DeptName string  `json:"deptName" gorm:"type:varchar(200);not null"`
	Remark   *string `json:"remark" gorm:"type:varchar(500)"`

	Locations []LocationSpace `json:"-" gorm:"foreignKey:DeptID"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "department"
}

// LocationSpace представляет помещение, закреплённое за подразделением
type LocationSpace struct {
	ID     int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	DeptID int64           `json:"deptId" gorm:"not null;index"`
	RoomNo string          `json:"roomNo" gorm:"type:varchar(50);not null;uniqueIndex"`
	Area   decimal.Decimal `json:"area" gorm:"type:numeric(12,2);not null"`
	Remark *string         `json:"remark" gorm:"type:varchar(500)"`

	Department *Department `json:"-" gorm:"foreignKey:DeptID"`
	Assets     []Asset     `json:"-" gorm:"foreignKey:LocationID"`
}

// TableName задаёт имя таблицы для GORM
func (LocationSpace) TableName() string {
	return "location_space"
}

// Assignee представляет сотрудника, за которым числятся активы
type Assignee struct {
	ID     int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	EmpNo  string  `json:"empNo" gorm:"type:varchar(50);not null;uniqueIndex"`
	Name   string  `json:"name" gorm:"type:varchar(200);not null"`
	Phone  *string `json:"phone" gorm:"type:varchar(50)"`
	Remark *string `json:"remark" gorm:"type:varchar(500)"`

	Assets []Asset `json:"-" gorm:"foreignKey:AssigneeID"`
}

// TableName задаёт имя таблицы для GORM
func (Assignee) TableName() string {
	return "assignee"
}

// Asset представляет актив. Status выводится из AssigneeID:
// 1 тогда и только тогда, когда AssigneeID не NULL.
type Asset struct {
	ID         int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	AssetNo    string          `json:"assetNo" gorm:"type:varchar(50);not null;uniqueIndex"`
	AssetName  string          `json:"assetName" gorm:"type:varchar(200);not null"`
	Value      decimal.Decimal `json:"value" gorm:"type:numeric(12,2);not null"`
	LocationID int64           `json:"locationId" gorm:"not null;index"`
	AssigneeID *int64          `json:"assigneeId" gorm:"index"`
	Status     int             `json:"status" gorm:"not null;default:0"`
	Remark     *string         `json:"remark" gorm:"type:varchar(500)"`

	Location *LocationSpace `json:"-" gorm:"foreignKey:LocationID"`
	Assignee *Assignee      `json:"-" gorm:"foreignKey:AssigneeID"`
}

// TableName задаёт имя таблицы для GORM
func (Asset) TableName() string {
	return "asset"
}

// DerivedStatus вычисляет статус актива по наличию ответственного
func DerivedStatus(assigneeID *int64) int {
	if assigneeID == nil {
		return AssetStatusIdle
	}
	return AssetStatusAssigned
}
