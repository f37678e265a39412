package domain

import (
	"github.com/shopspring/decimal"
)

// Модели чтения для списков и карточек: строки соединённых запросов,
// денормализующие отображаемые поля родительских сущностей.

// LocationDetail - помещение с наименованием подразделения
type LocationDetail struct {
	ID       int64
	DeptID   int64
	DeptName string
	RoomNo   string
	Area     decimal.Decimal
	Remark   *string
}

// LocationBrief - помещение в списке подразделения
type LocationBrief struct {
	ID     int64
	RoomNo string
}

// AssetDetail - актив с данными помещения, подразделения и ответственного.
// AssigneeName может отсутствовать (LEFT JOIN).
type AssetDetail struct {
	ID           int64
	AssetNo      string
	AssetName    string
	Value        decimal.Decimal
	LocationID   int64
	RoomNo       string
	DeptID       int64
	DeptName     string
	AssigneeID   *int64
	AssigneeName *string
	Status       int
	Remark       *string
}

// AssigneeAsset - актив в списке сотрудника
type AssigneeAsset struct {
	ID        int64
	AssetNo   string
	AssetName string
	RoomNo    string
	Status    int
}
