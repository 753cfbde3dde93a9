package model

import (
	"time"

	"gorm.io/gorm"
)

// gorm自带的Model里ID是uint类型，项目里统一用uint64，所以自建一个base结构体
type BaseModel struct {
	ID        uint64 `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
