package repository

import (
	"Vega_Tube/internal/model"

	"gorm.io/gorm"
)

// 互动流水的仓库，consumer进程专用，只有追加
type EngagementEventRepository interface {
	Create(event *model.EngagementEvent) error
}

type engagementEventRepository struct {
	db *gorm.DB
}

func NewEngagementEventRepository(db *gorm.DB) EngagementEventRepository {
	return &engagementEventRepository{db: db}
}

func (r *engagementEventRepository) Create(event *model.EngagementEvent) error {
	return r.db.Create(event).Error
}
