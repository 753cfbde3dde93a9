package repository

import (
	"Vega_Tube/internal/model"
	"Vega_Tube/pkg/logger"

	"gorm.io/gorm"
)

// 点赞账本接口。(user_id, target_type, target_id)的唯一性靠MySQL的联合唯一索引兜底，
// 因为service层的“先查再写”不是原子的，应用逻辑挡不住并发
type LikeRepository interface {
	Find(userID uint64, targetType string, targetID uint64) (*model.Like, error)
	Create(like *model.Like) error
	Delete(likeID uint64) error

	CountByTarget(targetType string, targetID uint64) (int64, error)
	// 批量计数，一次GROUP BY查询，避免分页时一个视频查一次的N+1问题
	CountByTargets(targetType string, targetIDs []uint64) (map[uint64]int64, error)
	// 某个用户对某类目标的全部点赞边，按点赞时间倒序
	FindByUser(userID uint64, targetType string) ([]model.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Find(userID uint64, targetType string, targetID uint64) (*model.Like, error) {
	var like model.Like
	err := r.db.Where("user_id = ? AND target_type = ? AND target_id = ?",
		userID, targetType, targetID).First(&like).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) Create(like *model.Like) error {
	result := r.db.Create(like)
	if result.Error != nil {
		if isDuplicateKeyErr(result.Error) {
			// 并发toggle撞唯一索引，交给service层当良性冲突处理
			return ErrDuplicateKey
		}
		logger.Log.WithError(result.Error).Error("MySQL插入点赞记录失败")
		return result.Error
	}
	return nil
}

func (r *likeRepository) Delete(likeID uint64) error {
	// 用原生SQL做物理删除：BaseModel带软删除字段，软删除的行会一直占着唯一索引，
	// 下一次点赞就永远插不进去了
	result := r.db.Exec("DELETE FROM likes WHERE id = ?", likeID)
	if result.Error != nil {
		logger.Log.WithError(result.Error).Error("MySQL删除点赞记录失败")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *likeRepository) CountByTarget(targetType string, targetID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	return count, err
}

type targetCount struct {
	TargetID uint64
	Count    int64
}

func (r *likeRepository) CountByTargets(targetType string, targetIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(targetIDs))
	if len(targetIDs) == 0 {
		return counts, nil
	}
	var rows []targetCount
	err := r.db.Model(&model.Like{}).
		Select("target_id, COUNT(*) AS count").
		Where("target_type = ? AND target_id IN (?)", targetType, targetIDs).
		Group("target_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.TargetID] = row.Count
	}
	return counts, nil
}

func (r *likeRepository) FindByUser(userID uint64, targetType string) ([]model.Like, error) {
	var likes []model.Like
	err := r.db.
		Where("user_id = ? AND target_type = ?", userID, targetType).
		// 同一秒点的赞用id兜底排序，保证列表顺序稳定
		Order("created_at desc, id desc").
		Find(&likes).Error
	return likes, err
}
