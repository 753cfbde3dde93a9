package repository

import (
	"Vega_Tube/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	FindByID(commentID uint64) (*model.Comment, error)
	// 按视频批量统计评论数，一次GROUP BY查询
	CountByVideos(videoIDs []uint64) (map[uint64]int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) FindByID(commentID uint64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Preload("User").First(&comment, commentID).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

type videoCount struct {
	VideoID uint64
	Count   int64
}

func (r *commentRepository) CountByVideos(videoIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(videoIDs))
	if len(videoIDs) == 0 {
		return counts, nil
	}
	var rows []videoCount
	err := r.db.Model(&model.Comment{}).
		Select("video_id, COUNT(*) AS count").
		Where("video_id IN (?)", videoIDs).
		Group("video_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.VideoID] = row.Count
	}
	return counts, nil
}
