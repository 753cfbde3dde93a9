package repository

import (
	"Vega_Tube/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(video *model.Video) error
	FindLatest(limit uint64) ([]model.Video, error)
	FindByID(videoID uint64) (*model.Video, error)
	// 某个频道主的全部视频，创建时间倒序；created_at相同的用id倒序兜底，
	// 保证分页窗口的顺序是确定的
	FindByOwner(ownerID uint64) ([]model.Video, error)
	// 批量查视频并预加载作者，给点赞feed做join用
	FindByIDs(videoIDs []uint64) ([]model.Video, error)

	GetVideoCache(videoID uint64) (*model.Video, error)
	SetVideoCache(video *model.Video) error
}

type videoRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewVideoRepository(db *gorm.DB, rdb *redis.Client) VideoRepository {
	return &videoRepository{
		db:  db,
		rdb: rdb,
	}
}

func (r *videoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// 按时间倒序查询最新的视频列表，Preload("Author")一并带出作者信息
func (r *videoRepository) FindLatest(limit uint64) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Preload("Author").Order("created_at desc, id desc").Limit(int(limit)).Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// 利用videoID找视频：1、先读缓存 2、未命中读库 3、回填缓存
func (r *videoRepository) FindByID(videoID uint64) (*model.Video, error) {
	video, err := r.GetVideoCache(videoID)
	if err == nil && video != nil {
		return video, nil
	}

	var dbVideo model.Video
	err = r.db.Preload("Author").First(&dbVideo, videoID).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	_ = r.SetVideoCache(&dbVideo)
	return &dbVideo, nil
}

func (r *videoRepository) FindByOwner(ownerID uint64) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.
		Where("author_id = ?", ownerID).
		Order("created_at desc, id desc").
		Find(&videos).Error
	return videos, err
}

func (r *videoRepository) FindByIDs(videoIDs []uint64) ([]model.Video, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.Preload("Author").Where("id IN (?)", videoIDs).Find(&videos).Error
	return videos, err
}

func (r *videoRepository) keyVideoInfo(videoID uint64) string {
	return fmt.Sprintf("video:info:%d", videoID)
}

// 从Redis取单个视频的元数据缓存，redis.Nil表示缓存不存在，不算错误
func (r *videoRepository) GetVideoCache(videoID uint64) (*model.Video, error) {
	key := r.keyVideoInfo(videoID)
	videoJSON, err := r.rdb.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	var video model.Video
	if err := json.Unmarshal([]byte(videoJSON), &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// 视频元数据写入Redis，过期时间加随机抖动防止缓存雪崩
func (r *videoRepository) SetVideoCache(video *model.Video) error {
	key := r.keyVideoInfo(video.ID)
	videoJSON, err := json.Marshal(video)
	if err != nil {
		return err
	}
	expiration := time.Minute*5 + time.Duration(rand.Intn(60))*time.Second
	return r.rdb.Set(context.Background(), key, videoJSON, expiration).Err()
}
