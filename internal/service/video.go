package service

import (
	"Vega_Tube/internal/model"
	"Vega_Tube/internal/repository"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"
)

type VideoService interface {
	CreateVideo(authorID uint64, title, description string) (*model.Video, error)
	GetFeed(limit uint64) ([]model.Video, error)
	GetVideoByID(videoID uint64) (*model.Video, error)
}

type videoService struct {
	sf singleflight.Group

	videoRepo repository.VideoRepository
}

func NewVideoService(videoRepo repository.VideoRepository) VideoService {
	return &videoService{
		videoRepo: videoRepo,
	}
}

func (s *videoService) CreateVideo(authorID uint64, title, description string) (*model.Video, error) {
	newVideo := &model.Video{
		AuthorID:    authorID,
		Title:       title,
		Description: description,
		VideoURL:    "https://placeholder.com/video.mp4",
		CoverURL:    "https://placeholder.com/cover.jpg",
	}
	if err := s.videoRepo.Create(newVideo); err != nil {
		return nil, err
	}
	return newVideo, nil
}

// 获取视频Feed流
func (s *videoService) GetFeed(limit uint64) ([]model.Video, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.videoRepo.FindLatest(limit)
}

// 根据videoID查找视频：1、读缓存 2、未命中时用SingleFlight合并同key的数据库查询，
// 防止热门视频缓存失效瞬间把数据库打穿
func (s *videoService) GetVideoByID(videoID uint64) (*model.Video, error) {
	if videoID == 0 {
		return nil, ErrInvalidID
	}

	video, err := s.videoRepo.GetVideoCache(videoID)
	if err == nil && video != nil {
		return video, nil
	}

	key := fmt.Sprintf("get_video_%d", videoID)
	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		dbVideo, dbErr := s.videoRepo.FindByID(videoID)
		if dbErr != nil {
			return nil, dbErr
		}
		_ = s.videoRepo.SetVideoCache(dbVideo)
		return dbVideo, nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// singleflight的返回值是interface{}，需要断言
	return result.(*model.Video), nil
}
