package service

import (
	"Vega_Tube/internal/dto"
	"Vega_Tube/internal/model"
	"Vega_Tube/internal/repository"
	"Vega_Tube/pkg/logger"
	"errors"
	"time"
)

// LikeService 是点赞的toggle入口加上点赞feed的读侧
type LikeService interface {
	// Toggle翻转(userID, targetType, targetID)这条点赞边的存在性：
	// 有边删边，没边建边。调用方指定不了最终状态，连点两次就翻转两次
	Toggle(userID uint64, targetType string, targetID uint64) (*dto.ToggleResult, error)
	// GetLikedVideos 当前用户点赞过的视频，join视频和作者投影，按点赞时间倒序
	GetLikedVideos(userID uint64) ([]dto.LikedVideo, error)
	// GetLikeCount 某个目标当前的点赞数，从账本现数
	GetLikeCount(targetType string, targetID uint64) (int64, error)
}

type likeService struct {
	likeRepo  repository.LikeRepository
	videoRepo repository.VideoRepository
	events    EngagementPublisher
}

func NewLikeService(likeRepo repository.LikeRepository, videoRepo repository.VideoRepository, events EngagementPublisher) LikeService {
	return &likeService{
		likeRepo:  likeRepo,
		videoRepo: videoRepo,
		events:    events,
	}
}

// 点赞toggle：1、校验目标类型和ID格式 2、查边 3、有边走删除，没边走插入。
// 这里不检查目标内容是否真的存在——目标的生死归内容服务管，孤儿边在读侧过滤。
// “先查再写”不是原子的，两个并发请求可能都看到“没边”，第二个Create会撞上
// 唯一索引；也可能都看到“有边”，第二个Delete会删不到行。两种冲突都当作
// 对方的toggle已经落地，吸收掉，不对用户报错（多设备连点属于正常操作）
func (s *likeService) Toggle(userID uint64, targetType string, targetID uint64) (*dto.ToggleResult, error) {
	if !model.ValidTargetType(targetType) {
		return nil, ErrInvalidTargetType
	}
	if targetID == 0 {
		return nil, ErrInvalidID
	}

	existing, err := s.likeRepo.Find(userID, targetType, targetID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if err := s.likeRepo.Delete(existing.ID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				// 另一个并发toggle抢先删掉了，按已取消返回
				return &dto.ToggleResult{Liked: false}, nil
			}
			return nil, err
		}
		s.publish(userID, model.ActionUnlike, targetType, targetID)
		return &dto.ToggleResult{Liked: false}, nil
	}

	like := &model.Like{UserID: userID, TargetType: targetType, TargetID: targetID}
	if err := s.likeRepo.Create(like); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			// 另一个并发toggle抢先插入了，重读现状按已点赞返回
			current, findErr := s.likeRepo.Find(userID, targetType, targetID)
			if findErr != nil {
				if errors.Is(findErr, repository.ErrNotFound) {
					// 夹在中间又被删掉了，那就是未点赞
					return &dto.ToggleResult{Liked: false}, nil
				}
				return nil, findErr
			}
			return &dto.ToggleResult{Liked: true, Like: current}, nil
		}
		return nil, err
	}

	s.publish(userID, model.ActionLike, targetType, targetID)
	return &dto.ToggleResult{Liked: true, Like: like}, nil
}

// 获取点赞feed：1、取全部指向视频的点赞边 2、批量join视频和作者 3、丢掉目标
// 已经不存在的孤儿边 4、保持边的时间倒序
func (s *likeService) GetLikedVideos(userID uint64) ([]dto.LikedVideo, error) {
	likes, err := s.likeRepo.FindByUser(userID, model.TargetVideo)
	if err != nil {
		return nil, err
	}

	videoIDs := make([]uint64, 0, len(likes))
	for _, like := range likes {
		videoIDs = append(videoIDs, like.TargetID)
	}
	videos, err := s.videoRepo.FindByIDs(videoIDs)
	if err != nil {
		return nil, err
	}
	videosByID := make(map[uint64]*model.Video, len(videos))
	for i := range videos {
		videosByID[videos[i].ID] = &videos[i]
	}

	feed := make([]dto.LikedVideo, 0, len(likes))
	for _, like := range likes {
		video, ok := videosByID[like.TargetID]
		if !ok {
			// 视频已被删除，边先留着，读侧不展示
			continue
		}
		if video.Author.ID == 0 {
			// 作者已注销，半空的join行不往外吐
			continue
		}
		feed = append(feed, dto.LikedVideo{
			LikeID:  like.ID,
			LikedAt: like.CreatedAt,
			Video:   dto.ToVideoResponse(video),
		})
	}
	return feed, nil
}

func (s *likeService) GetLikeCount(targetType string, targetID uint64) (int64, error) {
	if !model.ValidTargetType(targetType) {
		return 0, ErrInvalidTargetType
	}
	if targetID == 0 {
		return 0, ErrInvalidID
	}
	return s.likeRepo.CountByTarget(targetType, targetID)
}

// 发事件失败只记日志不影响toggle本身，流水是旁路不是主链路
func (s *likeService) publish(userID uint64, action, targetType string, targetID uint64) {
	if s.events == nil {
		return
	}
	msg := EngagementMessage{
		UserID:     userID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		OccurredAt: time.Now(),
	}
	if err := s.events.Publish(msg); err != nil {
		logger.Log.WithError(err).WithField("action", action).Error("互动事件发送失败")
	}
}
