package service

import (
	"Vega_Tube/internal/dto"
	"Vega_Tube/internal/model"
	"Vega_Tube/internal/repository"
	"Vega_Tube/pkg/pagination"
)

// DashboardService 是频道后台的读侧聚合：汇总数据和带计数的视频列表。
// 全部是纯读操作，不加锁，容忍读偏斜——快照之后新产生的边下次刷新才会体现
type DashboardService interface {
	GetChannelStats(ownerID uint64) (*dto.ChannelStats, error)
	// GetChannelVideos 频道视频列表，附带点赞数和评论数，创建时间倒序分页。
	// page/pageSize不合法时回落到1/10并夹紧，不报错
	GetChannelVideos(ownerID uint64, page, pageSize int) (*pagination.Page[dto.ChannelVideo], error)
}

type dashboardService struct {
	videoRepo   repository.VideoRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
	subRepo     repository.SubscriptionRepository
}

func NewDashboardService(
	videoRepo repository.VideoRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
	subRepo repository.SubscriptionRepository,
) DashboardService {
	return &dashboardService{
		videoRepo:   videoRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		subRepo:     subRepo,
	}
}

// 频道汇总：1、取频道全部视频 2、一次GROUP BY批量数点赞 3、累加播放量
// 4、数粉丝。没有任何冗余计数列，粉丝数和点赞数都从账本现算
func (s *dashboardService) GetChannelStats(ownerID uint64) (*dto.ChannelStats, error) {
	if ownerID == 0 {
		return nil, ErrInvalidID
	}
	videos, err := s.videoRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	stats := &dto.ChannelStats{TotalVideos: int64(len(videos))}

	videoIDs := make([]uint64, 0, len(videos))
	for i := range videos {
		videoIDs = append(videoIDs, videos[i].ID)
		stats.TotalViews += videos[i].Views
	}

	likeCounts, err := s.likeRepo.CountByTargets(model.TargetVideo, videoIDs)
	if err != nil {
		return nil, err
	}
	for _, count := range likeCounts {
		stats.TotalLikes += count
	}

	subscribers, err := s.subRepo.CountByChannel(ownerID)
	if err != nil {
		return nil, err
	}
	stats.TotalSubscribers = subscribers

	return stats, nil
}

// 频道视频列表：1、取频道全部视频（repo已按created_at desc, id desc排好，
// 同一秒发布的视频靠id兜底，分页窗口才是确定的）2、两次批量计数 3、窗口切分
func (s *dashboardService) GetChannelVideos(ownerID uint64, page, pageSize int) (*pagination.Page[dto.ChannelVideo], error) {
	if ownerID == 0 {
		return nil, ErrInvalidID
	}
	videos, err := s.videoRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	videoIDs := make([]uint64, 0, len(videos))
	for i := range videos {
		videoIDs = append(videoIDs, videos[i].ID)
	}
	likeCounts, err := s.likeRepo.CountByTargets(model.TargetVideo, videoIDs)
	if err != nil {
		return nil, err
	}
	commentCounts, err := s.commentRepo.CountByVideos(videoIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ChannelVideo, 0, len(videos))
	for i := range videos {
		rows = append(rows, dto.ToChannelVideo(&videos[i],
			likeCounts[videos[i].ID], commentCounts[videos[i].ID]))
	}

	result := pagination.Paginate(rows, page, pageSize)
	return &result, nil
}
