package dto

// ChannelStats 是频道后台首页的汇总数据，全部由账本实时折算，不落库。
// 频道一个视频都没有时返回全零，这是正常情况不是错误
type ChannelStats struct {
	TotalVideos      int64  `json:"total_videos"`
	TotalViews       uint64 `json:"total_views"`
	TotalLikes       int64  `json:"total_likes"`
	TotalSubscribers int64  `json:"total_subscribers"`
}
