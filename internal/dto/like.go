package dto

import (
	"Vega_Tube/internal/model"
	"time"
)

// ToggleResult 是一次toggle的结果：翻转后的状态，点赞成功时附带新边
type ToggleResult struct {
	Liked bool        `json:"liked"`
	Like  *model.Like `json:"like,omitempty"`
}

// LikedVideo 是“我点赞过的视频”feed里的一行，按点赞时间排序
type LikedVideo struct {
	LikeID  uint64        `json:"like_id"`
	LikedAt time.Time     `json:"liked_at"`
	Video   VideoResponse `json:"video"`
}
