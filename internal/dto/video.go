package dto

import (
	"Vega_Tube/internal/model"
	"time"
)

type VideoResponse struct {
	ID          uint64    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Views       uint64    `json:"views"`
	VideoURL    string    `json:"video_url"`
	CoverURL    string    `json:"cover_url"`
	Author      UserInfo  `json:"author"`
}

// ToVideoResponse 把DB模型转换为API响应模型，并正确利用preload返回的数据
func ToVideoResponse(video *model.Video) VideoResponse {
	resp := VideoResponse{
		ID:          video.ID,
		CreatedAt:   video.CreatedAt,
		Title:       video.Title,
		Description: video.Description,
		Views:       video.Views,
		VideoURL:    video.VideoURL,
		CoverURL:    video.CoverURL,
	}
	// 检查Author是否被成功preload
	if video.Author.ID != 0 {
		resp.Author = ToUserInfo(&video.Author)
	} else {
		resp.Author.ID = video.AuthorID
	}
	return resp
}

// ChannelVideo 是频道后台视频列表里的一行，带实时算出来的计数
type ChannelVideo struct {
	ID            uint64    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Views         uint64    `json:"views"`
	CoverURL      string    `json:"cover_url"`
	LikesCount    int64     `json:"likes_count"`
	CommentsCount int64     `json:"comments_count"`
}

func ToChannelVideo(video *model.Video, likes, comments int64) ChannelVideo {
	return ChannelVideo{
		ID:            video.ID,
		CreatedAt:     video.CreatedAt,
		Title:         video.Title,
		Description:   video.Description,
		Views:         video.Views,
		CoverURL:      video.CoverURL,
		LikesCount:    likes,
		CommentsCount: comments,
	}
}
