package handler

import (
	"Vega_Tube/internal/model"
	"Vega_Tube/internal/service"
	"Vega_Tube/pkg/logger"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LikeHandler interface {
	ToggleVideoLike(c *gin.Context)
	ToggleCommentLike(c *gin.Context)
	ToggleTweetLike(c *gin.Context)
	GetLikedVideos(c *gin.Context)
	GetVideoLikeCount(c *gin.Context)
}

type likeHandler struct {
	LikeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) LikeHandler {
	return &likeHandler{LikeService: likeService}
}

func (h *likeHandler) ToggleVideoLike(c *gin.Context) {
	h.toggle(c, model.TargetVideo, "video_id")
}

func (h *likeHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, model.TargetComment, "comment_id")
}

func (h *likeHandler) ToggleTweetLike(c *gin.Context) {
	h.toggle(c, model.TargetTweet, "tweet_id")
}

// 点赞toggle：1、从URL取目标ID 2、从认证后的context取userID 3、执行toggle。
// 三种目标共用一套流程，只是URL参数名不同
func (h *likeHandler) toggle(c *gin.Context, targetType, param string) {
	// URL里取回的是str，统一转化为uint64；转不动就是格式不合法
	targetIDStr := c.Param(param)
	targetID, err := strconv.ParseUint(targetIDStr, 10, 64)
	if err != nil {
		sendErrorResponse(c, http.StatusBadRequest, "无效的目标ID")
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logCtx := logger.Log.WithField("user_id", userID).
		WithField("target_type", targetType).
		WithField("target_id", targetID)

	result, err := h.LikeService.Toggle(userID, targetType, targetID)
	if err != nil {
		logCtx.WithError(err).Error("点赞toggle失败")
		sendServiceError(c, err)
		return
	}

	if result.Liked {
		logCtx.Info("点赞成功")
		c.JSON(http.StatusCreated, gin.H{
			"message": "点赞成功",
			"data":    result,
		})
		return
	}
	logCtx.Info("取消点赞成功")
	c.JSON(http.StatusOK, gin.H{
		"message": "取消点赞成功",
		"data":    result,
	})
}

// 某个视频当前的点赞数，公开的读接口
func (h *likeHandler) GetVideoLikeCount(c *gin.Context) {
	videoIDStr := c.Param("video_id")
	videoID, err := strconv.ParseUint(videoIDStr, 10, 64)
	if err != nil {
		sendErrorResponse(c, http.StatusBadRequest, "无效的视频ID")
		return
	}

	count, err := h.LikeService.GetLikeCount(model.TargetVideo, videoID)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"likes_count": count}})
}

// 获取当前用户点赞过的视频feed
func (h *likeHandler) GetLikedVideos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	logCtx := logger.Log.WithField("user_id", userID)

	feed, err := h.LikeService.GetLikedVideos(userID)
	if err != nil {
		logCtx.WithError(err).Error("获取点赞feed失败")
		sendServiceError(c, err)
		return
	}
	logCtx.WithField("count", len(feed)).Info("成功获取点赞feed")
	c.JSON(http.StatusOK, gin.H{"data": feed})
}
