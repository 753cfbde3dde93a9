package handler

import (
	"Vega_Tube/internal/dto"
	"Vega_Tube/internal/service"
	"Vega_Tube/pkg/logger"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type VideoHandler interface {
	CreateVideo(c *gin.Context)
	GetVideoByID(c *gin.Context)
	GetFeed(c *gin.Context)
}

type videoHandler struct {
	VideoService service.VideoService
}

func NewVideoHandler(videoService service.VideoService) VideoHandler {
	return &videoHandler{VideoService: videoService}
}

type CreateVideoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// 发布视频：1、解析Body和context中的userID 2、service层创建 3、DTO转换后返回
func (h *videoHandler) CreateVideo(c *gin.Context) {
	var req CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.WithError(err).Error("发布视频参数解析失败")
		sendErrorResponse(c, http.StatusBadRequest, "无效的参数")
		return
	}
	authorID, ok := currentUserID(c)
	if !ok {
		return
	}

	logCtx := logger.Log.WithField("author_id", authorID)

	video, err := h.VideoService.CreateVideo(authorID, req.Title, req.Description)
	if err != nil {
		logCtx.WithError(err).Error("发布视频业务处理失败")
		sendErrorResponse(c, http.StatusInternalServerError, "发布视频失败")
		return
	}
	logCtx.WithField("video_id", video.ID).Info("视频发布成功")

	c.JSON(http.StatusCreated, gin.H{
		"message": "视频发布成功",
		"data":    dto.ToVideoResponse(video),
	})
}

func (h *videoHandler) GetVideoByID(c *gin.Context) {
	videoIDStr := c.Param("video_id")
	videoID, err := strconv.ParseUint(videoIDStr, 10, 64)
	if err != nil {
		sendErrorResponse(c, http.StatusBadRequest, "无效的视频ID")
		return
	}

	video, err := h.VideoService.GetVideoByID(videoID)
	if err != nil {
		logger.Log.WithError(err).WithField("video_id", videoID).Warn("查找视频失败")
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto.ToVideoResponse(video)})
}

// 获取视频Feed流：最新发布的一批视频元数据
func (h *videoHandler) GetFeed(c *gin.Context) {
	logCtx := logger.Log.WithField("ip", c.ClientIP())

	videos, err := h.VideoService.GetFeed(20)
	if err != nil {
		logCtx.WithError(err).Error("获取Feed流业务处理失败")
		sendErrorResponse(c, http.StatusInternalServerError, "获取视频流失败")
		return
	}

	response := make([]dto.VideoResponse, 0, len(videos))
	for i := range videos {
		response = append(response, dto.ToVideoResponse(&videos[i]))
	}

	logCtx.WithField("count", len(response)).Info("成功获取Feed流")
	c.JSON(http.StatusOK, gin.H{"data": response})
}
