package handler

import (
	"Vega_Tube/internal/service"
	"Vega_Tube/pkg/logger"
	"Vega_Tube/pkg/pagination"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DashboardHandler interface {
	GetChannelStats(c *gin.Context)
	GetChannelVideos(c *gin.Context)
}

type dashboardHandler struct {
	DashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) DashboardHandler {
	return &dashboardHandler{DashboardService: dashboardService}
}

// 频道汇总数据，频道就是当前登录用户自己
func (h *dashboardHandler) GetChannelStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	logCtx := logger.Log.WithField("owner_id", userID)

	stats, err := h.DashboardService.GetChannelStats(userID)
	if err != nil {
		logCtx.WithError(err).Error("获取频道汇总失败")
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

// 频道视频列表，带分页。page/page_size解析失败时传0进去，
// service层会按策略回落到1/10，不报错
func (h *dashboardHandler) GetChannelVideos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(pagination.DefaultPage)))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(pagination.DefaultPageSize)))

	logCtx := logger.Log.WithField("owner_id", userID).
		WithField("page", page).WithField("page_size", pageSize)

	videos, err := h.DashboardService.GetChannelVideos(userID, page, pageSize)
	if err != nil {
		logCtx.WithError(err).Error("获取频道视频列表失败")
		sendServiceError(c, err)
		return
	}
	logCtx.WithField("count", len(videos.Items)).Info("成功获取频道视频列表")
	c.JSON(http.StatusOK, gin.H{"data": videos})
}
