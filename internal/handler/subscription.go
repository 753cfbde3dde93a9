package handler

import (
	"Vega_Tube/internal/service"
	"Vega_Tube/pkg/logger"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler interface {
	ToggleSubscription(c *gin.Context)
	GetSubscribers(c *gin.Context)
	GetSubscribedChannels(c *gin.Context)
}

type subscriptionHandler struct {
	SubscriptionService service.SubscriptionService
}

func NewSubscriptionHandler(subService service.SubscriptionService) SubscriptionHandler {
	return &subscriptionHandler{SubscriptionService: subService}
}

// 订阅toggle：1、从URL取channelID 2、从context取当前用户 3、执行toggle
func (h *subscriptionHandler) ToggleSubscription(c *gin.Context) {
	channelIDStr := c.Param("channel_id")
	channelID, err := strconv.ParseUint(channelIDStr, 10, 64)
	if err != nil {
		sendErrorResponse(c, http.StatusBadRequest, "无效的频道ID")
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logCtx := logger.Log.WithField("subscriber_id", userID).WithField("channel_id", channelID)

	result, err := h.SubscriptionService.Toggle(userID, channelID)
	if err != nil {
		logCtx.WithError(err).Error("订阅toggle失败")
		sendServiceError(c, err)
		return
	}

	if result.Subscribed {
		logCtx.Info("订阅成功")
		c.JSON(http.StatusCreated, gin.H{
			"message": "订阅成功",
			"data":    result,
		})
		return
	}
	logCtx.Info("退订成功")
	c.JSON(http.StatusOK, gin.H{
		"message": "退订成功",
		"data":    result,
	})
}

// 频道的粉丝列表
func (h *subscriptionHandler) GetSubscribers(c *gin.Context) {
	channelIDStr := c.Param("channel_id")
	channelID, err := strconv.ParseUint(channelIDStr, 10, 64)
	if err != nil {
		sendErrorResponse(c, http.StatusBadRequest, "无效的频道ID")
		return
	}

	subscribers, err := h.SubscriptionService.GetSubscribers(channelID)
	if err != nil {
		logger.Log.WithError(err).WithField("channel_id", channelID).Error("获取粉丝列表失败")
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": subscribers})
}

// 某个用户订阅的频道列表
func (h *subscriptionHandler) GetSubscribedChannels(c *gin.Context) {
	subscriberIDStr := c.Param("subscriber_id")
	subscriberID, err := strconv.ParseUint(subscriberIDStr, 10, 64)
	if err != nil {
		sendErrorResponse(c, http.StatusBadRequest, "无效的用户ID")
		return
	}

	channels, err := h.SubscriptionService.GetSubscribedChannels(subscriberID)
	if err != nil {
		logger.Log.WithError(err).WithField("subscriber_id", subscriberID).Error("获取订阅列表失败")
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": channels})
}
