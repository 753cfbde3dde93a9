package router

import (
	"Vega_Tube/internal/handler"
	"Vega_Tube/internal/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	userHandler handler.UserHandler,
	videoHandler handler.VideoHandler,
	likeHandler handler.LikeHandler,
	subscriptionHandler handler.SubscriptionHandler,
	dashboardHandler handler.DashboardHandler,
) *gin.Engine {
	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/feed", videoHandler.GetFeed)
		apiV1.GET("/videos/:video_id", videoHandler.GetVideoByID)
		apiV1.GET("/videos/:video_id/likes", likeHandler.GetVideoLikeCount)
		// 粉丝列表和订阅列表是公开的读接口
		apiV1.GET("/channels/:channel_id/subscribers", subscriptionHandler.GetSubscribers)
		apiV1.GET("/users/:subscriber_id/subscriptions", subscriptionHandler.GetSubscribedChannels)

		userGroup := apiV1.Group("/users")
		{
			userGroup.POST("/register", userHandler.Register)
			userGroup.POST("/login", userHandler.Login)
		}

		authorized := apiV1.Group("/")
		authorized.Use(middleware.AuthMiddleware())
		{
			authorized.GET("/profile", userHandler.GetProfile)
			authorized.POST("/videos", videoHandler.CreateVideo)

			// 点赞一律是toggle语义，同一个接口点两次等于没点
			authorized.POST("/videos/:video_id/like", likeHandler.ToggleVideoLike)
			authorized.POST("/comments/:comment_id/like", likeHandler.ToggleCommentLike)
			authorized.POST("/tweets/:tweet_id/like", likeHandler.ToggleTweetLike)
			authorized.GET("/likes/videos", likeHandler.GetLikedVideos)

			authorized.POST("/channels/:channel_id/subscribe", subscriptionHandler.ToggleSubscription)

			// 频道后台，频道即当前登录用户
			authorized.GET("/dashboard/stats", dashboardHandler.GetChannelStats)
			authorized.GET("/dashboard/videos", dashboardHandler.GetChannelVideos)
		}
	}

	return r
}
