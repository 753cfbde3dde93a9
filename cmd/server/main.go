package main

import (
	"Vega_Tube/internal/handler"
	"Vega_Tube/internal/model"
	"Vega_Tube/internal/repository"
	"Vega_Tube/internal/router"
	"Vega_Tube/internal/service"
	"Vega_Tube/pkg/logger"
	"Vega_Tube/pkg/rabbitmq"
	"Vega_Tube/pkg/redis"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		log.Fatalf(".env文件加载失败")
	}
	logger.InitLogger()

	redisClient, err := redis.InitRedis()
	if err != nil {
		logger.Log.Fatalf("无法连接到Redis: %v", err)
	}
	logger.Log.Info("Redis连接成功")

	rabbitMQConn, err := rabbitmq.InitRabbitMQ()
	if err != nil {
		logger.Log.Fatalf("无法连接到RabbitMQ: %v", err)
	}
	defer rabbitMQConn.Close()
	logger.Log.Info("RabbitMQ连接成功")

	// 数据源名称，用户名:密码@网络协议(地址:端口号)/数据库名?参数
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(127.0.0.1:3306)/vega_tube?charset=utf8mb4&parseTime=True&loc=Local"
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Fatalf("无法连接到数据库: %v", err)
	}
	logger.Log.Info("数据库连接成功")

	// AutoMigrate建表建索引，likes和subscriptions上的联合唯一索引就是在这里落地的，
	// toggle的并发正确性靠它兜底
	err = db.AutoMigrate(
		&model.User{}, &model.Video{}, &model.Comment{}, &model.Tweet{},
		&model.Like{}, &model.Subscription{}, &model.EngagementEvent{},
	)
	if err != nil {
		logger.Log.Fatalf("数据库迁移失败: %v", err)
	}
	logger.Log.Info("数据库迁移成功")

	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db, redisClient)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)

	events, err := service.NewEngagementPublisher(rabbitMQConn)
	if err != nil {
		logger.Log.Fatalf("无法声明互动事件队列: %v", err)
	}

	userService := service.NewUserService(userRepo)
	videoService := service.NewVideoService(videoRepo)
	likeService := service.NewLikeService(likeRepo, videoRepo, events)
	subService := service.NewSubscriptionService(subRepo, events)
	dashboardService := service.NewDashboardService(videoRepo, likeRepo, commentRepo, subRepo)

	userHandler := handler.NewUserHandler(userService)
	videoHandler := handler.NewVideoHandler(videoService)
	likeHandler := handler.NewLikeHandler(likeService)
	subscriptionHandler := handler.NewSubscriptionHandler(subService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	r := router.SetupRouter(userHandler, videoHandler, likeHandler, subscriptionHandler, dashboardHandler)
	logger.Log.Println("服务器将在: 8080端口启动")

	if err := r.Run(":8080"); err != nil {
		logger.Log.Fatalf("服务器启动失败: %v", err)
	}
}
