package main

import (
	"Vega_Tube/internal/model"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/go-faker/faker/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	fmt.Println("开始填充测试数据...")

	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(127.0.0.1:3306)/vega_tube?charset=utf8mb4&parseTime=True&loc=Local"
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("无法连接到数据库: %v", err)
	}

	// 先删再建，保证每次填充都是干净的。注意：这会删除所有数据！
	fmt.Println("正在清理旧数据...")
	db.Migrator().DropTable(
		&model.EngagementEvent{}, &model.Subscription{}, &model.Like{},
		&model.Tweet{}, &model.Comment{}, &model.Video{}, &model.User{},
	)
	db.AutoMigrate(
		&model.User{}, &model.Video{}, &model.Comment{}, &model.Tweet{},
		&model.Like{}, &model.Subscription{}, &model.EngagementEvent{},
	)

	// 用户，统一默认密码"password"
	userCount := 100
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("密码加密失败: %v", err)
	}
	for i := 0; i < userCount; i++ {
		user := model.User{
			Username:  faker.Username(),
			Password:  string(hashedPassword),
			FullName:  faker.Name(),
			AvatarURL: "https://test.com/avatar.png",
		}
		db.Create(&user)
	}
	fmt.Printf("成功创建 %d 个用户\n", userCount)

	// 视频，作者从已有用户里随机选
	videoCount := 500
	for i := 0; i < videoCount; i++ {
		video := model.Video{
			AuthorID:    uint64(rand.Intn(userCount) + 1),
			Title:       faker.Sentence(),
			Description: faker.Paragraph(),
			Views:       uint64(rand.Intn(100000)),
			VideoURL:    "https://test.com/video.mp4",
			CoverURL:    "https://test.com/cover.jpg",
		}
		db.Create(&video)
	}
	fmt.Printf("成功创建 %d 个视频\n", videoCount)

	// 评论
	commentCount := 2000
	for i := 0; i < commentCount; i++ {
		comment := model.Comment{
			VideoID: uint64(rand.Intn(videoCount) + 1),
			UserID:  uint64(rand.Intn(userCount) + 1),
			Content: faker.Sentence(),
		}
		db.Create(&comment)
	}
	fmt.Printf("成功创建 %d 条评论\n", commentCount)

	// 随机点赞边。用OnConflict DoNothing跳过撞上唯一索引的重复组合
	likeCount := 1000
	for i := 0; i < likeCount; i++ {
		like := model.Like{
			UserID:     uint64(rand.Intn(userCount) + 1),
			TargetType: model.TargetVideo,
			TargetID:   uint64(rand.Intn(videoCount) + 1),
		}
		db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "target_type"}, {Name: "target_id"}},
			DoNothing: true,
		}).Create(&like)
	}
	fmt.Printf("成功创建(或尝试创建) %d 个随机点赞\n", likeCount)

	// 随机订阅边，跳过自己订阅自己的组合
	subCount := 300
	for i := 0; i < subCount; i++ {
		subscriberID := uint64(rand.Intn(userCount) + 1)
		channelID := uint64(rand.Intn(userCount) + 1)
		if subscriberID == channelID {
			continue
		}
		sub := model.Subscription{
			SubscriberID: subscriberID,
			ChannelID:    channelID,
		}
		db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subscriber_id"}, {Name: "channel_id"}},
			DoNothing: true,
		}).Create(&sub)
	}
	fmt.Printf("成功创建(或尝试创建) %d 个随机订阅\n", subCount)

	fmt.Println("所有测试数据填充完毕!")
}
