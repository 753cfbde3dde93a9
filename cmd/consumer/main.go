package main

import (
	"Vega_Tube/internal/model"
	"Vega_Tube/internal/repository"
	"Vega_Tube/internal/service"
	"Vega_Tube/pkg/logger"
	"Vega_Tube/pkg/rabbitmq"
	"encoding/json"
	"os"

	"github.com/streadway/amqp"
	gorm_mysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// 消费者进程：从MQ里读互动事件，落到engagement_events流水表。
// 流水表只追加，重复消费多一条流水也无妨，所以这里不做去重
func main() {
	logger.InitLogger()

	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(127.0.0.1:3306)/vega_tube?charset=utf8mb4&parseTime=True&loc=Local"
	}
	db, err := gorm.Open(gorm_mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Fatalf("消费者无法连接到数据库: %v", err)
	}

	rabbitMQConn, err := rabbitmq.InitRabbitMQ()
	if err != nil {
		logger.Log.Fatalf("消费者无法连接到RabbitMQ: %v", err)
	}
	defer rabbitMQConn.Close()

	eventRepo := repository.NewEngagementEventRepository(db)
	consumeEngagementEvents(rabbitMQConn, eventRepo)
}

// 互动事件消费者：1、通过MQ的TCP连接创建channel 2、注册消费者 3、循环消费
// 4、解析失败的坏消息直接丢弃，落库失败的消息requeue重试
func consumeEngagementEvents(conn *amqp.Connection, eventRepo repository.EngagementEventRepository) {
	ch, err := conn.Channel()
	if err != nil {
		logger.Log.Fatalf("无法打开Channel: %v", err)
	}
	defer ch.Close()

	// 队列声明是幂等的，消费者先起也没问题
	_, err = ch.QueueDeclare(
		service.QueueEngagement, // name
		true,                    // durable
		false,                   // autoDelete
		false,                   // exclusive
		false,                   // noWait
		nil,                     // args
	)
	if err != nil {
		logger.Log.Fatalf("无法声明互动事件队列: %v", err)
	}

	msgs, err := ch.Consume(
		service.QueueEngagement, // queue
		"",                      // consumer
		false,                   // auto-ack：手动确认，落库成功才Ack
		false,                   // exclusive
		false,                   // no-local
		false,                   // no-wait
		nil,                     // args
	)
	if err != nil {
		logger.Log.Fatalf("无法注册互动事件消费者: %v", err)
	}

	forever := make(chan bool)

	go func() {
		// msgs是channel不是切片，队列为空时会阻塞而不是结束循环
		for d := range msgs {
			logCtx := logger.Log.WithField("body", string(d.Body)).WithField("redelivered", d.Redelivered)
			logCtx.Info("收到一条互动事件")

			var msg service.EngagementMessage
			if err := json.Unmarshal(d.Body, &msg); err != nil {
				logCtx.WithError(err).Error("消息JSON解析失败")
				// 解析不了的坏消息重试也没用，直接丢弃
				d.Nack(false, false)
				continue
			}

			event := &model.EngagementEvent{
				UserID:     msg.UserID,
				Action:     msg.Action,
				TargetType: msg.TargetType,
				TargetID:   msg.TargetID,
				OccurredAt: msg.OccurredAt,
			}
			if err := eventRepo.Create(event); err != nil {
				logCtx.WithError(err).Error("互动流水落库失败，将进行重试")
				d.Nack(false, true)
				continue
			}
			d.Ack(false)
		}
	}()
	logger.Log.Info(" [*] 等待互动事件中. 按 CTRL+C 退出")
	<-forever
}
