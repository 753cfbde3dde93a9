package service

import (
	"encoding/json"
	"time"

	"github.com/streadway/amqp"
)

const (
	// 遵循：项目名.业务领域.实体/功能
	QueueEngagement = "vega.engagement.queue"
)

// EngagementMessage 是toggle之后发往MQ的互动事件，consumer进程负责落流水表
type EngagementMessage struct {
	UserID     uint64    `json:"user_id"`
	Action     string    `json:"action"` // like/unlike/subscribe/unsubscribe
	TargetType string    `json:"target_type"`
	TargetID   uint64    `json:"target_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EngagementPublisher 抽象出事件发布，测试里可以直接不给
type EngagementPublisher interface {
	Publish(msg EngagementMessage) error
}

type amqpPublisher struct {
	conn *amqp.Connection
}

// NewEngagementPublisher 声明互动事件队列并返回发布器。
// 队列持久化，重复声明是幂等的
func NewEngagementPublisher(conn *amqp.Connection) (EngagementPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		QueueEngagement, // name
		true,            // durable
		false,           // autoDelete
		false,           // exclusive
		false,           // noWait
		nil,             // args
	)
	if err != nil {
		return nil, err
	}
	return &amqpPublisher{conn: conn}, nil
}

// Publish 发送消息到MQ。每条消息用一个单独的channel，消息之间互不影响
func (p *amqpPublisher) Publish(msg EngagementMessage) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return ch.Publish(
		"",              // exchange默认交换机
		QueueEngagement, // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
}
