package model

import "time"

// 互动动作，消息里传的就是这几个字符串
const (
	ActionLike        = "like"
	ActionUnlike      = "unlike"
	ActionSubscribe   = "subscribe"
	ActionUnsubscribe = "unsubscribe"
)

// 订阅事件的目标类型。点赞事件直接复用like表的TargetVideo等常量
const TargetChannel = "channel"

// EngagementEvent是互动行为的流水账，由consumer进程从MQ落库，只追加不修改。
// 它不参与任何计数（计数永远走likes/subscriptions表），只用于审计和离线分析
type EngagementEvent struct {
	BaseModel
	UserID     uint64 `gorm:"not null;index"`
	Action     string `gorm:"size:16;not null"`
	TargetType string `gorm:"size:16;not null"`
	TargetID   uint64 `gorm:"not null"`
	OccurredAt time.Time
}

func (EngagementEvent) TableName() string {
	return "engagement_events"
}
