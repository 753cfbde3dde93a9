package model

// Subscription是订阅边：subscriber关注channel，两边都落在users表的身份空间里。
// 唯一索引保证同一对(subscriber, channel)最多一条边；“不能订阅自己”在service层拦截，
// 数据库约束管不了这件事
type Subscription struct {
	BaseModel
	SubscriberID uint64 `gorm:"uniqueIndex:idx_sub_channel"`
	ChannelID    uint64 `gorm:"uniqueIndex:idx_sub_channel"`

	Subscriber User `gorm:"foreignKey:SubscriberID"`
	Channel    User `gorm:"foreignKey:ChannelID"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
