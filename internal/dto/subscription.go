package dto

import (
	"Vega_Tube/internal/model"
	"time"
)

// SubscribeResult 是一次订阅toggle的结果
type SubscribeResult struct {
	Subscribed   bool                `json:"subscribed"`
	Subscription *model.Subscription `json:"subscription,omitempty"`
}

// SubscriptionEntry 是粉丝列表/订阅列表里的一行：
// 订阅边的时间加上边另一端的用户投影
type SubscriptionEntry struct {
	SubscribedAt time.Time `json:"subscribed_at"`
	User         UserInfo  `json:"user"`
}
