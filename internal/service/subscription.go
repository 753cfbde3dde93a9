package service

import (
	"Vega_Tube/internal/dto"
	"Vega_Tube/internal/model"
	"Vega_Tube/internal/repository"
	"Vega_Tube/pkg/logger"
	"errors"
	"time"
)

// SubscriptionService 是订阅的toggle入口加上粉丝/订阅列表的读侧
type SubscriptionService interface {
	// Toggle翻转(subscriberID, channelID)这条订阅边的存在性
	Toggle(subscriberID, channelID uint64) (*dto.SubscribeResult, error)
	// GetSubscribers 某个频道的粉丝列表，投影粉丝的用户信息，按订阅时间倒序
	GetSubscribers(channelID uint64) ([]dto.SubscriptionEntry, error)
	// GetSubscribedChannels 某个用户订阅的频道列表，投影频道主的用户信息
	GetSubscribedChannels(subscriberID uint64) ([]dto.SubscriptionEntry, error)
}

type subscriptionService struct {
	subRepo repository.SubscriptionRepository
	events  EngagementPublisher
}

func NewSubscriptionService(subRepo repository.SubscriptionRepository, events EngagementPublisher) SubscriptionService {
	return &subscriptionService{
		subRepo: subRepo,
		events:  events,
	}
}

// 订阅toggle，流程和点赞toggle一样，只多一条规则：不能订阅自己。
// 这条规则数据库唯一索引管不了，必须在写入前拦住
func (s *subscriptionService) Toggle(subscriberID, channelID uint64) (*dto.SubscribeResult, error) {
	if channelID == 0 {
		return nil, ErrInvalidID
	}
	if channelID == subscriberID {
		return nil, ErrSelfSubscribe
	}

	existing, err := s.subRepo.Find(subscriberID, channelID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if err := s.subRepo.Delete(existing.ID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				// 并发toggle抢先退订了，按已退订返回
				return &dto.SubscribeResult{Subscribed: false}, nil
			}
			return nil, err
		}
		s.publish(subscriberID, model.ActionUnsubscribe, channelID)
		return &dto.SubscribeResult{Subscribed: false}, nil
	}

	sub := &model.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	if err := s.subRepo.Create(sub); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			// 并发toggle抢先订阅了，重读现状按已订阅返回
			current, findErr := s.subRepo.Find(subscriberID, channelID)
			if findErr != nil {
				if errors.Is(findErr, repository.ErrNotFound) {
					return &dto.SubscribeResult{Subscribed: false}, nil
				}
				return nil, findErr
			}
			return &dto.SubscribeResult{Subscribed: true, Subscription: current}, nil
		}
		return nil, err
	}

	s.publish(subscriberID, model.ActionSubscribe, channelID)
	return &dto.SubscribeResult{Subscribed: true, Subscription: sub}, nil
}

func (s *subscriptionService) GetSubscribers(channelID uint64) ([]dto.SubscriptionEntry, error) {
	if channelID == 0 {
		return nil, ErrInvalidID
	}
	subs, err := s.subRepo.FindByChannel(channelID)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.SubscriptionEntry, 0, len(subs))
	for i := range subs {
		// 粉丝账号已注销的边直接跳过，不吐半空的行
		if subs[i].Subscriber.ID == 0 {
			continue
		}
		entries = append(entries, dto.SubscriptionEntry{
			SubscribedAt: subs[i].CreatedAt,
			User:         dto.ToUserInfo(&subs[i].Subscriber),
		})
	}
	return entries, nil
}

func (s *subscriptionService) GetSubscribedChannels(subscriberID uint64) ([]dto.SubscriptionEntry, error) {
	if subscriberID == 0 {
		return nil, ErrInvalidID
	}
	subs, err := s.subRepo.FindBySubscriber(subscriberID)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.SubscriptionEntry, 0, len(subs))
	for i := range subs {
		if subs[i].Channel.ID == 0 {
			continue
		}
		entries = append(entries, dto.SubscriptionEntry{
			SubscribedAt: subs[i].CreatedAt,
			User:         dto.ToUserInfo(&subs[i].Channel),
		})
	}
	return entries, nil
}

func (s *subscriptionService) publish(subscriberID uint64, action string, channelID uint64) {
	if s.events == nil {
		return
	}
	msg := EngagementMessage{
		UserID:     subscriberID,
		Action:     action,
		TargetType: model.TargetChannel,
		TargetID:   channelID,
		OccurredAt: time.Now(),
	}
	if err := s.events.Publish(msg); err != nil {
		// 旁路失败不影响toggle
		logger.Log.WithError(err).WithField("action", action).Error("互动事件发送失败")
	}
}
