package repository

import (
	"Vega_Tube/internal/model"
	"Vega_Tube/pkg/logger"

	"gorm.io/gorm"
)

// 订阅账本接口，create/delete的语义和LikeRepository完全一致
type SubscriptionRepository interface {
	Find(subscriberID, channelID uint64) (*model.Subscription, error)
	Create(sub *model.Subscription) error
	Delete(subID uint64) error

	CountByChannel(channelID uint64) (int64, error)
	// 某个频道的全部粉丝边，预加载粉丝的用户信息，按订阅时间倒序
	FindByChannel(channelID uint64) ([]model.Subscription, error)
	// 某个用户订阅的全部频道边，预加载频道主的用户信息，按订阅时间倒序
	FindBySubscriber(subscriberID uint64) ([]model.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Find(subscriberID, channelID uint64) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		First(&sub).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) Create(sub *model.Subscription) error {
	result := r.db.Create(sub)
	if result.Error != nil {
		if isDuplicateKeyErr(result.Error) {
			return ErrDuplicateKey
		}
		logger.Log.WithError(result.Error).Error("MySQL插入订阅记录失败")
		return result.Error
	}
	return nil
}

func (r *subscriptionRepository) Delete(subID uint64) error {
	// 和likes一样物理删除，软删除的行会占着(subscriber_id, channel_id)唯一索引
	result := r.db.Exec("DELETE FROM subscriptions WHERE id = ?", subID)
	if result.Error != nil {
		logger.Log.WithError(result.Error).Error("MySQL删除订阅记录失败")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *subscriptionRepository) CountByChannel(channelID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	return count, err
}

func (r *subscriptionRepository) FindByChannel(channelID uint64) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.
		Preload("Subscriber").
		Where("channel_id = ?", channelID).
		Order("created_at desc, id desc").
		Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) FindBySubscriber(subscriberID uint64) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.
		Preload("Channel").
		Where("subscriber_id = ?", subscriberID).
		Order("created_at desc, id desc").
		Find(&subs).Error
	return subs, err
}
