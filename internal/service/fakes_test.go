package service

import (
	"Vega_Tube/internal/model"
	"Vega_Tube/internal/repository"
	"sort"
	"sync"
	"time"
)

// 内存版的各个Repository，接口行为对齐MySQL实现：
// 唯一键冲突返回ErrDuplicateKey，删不到行返回ErrNotFound

type fakeLikeRepo struct {
	mu     sync.Mutex
	nextID uint64
	clock  time.Time
	likes  map[uint64]*model.Like

	// 模拟并发冲突：置位后下一次Create/Delete表现得像另一个请求抢先落地了
	raceOnCreate bool
	raceOnDelete bool
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		likes: make(map[uint64]*model.Like),
	}
}

func (f *fakeLikeRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeLikeRepo) findLocked(userID uint64, targetType string, targetID uint64) *model.Like {
	for _, like := range f.likes {
		if like.UserID == userID && like.TargetType == targetType && like.TargetID == targetID {
			return like
		}
	}
	return nil
}

func (f *fakeLikeRepo) insertLocked(userID uint64, targetType string, targetID uint64) *model.Like {
	f.nextID++
	like := &model.Like{UserID: userID, TargetType: targetType, TargetID: targetID}
	like.ID = f.nextID
	like.CreatedAt = f.tick()
	f.likes[like.ID] = like
	return like
}

func (f *fakeLikeRepo) Find(userID uint64, targetType string, targetID uint64) (*model.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if like := f.findLocked(userID, targetType, targetID); like != nil {
		copied := *like
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeLikeRepo) Create(like *model.Like) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.raceOnCreate {
		// 对手请求先插了同一条边
		f.raceOnCreate = false
		f.insertLocked(like.UserID, like.TargetType, like.TargetID)
		return repository.ErrDuplicateKey
	}
	if f.findLocked(like.UserID, like.TargetType, like.TargetID) != nil {
		return repository.ErrDuplicateKey
	}
	inserted := f.insertLocked(like.UserID, like.TargetType, like.TargetID)
	*like = *inserted
	return nil
}

func (f *fakeLikeRepo) Delete(likeID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.raceOnDelete {
		// 对手请求先删了这条边
		f.raceOnDelete = false
		delete(f.likes, likeID)
		return repository.ErrNotFound
	}
	if _, ok := f.likes[likeID]; !ok {
		return repository.ErrNotFound
	}
	delete(f.likes, likeID)
	return nil
}

func (f *fakeLikeRepo) CountByTarget(targetType string, targetID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, like := range f.likes {
		if like.TargetType == targetType && like.TargetID == targetID {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikeRepo) CountByTargets(targetType string, targetIDs []uint64) (map[uint64]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wanted := make(map[uint64]bool, len(targetIDs))
	for _, id := range targetIDs {
		wanted[id] = true
	}
	counts := make(map[uint64]int64)
	for _, like := range f.likes {
		if like.TargetType == targetType && wanted[like.TargetID] {
			counts[like.TargetID]++
		}
	}
	return counts, nil
}

func (f *fakeLikeRepo) FindByUser(userID uint64, targetType string) ([]model.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var likes []model.Like
	for _, like := range f.likes {
		if like.UserID == userID && like.TargetType == targetType {
			likes = append(likes, *like)
		}
	}
	// 和SQL一致：created_at desc, id desc
	sort.Slice(likes, func(i, j int) bool {
		if !likes[i].CreatedAt.Equal(likes[j].CreatedAt) {
			return likes[i].CreatedAt.After(likes[j].CreatedAt)
		}
		return likes[i].ID > likes[j].ID
	})
	return likes, nil
}

func (f *fakeLikeRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.likes)
}

type fakeSubRepo struct {
	mu     sync.Mutex
	nextID uint64
	clock  time.Time
	subs   map[uint64]*model.Subscription
	users  map[uint64]*model.User // preload用的身份空间

	raceOnCreate bool
	raceOnDelete bool
}

func newFakeSubRepo() *fakeSubRepo {
	return &fakeSubRepo{
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		subs:  make(map[uint64]*model.Subscription),
		users: make(map[uint64]*model.User),
	}
}

func (f *fakeSubRepo) addUser(id uint64, username, fullName string) {
	user := &model.User{Username: username, FullName: fullName}
	user.ID = id
	f.users[id] = user
}

func (f *fakeSubRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeSubRepo) findLocked(subscriberID, channelID uint64) *model.Subscription {
	for _, sub := range f.subs {
		if sub.SubscriberID == subscriberID && sub.ChannelID == channelID {
			return sub
		}
	}
	return nil
}

func (f *fakeSubRepo) insertLocked(subscriberID, channelID uint64) *model.Subscription {
	f.nextID++
	sub := &model.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	sub.ID = f.nextID
	sub.CreatedAt = f.tick()
	f.subs[sub.ID] = sub
	return sub
}

func (f *fakeSubRepo) Find(subscriberID, channelID uint64) (*model.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if sub := f.findLocked(subscriberID, channelID); sub != nil {
		copied := *sub
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSubRepo) Create(sub *model.Subscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.raceOnCreate {
		f.raceOnCreate = false
		f.insertLocked(sub.SubscriberID, sub.ChannelID)
		return repository.ErrDuplicateKey
	}
	if f.findLocked(sub.SubscriberID, sub.ChannelID) != nil {
		return repository.ErrDuplicateKey
	}
	inserted := f.insertLocked(sub.SubscriberID, sub.ChannelID)
	*sub = *inserted
	return nil
}

func (f *fakeSubRepo) Delete(subID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.raceOnDelete {
		f.raceOnDelete = false
		delete(f.subs, subID)
		return repository.ErrNotFound
	}
	if _, ok := f.subs[subID]; !ok {
		return repository.ErrNotFound
	}
	delete(f.subs, subID)
	return nil
}

func (f *fakeSubRepo) CountByChannel(channelID uint64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, sub := range f.subs {
		if sub.ChannelID == channelID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSubRepo) FindByChannel(channelID uint64) ([]model.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var subs []model.Subscription
	for _, sub := range f.subs {
		if sub.ChannelID != channelID {
			continue
		}
		copied := *sub
		if user, ok := f.users[sub.SubscriberID]; ok {
			copied.Subscriber = *user
		}
		subs = append(subs, copied)
	}
	sortSubsDesc(subs)
	return subs, nil
}

func (f *fakeSubRepo) FindBySubscriber(subscriberID uint64) ([]model.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var subs []model.Subscription
	for _, sub := range f.subs {
		if sub.SubscriberID != subscriberID {
			continue
		}
		copied := *sub
		if user, ok := f.users[sub.ChannelID]; ok {
			copied.Channel = *user
		}
		subs = append(subs, copied)
	}
	sortSubsDesc(subs)
	return subs, nil
}

// 和SQL一致：created_at desc, id desc
func sortSubsDesc(subs []model.Subscription) {
	sort.Slice(subs, func(i, j int) bool {
		if !subs[i].CreatedAt.Equal(subs[j].CreatedAt) {
			return subs[i].CreatedAt.After(subs[j].CreatedAt)
		}
		return subs[i].ID > subs[j].ID
	})
}

func (f *fakeSubRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

type fakeVideoRepo struct {
	mu     sync.Mutex
	nextID uint64
	clock  time.Time
	videos map[uint64]*model.Video
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{
		clock:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		videos: make(map[uint64]*model.Video),
	}
}

// addVideo 直接塞一个带作者的视频进去，返回它的ID
func (f *fakeVideoRepo) addVideo(authorID uint64, title string, views uint64) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.clock = f.clock.Add(time.Second)
	author := model.User{Username: "author", FullName: "作者"}
	author.ID = authorID
	video := &model.Video{
		AuthorID: authorID,
		Title:    title,
		Views:    views,
		Author:   author,
	}
	video.ID = f.nextID
	video.CreatedAt = f.clock
	f.videos[video.ID] = video
	return video.ID
}

// removeVideo 模拟视频被内容服务删除
func (f *fakeVideoRepo) removeVideo(videoID uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.videos, videoID)
}

func (f *fakeVideoRepo) Create(video *model.Video) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	video.ID = f.nextID
	f.clock = f.clock.Add(time.Second)
	video.CreatedAt = f.clock
	copied := *video
	f.videos[video.ID] = &copied
	return nil
}

func (f *fakeVideoRepo) FindLatest(limit uint64) ([]model.Video, error) {
	videos, _ := f.FindByOwner(0)
	if uint64(len(videos)) > limit {
		videos = videos[:limit]
	}
	return videos, nil
}

func (f *fakeVideoRepo) FindByID(videoID uint64) (*model.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if video, ok := f.videos[videoID]; ok {
		copied := *video
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

// ownerID为0时返回全部，按created_at desc, id desc排序
func (f *fakeVideoRepo) FindByOwner(ownerID uint64) ([]model.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var videos []model.Video
	for _, video := range f.videos {
		if ownerID != 0 && video.AuthorID != ownerID {
			continue
		}
		videos = append(videos, *video)
	}
	sort.Slice(videos, func(i, j int) bool {
		if !videos[i].CreatedAt.Equal(videos[j].CreatedAt) {
			return videos[i].CreatedAt.After(videos[j].CreatedAt)
		}
		return videos[i].ID > videos[j].ID
	})
	return videos, nil
}

func (f *fakeVideoRepo) FindByIDs(videoIDs []uint64) ([]model.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var videos []model.Video
	for _, id := range videoIDs {
		if video, ok := f.videos[id]; ok {
			videos = append(videos, *video)
		}
	}
	return videos, nil
}

func (f *fakeVideoRepo) GetVideoCache(videoID uint64) (*model.Video, error) {
	return nil, nil
}

func (f *fakeVideoRepo) SetVideoCache(video *model.Video) error {
	return nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[uint64]int64 // video_id -> 评论数
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint64]int64)}
}

func (f *fakeCommentRepo) addComments(videoID uint64, n int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments[videoID] += n
}

func (f *fakeCommentRepo) Create(comment *model.Comment) error {
	f.addComments(comment.VideoID, 1)
	return nil
}

func (f *fakeCommentRepo) FindByID(commentID uint64) (*model.Comment, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeCommentRepo) CountByVideos(videoIDs []uint64) (map[uint64]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[uint64]int64)
	for _, id := range videoIDs {
		if n, ok := f.comments[id]; ok {
			counts[id] = n
		}
	}
	return counts, nil
}

// recordingPublisher 记录发出的互动事件，方便断言
type recordingPublisher struct {
	mu       sync.Mutex
	messages []EngagementMessage
}

func (p *recordingPublisher) Publish(msg EngagementMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.messages)
}
