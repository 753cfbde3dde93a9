package model

// 点赞目标的种类，一条like边只指向其中一种
const (
	TargetVideo   = "video"
	TargetComment = "comment"
	TargetTweet   = "tweet"
)

// Like是用户与内容之间的点赞边，三种内容共用一张表，用target_type区分。
// uniqueIndex利用的是MySQL的唯一索引，保证同一个用户对同一个目标最多一条边，
// 边的存在本身就是“已点赞”状态，没有单独的布尔字段
type Like struct {
	BaseModel
	UserID     uint64 `gorm:"uniqueIndex:idx_user_target"`
	TargetType string `gorm:"size:16;uniqueIndex:idx_user_target"`
	TargetID   uint64 `gorm:"uniqueIndex:idx_user_target"`
}

func (Like) TableName() string {
	return "likes"
}

// ValidTargetType 判断target_type是否是三种合法取值之一
func ValidTargetType(t string) bool {
	switch t {
	case TargetVideo, TargetComment, TargetTweet:
		return true
	}
	return false
}
