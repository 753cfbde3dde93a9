package model

type Comment struct {
	BaseModel
	VideoID uint64 `gorm:"not null;index"` // index加速按视频查评论和算commentsCount
	UserID  uint64 `gorm:"not null;index"`
	// TEXT类型用于存储长文本，最大65,535个字符
	Content string `gorm:"type:text;not null"`

	User User `gorm:"foreignKey:UserID"`
}

func (Comment) TableName() string {
	return "comments"
}
