package model

// Tweet是社区动态，这里只作为点赞目标存在，动态本身的增删改查走别的服务
type Tweet struct {
	BaseModel
	UserID  uint64 `gorm:"not null;index"`
	Content string `gorm:"type:text;not null"`

	User User `gorm:"foreignKey:UserID"`
}

func (Tweet) TableName() string {
	return "tweets"
}
